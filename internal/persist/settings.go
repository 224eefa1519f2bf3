package persist

import (
	"encoding/json"
	"fmt"

	"grindlog/internal/stats"
)

// Settings are the user's preferred defaults for the session form.
// They live under their own key, written only by an explicit command
// and read once when the form initializes; the main load/save cycle
// never touches them.
type Settings struct {
	Limit  string `json:"limit"`
	Format string `json:"format"`
}

// LoadSettings reads the default-settings blob. A missing key returns
// zero settings.
func (b *Bridge) LoadSettings() (Settings, error) {
	var s Settings
	raw, ok, err := b.kv.Get(SettingsKey)
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// SaveSettings writes the default-settings blob.
func (b *Bridge) SaveSettings(s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := b.kv.Put(SettingsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// LoadFilter reads the persisted reports filter. A missing or corrupt
// blob falls back to the empty filter, logged rather than surfaced.
func (b *Bridge) LoadFilter() stats.Filter {
	var f stats.Filter
	raw, ok, err := b.kv.Get(FiltersKey)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to read report filter")
		return f
	}
	if !ok {
		return f
	}
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		b.log.Warn().Err(err).Msg("saved report filter is corrupt")
		return stats.Filter{}
	}
	return f
}

// SaveFilter persists the reports filter.
func (b *Bridge) SaveFilter(f stats.Filter) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode filter: %w", err)
	}
	if err := b.kv.Put(FiltersKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save filter: %w", err)
	}
	return nil
}

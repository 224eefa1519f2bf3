// Package persist synchronizes the store with the durable key/value
// store: one load at startup, one fire-and-forget save per state
// change, plus two small independent blobs (default session settings
// and the reports filter).
package persist

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"grindlog/internal/kv"
	"grindlog/internal/models"
	"grindlog/internal/store"
)

// Reserved keys in the durable store.
const (
	DataKey     = "poker-tracker-data"
	SettingsKey = "poker-tracker-settings"
	FiltersKey  = "poker-tracker-filters"
)

// Bridge ties a store to the key/value backend.
type Bridge struct {
	kv  *kv.Store
	log zerolog.Logger
}

// NewBridge creates a bridge over the given backend.
func NewBridge(backend *kv.Store, log zerolog.Logger) *Bridge {
	return &Bridge{kv: backend, log: log}
}

// blob mirrors the persisted state layout with presence-aware fields,
// so a partial or older blob merges without clobbering the seeded
// defaults it does not mention.
type blob struct {
	Sessions       *[]models.Session     `json:"sessions"`
	Players        *[]models.Player      `json:"players"`
	Stakes         *[]models.Stake       `json:"stakes"`
	Formats        *[]models.Format      `json:"formats"`
	TableRatings   *[]models.TableRating `json:"tableRatings"`
	CurrentSession *models.Session       `json:"currentSession"`
	TotalNet       *float64              `json:"totalNet"`
}

// Load reads the saved state, if any, and merges it into the store via
// LoadData. A missing key leaves the defaults untouched. An
// unparseable blob is logged and swallowed: the process starts from
// defaults rather than crashing.
func (b *Bridge) Load(st *store.Store) {
	raw, ok, err := b.kv.Get(DataKey)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to read saved data")
		return
	}
	if !ok {
		b.log.Debug().Msg("no saved data found")
		return
	}

	var saved blob
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		b.log.Warn().Err(err).Msg("saved data is corrupt, starting from defaults")
		return
	}

	st.Dispatch(store.LoadData{Partial: store.Partial{
		Sessions:       saved.Sessions,
		Players:        saved.Players,
		Stakes:         saved.Stakes,
		Formats:        saved.Formats,
		TableRatings:   saved.TableRatings,
		CurrentSession: saved.CurrentSession,
		TotalNet:       saved.TotalNet,
	}})
}

// Attach loads the saved state and then subscribes Save to every
// subsequent change.
func (b *Bridge) Attach(st *store.Store) {
	b.Load(st)
	st.Subscribe(b.Save)
}

// Save writes the full state under the data key. A pristine-empty
// state (no sessions and no players) is never written: a fresh process
// must not overwrite previously saved data before its load step runs.
// Failures are logged, not returned.
func (b *Bridge) Save(state models.AppState) {
	if state.Empty() {
		b.log.Debug().Msg("skipping save of pristine state")
		return
	}
	raw, err := json.Marshal(state)
	if err != nil {
		b.log.Error().Err(err).Msg("failed to encode state")
		return
	}
	if err := b.kv.Put(DataKey, string(raw)); err != nil {
		b.log.Error().Err(err).Msg("failed to save state")
	}
}

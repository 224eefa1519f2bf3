package persist

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"grindlog/internal/kv"
	"grindlog/internal/models"
	"grindlog/internal/stats"
	"grindlog/internal/store"
)

func newBridge(t *testing.T) (*Bridge, *kv.Store) {
	t.Helper()
	backend, err := kv.Open(filepath.Join(t.TempDir(), "grindlog.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	return NewBridge(backend, zerolog.Nop()), backend
}

func newStore() *store.Store {
	return store.New(models.NewAppState(), zerolog.Nop())
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestSaveLoadRoundTrip(t *testing.T) {
	bridge, _ := newBridge(t)

	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	full := models.Session{
		ID:           "s1",
		Date:         start,
		StartTime:    start,
		EndTime:      &end,
		HandsStart:   1000,
		HandsEnd:     iptr(1300),
		Limit:        "2/4 (1 ante)",
		Format:       "HU with ante",
		Straddle:     true,
		AccountStart: 500,
		AccountEnd:   fptr(650),
	}
	open := models.Session{
		ID:           "s2",
		Date:         end,
		StartTime:    end,
		HandsStart:   1300,
		Limit:        "5/10 (2 ante)",
		Format:       "HU with ante",
		AccountStart: 650,
		IsActive:     true,
	}

	first := newStore()
	bridge.Attach(first)
	first.Dispatch(store.AddSession{Session: full})
	first.Dispatch(store.AddSession{Session: open})
	cur := open.Clone()
	first.Dispatch(store.SetCurrentSession{Session: &cur})

	second := newStore()
	bridge.Load(second)
	got := second.Snapshot()

	if len(got.Sessions) != 2 {
		t.Fatalf("reloaded %d sessions, want 2", len(got.Sessions))
	}
	if !reflect.DeepEqual(got.Sessions[0], full) {
		t.Errorf("session with all dates did not round-trip:\n got %+v\nwant %+v", got.Sessions[0], full)
	}
	if !got.Sessions[0].StartTime.Equal(start) || !got.Sessions[0].EndTime.Equal(end) {
		t.Error("date fields not reconstructed")
	}
	if got.CurrentSession == nil || got.CurrentSession.ID != "s2" {
		t.Error("current session did not round-trip")
	}
}

func TestPristineStateIsNeverSaved(t *testing.T) {
	bridge, backend := newBridge(t)

	// A previous run saved real data.
	seeded := newStore()
	bridge.Attach(seeded)
	seeded.Dispatch(store.AddPlayer{Player: models.Player{ID: "p1", Name: "Villain", ColorTag: models.TagRed}})
	before, ok, _ := backend.Get(DataKey)
	if !ok {
		t.Fatal("expected saved data after dispatch")
	}

	// A fresh process with its save subscription wired before the load
	// step completes: a dispatch on the still-pristine state must not
	// clobber the saved blob.
	fresh := newStore()
	fresh.Subscribe(bridge.Save)
	fresh.Dispatch(store.SetCurrentSession{Session: nil})
	after, ok, _ := backend.Get(DataKey)
	if !ok || after != before {
		t.Error("pristine dispatch clobbered previously saved data")
	}

	// And an explicitly empty save is dropped outright.
	bridge.Save(models.NewAppState())
	after, _, _ = backend.Get(DataKey)
	if after != before {
		t.Error("pristine save overwrote existing blob")
	}
}

func TestLoadMissingKeyKeepsDefaults(t *testing.T) {
	bridge, _ := newBridge(t)

	st := newStore()
	bridge.Load(st)
	got := st.Snapshot()

	want := models.NewAppState()
	if len(got.Stakes) != len(want.Stakes) || len(got.Formats) != len(want.Formats) {
		t.Error("defaults disturbed by empty load")
	}
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	bridge, backend := newBridge(t)
	if err := backend.Put(DataKey, "{not json"); err != nil {
		t.Fatalf("put: %v", err)
	}

	st := newStore()
	bridge.Load(st) // must not panic
	got := st.Snapshot()
	if len(got.Sessions) != 0 || len(got.Stakes) != len(models.NewAppState().Stakes) {
		t.Error("corrupt blob should leave state at defaults")
	}
}

func TestPartialBlobKeepsSeededLists(t *testing.T) {
	bridge, backend := newBridge(t)
	if err := backend.Put(DataKey, `{"sessions":[{"id":"s1","date":"2025-03-14T19:00:00Z","startTime":"2025-03-14T19:00:00Z","handsStart":0,"limit":"2/4","format":"HU with ante","straddle":false,"accountStart":0,"isActive":false}]}`); err != nil {
		t.Fatalf("put: %v", err)
	}

	st := newStore()
	bridge.Load(st)
	got := st.Snapshot()

	if len(got.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(got.Sessions))
	}
	if len(got.Stakes) == 0 || len(got.Formats) == 0 {
		t.Error("blob without reference lists clobbered seeded defaults")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	bridge, _ := newBridge(t)

	if s, err := bridge.LoadSettings(); err != nil || s != (Settings{}) {
		t.Fatalf("initial settings = %+v err=%v", s, err)
	}

	want := Settings{Limit: "5/10 (2 ante)", Format: "HU with ante"}
	if err := bridge.SaveSettings(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := bridge.LoadSettings()
	if err != nil || got != want {
		t.Errorf("settings = %+v err=%v, want %+v", got, err, want)
	}
}

func TestFilterRoundTrip(t *testing.T) {
	bridge, _ := newBridge(t)

	if f := bridge.LoadFilter(); !f.IsZero() {
		t.Fatalf("initial filter = %+v", f)
	}

	want := stats.Filter{StakeLabel: "2/4", FormatLabel: "HU with ante", Straddle: stats.StraddleYes}
	if err := bridge.SaveFilter(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := bridge.LoadFilter(); got != want {
		t.Errorf("filter = %+v, want %+v", got, want)
	}
}

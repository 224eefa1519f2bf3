package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"grindlog/internal/models"
)

func newSession(id string) models.Session {
	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	return models.Session{
		ID:           id,
		Date:         start,
		StartTime:    start,
		HandsStart:   1000,
		Limit:        "2/4 (1 ante)",
		Format:       "HU with ante",
		AccountStart: 500,
		IsActive:     true,
	}
}

func newPlayer(id, name string) models.Player {
	return models.Player{
		ID:       id,
		Name:     name,
		ColorTag: models.TagGreen,
		VPIP:     42,
		PFR:      12,
	}
}

func TestAddSessionAppends(t *testing.T) {
	state := models.NewAppState()
	sess := newSession("s1")

	next := Reduce(state, AddSession{Session: sess})

	if len(next.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(next.Sessions))
	}
	if !reflect.DeepEqual(next.Sessions[0], sess) {
		t.Errorf("stored session differs: %+v", next.Sessions[0])
	}
	if len(state.Sessions) != 0 {
		t.Errorf("input state mutated: %d sessions", len(state.Sessions))
	}
}

func TestUpdateSessionReplacesMatchingOnly(t *testing.T) {
	state := models.NewAppState()
	state = Reduce(state, AddSession{Session: newSession("s1")})
	state = Reduce(state, AddSession{Session: newSession("s2")})

	edited := newSession("s2")
	edited.Limit = "5/10 (2 ante)"
	next := Reduce(state, UpdateSession{Session: edited})

	if next.Sessions[0].Limit != "2/4 (1 ante)" {
		t.Errorf("untouched session changed: %q", next.Sessions[0].Limit)
	}
	if next.Sessions[1].Limit != "5/10 (2 ante)" {
		t.Errorf("matching session not replaced: %q", next.Sessions[1].Limit)
	}
}

func TestMissingIDCommandsAreNoOps(t *testing.T) {
	state := models.NewAppState()
	state = Reduce(state, AddSession{Session: newSession("s1")})
	state = Reduce(state, AddPlayer{Player: newPlayer("p1", "Villain")})

	tests := []struct {
		name   string
		action Action
	}{
		{"update session", UpdateSession{Session: newSession("nope")}},
		{"delete session", DeleteSession{ID: "nope"}},
		{"update player", UpdatePlayer{Player: newPlayer("nope", "Ghost")}},
		{"delete player", DeletePlayer{ID: "nope"}},
		{"update rating", UpdateTableRating{Rating: models.TableRating{ID: "nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(state, tt.action)
			if !reflect.DeepEqual(next, state) {
				t.Errorf("state changed for missing id")
			}
		})
	}
}

func TestDeleteSessionRemovesMatch(t *testing.T) {
	state := models.NewAppState()
	state = Reduce(state, AddSession{Session: newSession("s1")})
	state = Reduce(state, AddSession{Session: newSession("s2")})

	next := Reduce(state, DeleteSession{ID: "s1"})

	if len(next.Sessions) != 1 || next.Sessions[0].ID != "s2" {
		t.Fatalf("unexpected sessions after delete: %+v", next.Sessions)
	}
}

func TestSetCurrentSessionLeavesListAlone(t *testing.T) {
	state := models.NewAppState()
	state = Reduce(state, AddSession{Session: newSession("s1")})

	cur := newSession("s1")
	next := Reduce(state, SetCurrentSession{Session: &cur})
	if next.CurrentSession == nil || next.CurrentSession.ID != "s1" {
		t.Fatal("current session not set")
	}
	if len(next.Sessions) != 1 {
		t.Errorf("session list changed: %d", len(next.Sessions))
	}

	next = Reduce(next, SetCurrentSession{Session: nil})
	if next.CurrentSession != nil {
		t.Error("current session not cleared")
	}
}

func TestDeletePlayerKeepsRatingSnapshots(t *testing.T) {
	state := models.NewAppState()
	p := newPlayer("p1", "Villain")
	state = Reduce(state, AddPlayer{Player: p})
	state = Reduce(state, AddTableRating{Rating: models.TableRating{
		ID:        "r1",
		TableName: "Table 7",
		Players:   []models.Player{p.Clone()},
		Rating:    4,
	}})

	next := Reduce(state, DeletePlayer{ID: "p1"})

	if len(next.Players) != 0 {
		t.Fatalf("player not removed: %+v", next.Players)
	}
	if len(next.TableRatings[0].Players) != 1 || next.TableRatings[0].Players[0].Name != "Villain" {
		t.Error("embedded player snapshot should survive roster deletion")
	}
}

func TestUpdatePlayerDoesNotReachIntoRatings(t *testing.T) {
	state := models.NewAppState()
	p := newPlayer("p1", "Villain")
	state = Reduce(state, AddPlayer{Player: p})
	state = Reduce(state, AddTableRating{Rating: models.TableRating{
		ID:      "r1",
		Players: []models.Player{p.Clone()},
		Rating:  3,
	}})

	edited := p.Clone()
	edited.Name = "Hero"
	next := Reduce(state, UpdatePlayer{Player: edited})

	if next.Players[0].Name != "Hero" {
		t.Fatalf("roster player not updated: %q", next.Players[0].Name)
	}
	if next.TableRatings[0].Players[0].Name != "Villain" {
		t.Error("rating snapshot changed by player edit")
	}
}

func TestReferenceListsAppendOnly(t *testing.T) {
	state := models.NewAppState()
	stakes, formats := len(state.Stakes), len(state.Formats)

	state = Reduce(state, AddStake{Stake: models.Stake{ID: "s7", Name: "25/50", Format: "HU"}})
	state = Reduce(state, AddFormat{Format: models.Format{ID: "f3", Name: "6-max"}})

	if len(state.Stakes) != stakes+1 || state.Stakes[stakes].Name != "25/50" {
		t.Errorf("stake not appended: %+v", state.Stakes)
	}
	if len(state.Formats) != formats+1 || state.Formats[formats].Name != "6-max" {
		t.Errorf("format not appended: %+v", state.Formats)
	}
}

func TestLoadDataMergesOnlyPresentFields(t *testing.T) {
	state := models.NewAppState()
	sessions := []models.Session{newSession("s1")}
	next := Reduce(state, LoadData{Partial: Partial{Sessions: &sessions}})

	if len(next.Sessions) != 1 {
		t.Fatalf("sessions not merged: %d", len(next.Sessions))
	}
	if len(next.Stakes) != len(state.Stakes) {
		t.Error("absent stakes field clobbered seeded defaults")
	}
	if len(next.Formats) != len(state.Formats) {
		t.Error("absent formats field clobbered seeded defaults")
	}
}

func TestDispatchNotifiesWithSnapshot(t *testing.T) {
	st := New(models.NewAppState(), zerolog.Nop())

	var seen []models.AppState
	st.Subscribe(func(s models.AppState) { seen = append(seen, s) })

	st.Dispatch(AddSession{Session: newSession("s1")})
	if len(seen) != 1 || len(seen[0].Sessions) != 1 {
		t.Fatalf("listener not notified with new state")
	}

	// Mutating the delivered snapshot must not leak into the store.
	seen[0].Sessions[0].Limit = "tampered"
	if st.Snapshot().Sessions[0].Limit == "tampered" {
		t.Error("listener snapshot shares memory with store state")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

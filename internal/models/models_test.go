package models

import (
	"testing"
	"time"
)

func TestColorTags(t *testing.T) {
	want := map[ColorTag]struct {
		label string
		hex   string
	}{
		TagGreen:   {"General Fish", "#4caf50"},
		TagYellow:  {"Solid Reg", "#ff9800"},
		TagRed:     {"Excellent Reg", "#f44336"},
		TagCyan:    {"Passive Fish", "#00bcd4"},
		TagMagenta: {"Aggro Fish", "#e91e63"},
	}

	tags := ColorTags()
	if len(tags) != 5 {
		t.Fatalf("expected 5 tags, got %d", len(tags))
	}
	for _, tag := range tags {
		if !tag.Valid() {
			t.Errorf("%s should be valid", tag)
		}
		if tag.Label() != want[tag].label {
			t.Errorf("%s label = %q, want %q", tag, tag.Label(), want[tag].label)
		}
		if tag.Hex() != want[tag].hex {
			t.Errorf("%s hex = %q, want %q", tag, tag.Hex(), want[tag].hex)
		}
	}

	if ColorTag("purple").Valid() {
		t.Error("purple should not be a valid tag")
	}
}

func TestRatingLabel(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{5, "Excellent Table"},
		{4, "Excellent Table"},
		{3, "Good Table"},
		{2, "Average Table"},
		{1, "Poor Table"},
		{0, "Poor Table"},
	}
	for _, tt := range tests {
		if got := RatingLabel(tt.rating); got != tt.want {
			t.Errorf("RatingLabel(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestAppStateClone(t *testing.T) {
	end := time.Now()
	hands := 1300
	acc := 650.0

	state := NewAppState()
	state.Sessions = []Session{{ID: "s1", EndTime: &end, HandsEnd: &hands, AccountEnd: &acc}}
	state.Players = []Player{{ID: "p1", Name: "Villain", Stakes: []int{100, 200}}}
	state.TableRatings = []TableRating{{ID: "r1", Players: []Player{{ID: "p1", Name: "Villain"}}}}
	cur := state.Sessions[0]
	state.CurrentSession = &cur

	clone := state.Clone()

	clone.Sessions[0].ID = "changed"
	*clone.Sessions[0].HandsEnd = 9999
	clone.Players[0].Stakes[0] = 9999
	clone.TableRatings[0].Players[0].Name = "changed"
	clone.CurrentSession.ID = "changed"

	if state.Sessions[0].ID != "s1" || *state.Sessions[0].HandsEnd != 1300 {
		t.Error("session not deep-copied")
	}
	if state.Players[0].Stakes[0] != 100 {
		t.Error("player stakes share memory")
	}
	if state.TableRatings[0].Players[0].Name != "Villain" {
		t.Error("rating snapshot shares memory")
	}
	if state.CurrentSession.ID != "s1" {
		t.Error("current session not deep-copied")
	}
}

func TestEmpty(t *testing.T) {
	state := NewAppState()
	if !state.Empty() {
		t.Error("seeded state with no sessions or players should be empty")
	}
	state.Sessions = []Session{{ID: "s1"}}
	if state.Empty() {
		t.Error("state with a session is not empty")
	}

	state = NewAppState()
	state.Players = []Player{{ID: "p1"}}
	if state.Empty() {
		t.Error("state with a player is not empty")
	}
}

package parser

import (
	"reflect"
	"testing"

	"grindlog/internal/models"
)

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedPlayer
	}{
		{
			"full syntax",
			"Ivan the Rock #yellow hands:1200 vpip:18.5 pfr:14 stakes:200,400",
			ParsedPlayer{
				Name:       "Ivan the Rock",
				ColorTag:   models.TagYellow,
				TotalHands: 1200,
				VPIP:       18.5,
				PFR:        14,
				Stakes:     []int{200, 400},
				Errors:     []string{},
			},
		},
		{
			"name only defaults to green",
			"Anonymous Fish",
			ParsedPlayer{Name: "Anonymous Fish", ColorTag: models.TagGreen, Errors: []string{}},
		},
		{
			"tag anywhere in input",
			"#magenta MadLad vpip:65",
			ParsedPlayer{Name: "MadLad", ColorTag: models.TagMagenta, VPIP: 65, Errors: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePlayer(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestParsePlayerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown tag", "Bob #purple"},
		{"vpip out of range", "Bob vpip:120"},
		{"pfr out of range", "Bob pfr:101"},
		{"stake overflow", "Bob stakes:99999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePlayer(tt.input)
			if len(got.Errors) == 0 {
				t.Errorf("expected errors, got %+v", got)
			}
			if got.Name != "Bob" {
				t.Errorf("name = %q, want Bob", got.Name)
			}
		})
	}
}

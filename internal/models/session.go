package models

import (
	"time"
)

// Session represents one period of poker play
type Session struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	HandsStart int  `json:"handsStart"`
	HandsEnd   *int `json:"handsEnd,omitempty"`

	Limit    string `json:"limit"`
	Format   string `json:"format"`
	Straddle bool   `json:"straddle"`

	AccountStart float64  `json:"accountStart"`
	AccountEnd   *float64 `json:"accountEnd,omitempty"`

	IsActive bool `json:"isActive"`
}

// Completed reports whether both bankroll figures are recorded.
// Only completed sessions count toward net totals and averages.
func (s Session) Completed() bool {
	return s.AccountEnd != nil
}

// Clone returns a deep copy, detaching the optional field pointers.
func (s Session) Clone() Session {
	out := s
	if s.EndTime != nil {
		t := *s.EndTime
		out.EndTime = &t
	}
	if s.HandsEnd != nil {
		h := *s.HandsEnd
		out.HandsEnd = &h
	}
	if s.AccountEnd != nil {
		a := *s.AccountEnd
		out.AccountEnd = &a
	}
	return out
}

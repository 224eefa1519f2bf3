package stats

import (
	"strings"

	"grindlog/internal/models"
)

// Straddle filter states. The tri-state is encoded as a string so the
// persisted blob round-trips "all" as the empty value.
const (
	StraddleAny = ""
	StraddleYes = "true"
	StraddleNo  = "false"
)

// Filter narrows the report view. Criteria are a conjunction: a
// session passes only if every specified criterion matches, and an
// unset criterion always passes.
type Filter struct {
	StakeLabel  string `json:"stakeLabel"`
	FormatLabel string `json:"formatLabel"`
	Straddle    string `json:"straddle"`
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.StakeLabel == "" && f.FormatLabel == "" && f.Straddle == StraddleAny
}

// Match applies the conjunction to one session. The stake criterion is
// a substring match against the session's limit label, format is an
// exact match, straddle is an exact boolean match when specified.
func (f Filter) Match(s models.Session) bool {
	if f.StakeLabel != "" && !strings.Contains(s.Limit, f.StakeLabel) {
		return false
	}
	if f.FormatLabel != "" && s.Format != f.FormatLabel {
		return false
	}
	if f.Straddle != StraddleAny && s.Straddle != (f.Straddle == StraddleYes) {
		return false
	}
	return true
}

// Apply returns the sessions passing the filter, in their original
// order. An empty filter returns the input unchanged.
func (f Filter) Apply(sessions []models.Session) []models.Session {
	if f.IsZero() {
		return sessions
	}
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

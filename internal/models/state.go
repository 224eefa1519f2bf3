package models

// AppState is the aggregate root held by the store. Session order is
// insertion order (the order the user entered them), not date order.
type AppState struct {
	Sessions     []Session     `json:"sessions"`
	Players      []Player      `json:"players"`
	Stakes       []Stake       `json:"stakes"`
	Formats      []Format      `json:"formats"`
	TableRatings []TableRating `json:"tableRatings"`

	// CurrentSession is the at-most-one in-progress session, tracked
	// separately from the historical list.
	CurrentSession *Session `json:"currentSession"`

	TotalNet float64 `json:"totalNet"`
}

// NewAppState returns the initial state with the seeded stake and
// format reference lists.
func NewAppState() AppState {
	return AppState{
		Stakes: []Stake{
			{ID: "1", Name: ".2/.5/1 (.2 ante)", Format: "8-max"},
			{ID: "2", Name: ".5/1/2 (.5 ante)", Format: "8-max"},
			{ID: "3", Name: "1/2/4 (1 ante)", Format: "8-max"},
			{ID: "4", Name: "2/4 (1 ante)", Format: "HU"},
			{ID: "5", Name: "5/10 (2 ante)", Format: "HU"},
			{ID: "6", Name: "10/20 (2 ante)", Format: "HU"},
		},
		Formats: []Format{
			{ID: "1", Name: "HU with ante"},
			{ID: "2", Name: "8-max with ante"},
		},
	}
}

// Empty reports whether the state is still pristine: nothing recorded
// beyond the seeded reference lists. The persistence layer refuses to
// write an empty state so a fresh process cannot clobber saved data
// before its load step runs.
func (s AppState) Empty() bool {
	return len(s.Sessions) == 0 && len(s.Players) == 0
}

// Clone returns a deep copy of the whole state.
func (s AppState) Clone() AppState {
	out := s
	if s.Sessions != nil {
		out.Sessions = make([]Session, len(s.Sessions))
		for i, sess := range s.Sessions {
			out.Sessions[i] = sess.Clone()
		}
	}
	if s.Players != nil {
		out.Players = make([]Player, len(s.Players))
		for i, p := range s.Players {
			out.Players[i] = p.Clone()
		}
	}
	if s.Stakes != nil {
		out.Stakes = append([]Stake(nil), s.Stakes...)
	}
	if s.Formats != nil {
		out.Formats = append([]Format(nil), s.Formats...)
	}
	if s.TableRatings != nil {
		out.TableRatings = make([]TableRating, len(s.TableRatings))
		for i, r := range s.TableRatings {
			out.TableRatings[i] = r.Clone()
		}
	}
	if s.CurrentSession != nil {
		cur := s.CurrentSession.Clone()
		out.CurrentSession = &cur
	}
	return out
}

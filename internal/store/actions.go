package store

import (
	"grindlog/internal/models"
)

// Action is one command against the application state. The set is
// closed: the reducer matches on the concrete types below and treats
// anything else as an identity transform.
type Action interface {
	actionName() string
}

// AddSession appends a fully-formed session. Id uniqueness is the
// caller's responsibility (use NewID).
type AddSession struct {
	Session models.Session
}

// UpdateSession replaces the session with a matching id. No-op when
// the id is not found.
type UpdateSession struct {
	Session models.Session
}

// DeleteSession removes the session with the given id. No-op when the
// id is not found.
type DeleteSession struct {
	ID string
}

// SetCurrentSession replaces the in-progress session pointer without
// touching the session list. A nil Session clears it.
type SetCurrentSession struct {
	Session *models.Session
}

// AddPlayer appends a player to the roster.
type AddPlayer struct {
	Player models.Player
}

// UpdatePlayer replaces the player with a matching id. No-op when the
// id is not found.
type UpdatePlayer struct {
	Player models.Player
}

// DeletePlayer removes the player with the given id from the roster.
// Player snapshots embedded in existing table ratings are untouched.
type DeletePlayer struct {
	ID string
}

// AddStake appends to the stake reference list.
type AddStake struct {
	Stake models.Stake
}

// AddFormat appends to the format reference list.
type AddFormat struct {
	Format models.Format
}

// AddTableRating appends a table rating. The rating must already carry
// snapshot copies of its players.
type AddTableRating struct {
	Rating models.TableRating
}

// UpdateTableRating replaces the rating with a matching id. No-op when
// the id is not found.
type UpdateTableRating struct {
	Rating models.TableRating
}

// LoadData shallow-merges a partial state, field by field. Only the
// persistence layer issues this, once, at startup. Nil fields keep the
// current value.
type LoadData struct {
	Partial Partial
}

// Partial carries the fields of a persisted state blob that were
// actually present. Absent fields stay nil and do not overwrite the
// seeded defaults.
type Partial struct {
	Sessions       *[]models.Session
	Players        *[]models.Player
	Stakes         *[]models.Stake
	Formats        *[]models.Format
	TableRatings   *[]models.TableRating
	CurrentSession *models.Session
	TotalNet       *float64
}

func (AddSession) actionName() string        { return "ADD_SESSION" }
func (UpdateSession) actionName() string     { return "UPDATE_SESSION" }
func (DeleteSession) actionName() string     { return "DELETE_SESSION" }
func (SetCurrentSession) actionName() string { return "SET_CURRENT_SESSION" }
func (AddPlayer) actionName() string         { return "ADD_PLAYER" }
func (UpdatePlayer) actionName() string      { return "UPDATE_PLAYER" }
func (DeletePlayer) actionName() string      { return "DELETE_PLAYER" }
func (AddStake) actionName() string          { return "ADD_STAKE" }
func (AddFormat) actionName() string         { return "ADD_FORMAT" }
func (AddTableRating) actionName() string    { return "ADD_TABLE_RATING" }
func (UpdateTableRating) actionName() string { return "UPDATE_TABLE_RATING" }
func (LoadData) actionName() string          { return "LOAD_DATA" }

// Reduce applies one action to a state and returns the next state. It
// is a pure function: no side effects, deterministic, and any action
// outside the known set returns the input state unchanged.
func Reduce(state models.AppState, action Action) models.AppState {
	switch a := action.(type) {
	case AddSession:
		state.Sessions = append(append([]models.Session(nil), state.Sessions...), a.Session)
	case UpdateSession:
		sessions := append([]models.Session(nil), state.Sessions...)
		for i, s := range sessions {
			if s.ID == a.Session.ID {
				sessions[i] = a.Session
			}
		}
		state.Sessions = sessions
	case DeleteSession:
		kept := make([]models.Session, 0, len(state.Sessions))
		for _, s := range state.Sessions {
			if s.ID != a.ID {
				kept = append(kept, s)
			}
		}
		state.Sessions = kept
	case SetCurrentSession:
		state.CurrentSession = a.Session
	case AddPlayer:
		state.Players = append(append([]models.Player(nil), state.Players...), a.Player)
	case UpdatePlayer:
		players := append([]models.Player(nil), state.Players...)
		for i, p := range players {
			if p.ID == a.Player.ID {
				players[i] = a.Player
			}
		}
		state.Players = players
	case DeletePlayer:
		kept := make([]models.Player, 0, len(state.Players))
		for _, p := range state.Players {
			if p.ID != a.ID {
				kept = append(kept, p)
			}
		}
		state.Players = kept
	case AddStake:
		state.Stakes = append(append([]models.Stake(nil), state.Stakes...), a.Stake)
	case AddFormat:
		state.Formats = append(append([]models.Format(nil), state.Formats...), a.Format)
	case AddTableRating:
		state.TableRatings = append(append([]models.TableRating(nil), state.TableRatings...), a.Rating)
	case UpdateTableRating:
		ratings := append([]models.TableRating(nil), state.TableRatings...)
		for i, r := range ratings {
			if r.ID == a.Rating.ID {
				ratings[i] = a.Rating
			}
		}
		state.TableRatings = ratings
	case LoadData:
		state = merge(state, a.Partial)
	}
	return state
}

func merge(state models.AppState, p Partial) models.AppState {
	if p.Sessions != nil {
		state.Sessions = *p.Sessions
	}
	if p.Players != nil {
		state.Players = *p.Players
	}
	if p.Stakes != nil {
		state.Stakes = *p.Stakes
	}
	if p.Formats != nil {
		state.Formats = *p.Formats
	}
	if p.TableRatings != nil {
		state.TableRatings = *p.TableRatings
	}
	if p.CurrentSession != nil {
		state.CurrentSession = p.CurrentSession
	}
	if p.TotalNet != nil {
		state.TotalNet = *p.TotalNet
	}
	return state
}

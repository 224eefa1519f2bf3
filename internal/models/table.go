package models

// Stake is a configured limit/blind-structure label bound to a format
// category. Stakes are append-only reference data.
type Stake struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Format string `json:"format"`
}

// Format is a configured game-format label. Append-only, like Stake.
type Format struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TableRating is a user judgment of one table's quality. It embeds
// copies of the selected players rather than references: a rating
// freezes the roster as it looked at rating time, and later edits to
// a player never reach back into old ratings.
type TableRating struct {
	ID        string   `json:"id"`
	TableName string   `json:"tableName"`
	Players   []Player `json:"players"`
	Rating    int      `json:"rating"`
	Notes     string   `json:"notes"`
}

// Clone returns a deep copy including the embedded player snapshots.
func (r TableRating) Clone() TableRating {
	out := r
	if r.Players != nil {
		out.Players = make([]Player, len(r.Players))
		for i, p := range r.Players {
			out.Players[i] = p.Clone()
		}
	}
	return out
}

// RatingLabel maps a 1-5 star rating to its quality label.
func RatingLabel(rating int) string {
	switch {
	case rating >= 4:
		return "Excellent Table"
	case rating >= 3:
		return "Good Table"
	case rating >= 2:
		return "Average Table"
	default:
		return "Poor Table"
	}
}

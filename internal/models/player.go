package models

// ColorTag classifies an opponent's playing style. The five values are
// fixed; each maps to one display label and one swatch color everywhere
// a player is rendered.
type ColorTag string

const (
	TagGreen   ColorTag = "green"
	TagYellow  ColorTag = "yellow"
	TagRed     ColorTag = "red"
	TagCyan    ColorTag = "cyan"
	TagMagenta ColorTag = "magenta"
)

// ColorTags lists every valid tag in display order.
func ColorTags() []ColorTag {
	return []ColorTag{TagGreen, TagYellow, TagRed, TagCyan, TagMagenta}
}

// Valid reports whether t is one of the five known tags.
func (t ColorTag) Valid() bool {
	switch t {
	case TagGreen, TagYellow, TagRed, TagCyan, TagMagenta:
		return true
	}
	return false
}

// Label returns the human-readable style label for the tag.
func (t ColorTag) Label() string {
	switch t {
	case TagGreen:
		return "General Fish"
	case TagYellow:
		return "Solid Reg"
	case TagRed:
		return "Excellent Reg"
	case TagCyan:
		return "Passive Fish"
	case TagMagenta:
		return "Aggro Fish"
	}
	return "Unknown"
}

// Hex returns the fixed swatch color for the tag.
func (t ColorTag) Hex() string {
	switch t {
	case TagGreen:
		return "#4caf50"
	case TagYellow:
		return "#ff9800"
	case TagRed:
		return "#f44336"
	case TagCyan:
		return "#00bcd4"
	case TagMagenta:
		return "#e91e63"
	}
	return "#6D7383"
}

// Player is one tracked opponent
type Player struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ColorTag   ColorTag `json:"colorTag"`
	TotalHands int      `json:"totalHands"`
	VPIP       float64  `json:"vpip"`
	PFR        float64  `json:"pfr"`
	Note       string   `json:"note"`
	Exploits   string   `json:"exploits"`
	Stakes     []int    `json:"stakes,omitempty"`

	// Reserved for generated opponent summaries; no command writes it yet.
	AISummary string `json:"aiSummary,omitempty"`
}

// PlayerStakeOptions are the stake levels offered by the roster form.
var PlayerStakeOptions = []int{100, 200, 400, 1000}

// Clone returns a deep copy of the player, detaching the stakes slice.
func (p Player) Clone() Player {
	out := p
	if p.Stakes != nil {
		out.Stakes = append([]int(nil), p.Stakes...)
	}
	return out
}

// Package stats computes read-only projections over recorded sessions.
// Nothing here is stored: every figure is derived on demand, and
// missing optional fields simply do not contribute.
package stats

import (
	"time"

	"grindlog/internal/models"
)

// Net returns accountEnd - accountStart. Defined only for completed
// sessions.
func Net(s models.Session) (float64, bool) {
	if s.AccountEnd == nil {
		return 0, false
	}
	return *s.AccountEnd - s.AccountStart, true
}

// Duration returns the session length. For an active session without
// an end time the clock runs against now, which is what drives the
// live elapsed display. Undefined when the start time is missing.
func Duration(s models.Session, now time.Time) (time.Duration, bool) {
	if s.StartTime.IsZero() {
		return 0, false
	}
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	return end.Sub(s.StartTime), true
}

// DurationMinutes floors the session length to whole minutes for
// display.
func DurationMinutes(s models.Session, now time.Time) (int, bool) {
	d, ok := Duration(s, now)
	if !ok {
		return 0, false
	}
	return int(d.Minutes()), true
}

// Hands returns handsEnd - handsStart, defined only when the ending
// counter is recorded.
func Hands(s models.Session) (int, bool) {
	if s.HandsEnd == nil {
		return 0, false
	}
	return *s.HandsEnd - s.HandsStart, true
}

// HandsPerHour is the session pace. Zero when the duration is not
// positive or either counter is missing.
func HandsPerHour(s models.Session, now time.Time) float64 {
	hands, ok := Hands(s)
	if !ok {
		return 0
	}
	d, ok := Duration(s, now)
	if !ok || d <= 0 {
		return 0
	}
	return float64(hands) / d.Hours()
}

// Summary aggregates a session collection for reporting. Only
// completed sessions (both bankroll figures present) are counted.
type Summary struct {
	Sessions     int
	TotalNet     float64
	TotalHands   int
	TotalHours   float64
	AvgNet       float64
	HandsPerHour float64
}

// Summarize folds the collection into a Summary. Incomplete sessions
// are excluded from the count and contribute nothing; the averages
// fall back to zero rather than dividing by zero.
func Summarize(sessions []models.Session) Summary {
	var sum Summary
	for _, s := range sessions {
		net, ok := Net(s)
		if !ok {
			continue
		}
		sum.Sessions++
		sum.TotalNet += net
		if hands, ok := Hands(s); ok {
			sum.TotalHands += hands
		}
		if s.EndTime != nil && !s.StartTime.IsZero() {
			sum.TotalHours += s.EndTime.Sub(s.StartTime).Hours()
		}
	}
	if sum.Sessions > 0 {
		sum.AvgNet = sum.TotalNet / float64(sum.Sessions)
	}
	if sum.TotalHours > 0 {
		sum.HandsPerHour = float64(sum.TotalHands) / sum.TotalHours
	}
	return sum
}

// TotalNet sums the nets of every completed session in the store,
// regardless of any report filter.
func TotalNet(sessions []models.Session) float64 {
	var total float64
	for _, s := range sessions {
		if net, ok := Net(s); ok {
			total += net
		}
	}
	return total
}

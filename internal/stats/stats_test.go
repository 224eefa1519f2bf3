package stats

import (
	"math"
	"testing"
	"time"

	"grindlog/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func tptr(t time.Time) *time.Time {
	return &t
}

func completedSession(start time.Time, minutes int, handsStart, handsEnd int, accStart, accEnd float64) models.Session {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return models.Session{
		ID:           "s",
		Date:         start,
		StartTime:    start,
		EndTime:      tptr(end),
		HandsStart:   handsStart,
		HandsEnd:     iptr(handsEnd),
		AccountStart: accStart,
		AccountEnd:   fptr(accEnd),
	}
}

func TestNet(t *testing.T) {
	s := models.Session{AccountStart: 100, AccountEnd: fptr(250)}
	net, ok := Net(s)
	if !ok || net != 150 {
		t.Fatalf("net = %v ok=%v, want 150", net, ok)
	}

	s.AccountEnd = nil
	if _, ok := Net(s); ok {
		t.Error("net should be undefined without accountEnd")
	}
}

func TestHandsPerHour(t *testing.T) {
	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	s := completedSession(start, 90, 1000, 1300, 500, 500)

	if hands, ok := Hands(s); !ok || hands != 300 {
		t.Fatalf("hands = %v ok=%v, want 300", hands, ok)
	}
	if d, ok := Duration(s, start); !ok || d != 90*time.Minute {
		t.Fatalf("duration = %v ok=%v, want 90m", d, ok)
	}
	if got := HandsPerHour(s, start); got != 200 {
		t.Errorf("hands/hour = %v, want 200", got)
	}
}

func TestHandsPerHourZeroFallbacks(t *testing.T) {
	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)

	zeroLength := completedSession(start, 0, 1000, 1100, 0, 0)
	if got := HandsPerHour(zeroLength, start); got != 0 {
		t.Errorf("zero-duration pace = %v, want 0", got)
	}

	noHands := completedSession(start, 60, 1000, 1100, 0, 0)
	noHands.HandsEnd = nil
	if got := HandsPerHour(noHands, start.Add(time.Hour)); got != 0 {
		t.Errorf("missing hands pace = %v, want 0", got)
	}
}

func TestActiveSessionDurationRunsAgainstNow(t *testing.T) {
	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	s := models.Session{StartTime: start, IsActive: true}

	now := start.Add(47 * time.Minute)
	mins, ok := DurationMinutes(s, now)
	if !ok || mins != 47 {
		t.Fatalf("live duration = %v ok=%v, want 47", mins, ok)
	}
}

func TestDurationUndefinedWithoutStart(t *testing.T) {
	if _, ok := Duration(models.Session{}, time.Now()); ok {
		t.Error("duration should be undefined without a start time")
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedSession(start, 60, 1000, 1200, 100, 150), // +50
		completedSession(start, 30, 1200, 1300, 150, 130), // -20
		completedSession(start, 90, 1300, 1600, 130, 160), // +30
		{ID: "open", StartTime: start, HandsStart: 1600, AccountStart: 160, IsActive: true},
	}

	sum := Summarize(sessions)
	if sum.Sessions != 3 {
		t.Errorf("completed count = %d, want 3", sum.Sessions)
	}
	if sum.TotalNet != 60 {
		t.Errorf("total net = %v, want 60", sum.TotalNet)
	}
	if sum.TotalHands != 600 {
		t.Errorf("total hands = %d, want 600", sum.TotalHands)
	}
	if sum.TotalHours != 3 {
		t.Errorf("total hours = %v, want 3", sum.TotalHours)
	}
	if sum.AvgNet != 20 {
		t.Errorf("avg net = %v, want 20", sum.AvgNet)
	}
	if sum.HandsPerHour != 200 {
		t.Errorf("hands/hour = %v, want 200", sum.HandsPerHour)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Sessions != 0 || sum.AvgNet != 0 || sum.HandsPerHour != 0 {
		t.Errorf("empty summary should be all zeros: %+v", sum)
	}
}

func TestTotalNetIgnoresIncomplete(t *testing.T) {
	start := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedSession(start, 60, 0, 0, 100, 250),
		{StartTime: start, AccountStart: 250, IsActive: true},
		completedSession(start, 60, 0, 0, 250, 200),
	}
	if got := TotalNet(sessions); math.Abs(got-100) > 1e-9 {
		t.Errorf("total net = %v, want 100", got)
	}
}

func TestFilterConjunction(t *testing.T) {
	mk := func(id, limit, format string, straddle bool) models.Session {
		return models.Session{ID: id, Limit: limit, Format: format, Straddle: straddle}
	}
	sessions := []models.Session{
		mk("1", "2/4 (1 ante)", "HU with ante", false),
		mk("2", "2/4 (1 ante)", "8-max with ante", true),
		mk("3", "5/10 (2 ante)", "HU with ante", true),
		mk("4", "5/10 (2 ante)", "8-max with ante", false),
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty passes all", Filter{}, []string{"1", "2", "3", "4"}},
		{"stake only", Filter{StakeLabel: "2/4"}, []string{"1", "2"}},
		{"stake and format", Filter{StakeLabel: "2/4", FormatLabel: "HU with ante"}, []string{"1"}},
		{"straddle yes", Filter{Straddle: StraddleYes}, []string{"2", "3"}},
		{"straddle no", Filter{Straddle: StraddleNo}, []string{"1", "4"}},
		{"all three", Filter{StakeLabel: "5/10", FormatLabel: "8-max with ante", Straddle: StraddleNo}, []string{"4"}},
		{"no match", Filter{StakeLabel: "10/20"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sessions)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sessions, want %d", len(got), len(tt.want))
			}
			for i, s := range got {
				if s.ID != tt.want[i] {
					t.Errorf("position %d: got %s, want %s", i, s.ID, tt.want[i])
				}
			}
		})
	}
}

func TestEmptyFilterReturnsSameSlice(t *testing.T) {
	sessions := []models.Session{{ID: "1"}, {ID: "2"}}
	got := Filter{}.Apply(sessions)
	if &got[0] != &sessions[0] {
		t.Error("empty filter should return input unchanged")
	}
}

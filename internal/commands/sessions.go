package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"grindlog/internal/models"
	"grindlog/internal/stats"
	"grindlog/internal/store"
	"grindlog/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a past session",
	Long: `Record a completed session in interactive mode.

Opens a step-by-step form for the session fields: times, hand
counters, stake, format, straddle, and account figures. The ending
hand counter and account balance are required before the session can
be saved.`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		settings, err := app.Bridge.LoadSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		prefilled := map[string]string{
			"limit":  settings.Limit,
			"format": settings.Format,
		}
		if prev, ok := lastSession(app.Store.Snapshot().Sessions); ok {
			if prev.HandsEnd != nil {
				prefilled["hands_start"] = strconv.Itoa(*prev.HandsEnd)
			}
			if prev.AccountEnd != nil {
				prefilled["account_start"] = strconv.FormatFloat(*prev.AccountEnd, 'f', -1, 64)
			}
		}

		if err := tui.RunSessionWizard(app.Store, prefilled, ""); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit an existing session",
	Long: `Edit an existing session in interactive mode.

Opens the same form as 'grindlog add' with every field pre-populated.
Session ids are shown by 'grindlog ls'; a unique id prefix works too.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		session, err := findSession(app.Store.Snapshot().Sessions, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		prefilled := map[string]string{
			"date":          session.Date.Format("02/01/2006"),
			"start":         session.StartTime.Format("02/01/2006 15:04"),
			"hands_start":   strconv.Itoa(session.HandsStart),
			"limit":         session.Limit,
			"format":        session.Format,
			"straddle":      boolWord(session.Straddle),
			"account_start": strconv.FormatFloat(session.AccountStart, 'f', -1, 64),
		}
		if session.EndTime != nil {
			prefilled["end"] = session.EndTime.Format("02/01/2006 15:04")
		}
		if session.HandsEnd != nil {
			prefilled["hands_end"] = strconv.Itoa(*session.HandsEnd)
		}
		if session.AccountEnd != nil {
			prefilled["account_end"] = strconv.FormatFloat(*session.AccountEnd, 'f', -1, 64)
		}

		if err := tui.RunSessionWizard(app.Store, prefilled, session.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List sessions",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		state := app.Store.Snapshot()
		if len(state.Sessions) == 0 {
			fmt.Println("No sessions recorded. Use 'grindlog start' or 'grindlog add' to record your first session.")
			return
		}

		printSessionTable(state.Sessions)
		fmt.Printf("\nTotal net: %+.2f\n", stats.TotalNet(state.Sessions))
	}),
}

var removeCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"remove"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		session, err := findSession(app.Store.Snapshot().Sessions, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete the %s session from %s?",
			session.Limit, session.Date.Format("02/01/2006"))) {
			fmt.Println("Cancelled.")
			return
		}

		app.Store.Dispatch(store.DeleteSession{ID: session.ID})
		fmt.Println("Session deleted.")
	}),
}

// findSession resolves a full id or a unique prefix.
func findSession(sessions []models.Session, id string) (models.Session, error) {
	var matches []models.Session
	for _, s := range sessions {
		if s.ID == id {
			return s, nil
		}
		if strings.HasPrefix(s.ID, id) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Session{}, fmt.Errorf("session '%s' not found", id)
	default:
		return models.Session{}, fmt.Errorf("session id '%s' is ambiguous (%d matches)", id, len(matches))
	}
}

func printSessionTable(sessions []models.Session) {
	now := time.Now()
	fmt.Printf("%-10s %-10s %-20s %-16s %-8s %-9s %-7s %s\n",
		"ID", "DATE", "STAKE", "FORMAT", "STRADDLE", "DURATION", "HANDS", "NET")
	fmt.Println(strings.Repeat("-", 92))

	for _, s := range sessions {
		duration := "active"
		if s.EndTime != nil {
			if mins, ok := stats.DurationMinutes(s, now); ok {
				duration = fmt.Sprintf("%dh %02dm", mins/60, mins%60)
			}
		}
		hands := "-"
		if h, ok := stats.Hands(s); ok {
			hands = strconv.Itoa(h)
		}
		net := "-"
		if n, ok := stats.Net(s); ok {
			net = fmt.Sprintf("%+.2f", n)
		}
		straddle := "no"
		if s.Straddle {
			straddle = "yes"
		}

		fmt.Printf("%-10s %-10s %-20s %-16s %-8s %-9s %-7s %s\n",
			shortID(s.ID),
			s.Date.Format("02/01/2006"),
			truncate(s.Limit, 20),
			truncate(s.Format, 16),
			straddle,
			duration,
			hands,
			net)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// confirm asks a destructive-action question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	removeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"grindlog/internal/models"
	"grindlog/internal/parser"
	"grindlog/internal/stats"
	"grindlog/internal/store"
	"grindlog/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session",
	Long: `Start a live poker session. Opens the session panel by default,
use --no-ui for a plain start.

The stake defaults to your saved defaults ('grindlog defaults set'),
and the starting hand and account figures are prefilled from the
previous session when available.

Examples:
  grindlog start --limit "2/4 (1 ante)" --hands 1200 --account 740
  grindlog start --format "8-max with ante" --no-ui`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		state := app.Store.Snapshot()
		if state.CurrentSession != nil {
			fmt.Printf("Error: a session is already running (started %s). Stop it first with 'grindlog stop'\n",
				state.CurrentSession.StartTime.Format("15:04"))
			return
		}

		settings, err := app.Bridge.LoadSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		limit, _ := cmd.Flags().GetString("limit")
		format, _ := cmd.Flags().GetString("format")
		if limit == "" {
			limit = settings.Limit
		}
		if format == "" {
			format = settings.Format
		}
		if format == "" {
			format = "HU with ante"
		}
		if limit == "" {
			fmt.Println("Error: no stake given. Use --limit or save one with 'grindlog defaults set'")
			return
		}

		// The 8-max game is played with a mandatory straddle by default
		straddle, _ := cmd.Flags().GetBool("straddle")
		if !cmd.Flags().Changed("straddle") && format == "8-max with ante" {
			straddle = true
		}

		hands, _ := cmd.Flags().GetInt("hands")
		account, _ := cmd.Flags().GetFloat64("account")
		if !cmd.Flags().Changed("hands") || !cmd.Flags().Changed("account") {
			// Prefill from the previous session's ending figures
			if prev, ok := lastSession(state.Sessions); ok {
				if !cmd.Flags().Changed("hands") && prev.HandsEnd != nil {
					hands = *prev.HandsEnd
				}
				if !cmd.Flags().Changed("account") && prev.AccountEnd != nil {
					account = *prev.AccountEnd
				}
			}
		}

		at, _ := cmd.Flags().GetString("at")
		startTime, err := parser.ParseDateTime(at, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session := models.Session{
			ID:           store.NewID(),
			Date:         startTime,
			StartTime:    startTime,
			HandsStart:   hands,
			Limit:        limit,
			Format:       format,
			Straddle:     straddle,
			AccountStart: account,
			IsActive:     true,
		}

		app.Store.Dispatch(store.AddSession{Session: session})
		current := session.Clone()
		app.Store.Dispatch(store.SetCurrentSession{Session: &current})

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI || app.Config.NoUI {
			fmt.Printf("🂡 Session started at %s (%s, %s)\n", session.StartTime.Format("15:04"), session.Limit, session.Format)
			fmt.Printf("Starting from hand %d with %.2f\n", session.HandsStart, session.AccountStart)
			return
		}

		if err := tui.RunSessionPanel(app.Store); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the running session",
	Long: `End the running session. The ending hand counter and account
balance are required; without them the session stays open.

Example:
  grindlog stop --hands 1530 --account 812.50`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		state := app.Store.Snapshot()
		if state.CurrentSession == nil {
			fmt.Println("No session is running")
			return
		}

		if !cmd.Flags().Changed("hands") || !cmd.Flags().Changed("account") {
			fmt.Println("Error: both --hands and --account are required to end a session")
			return
		}
		hands, _ := cmd.Flags().GetInt("hands")
		account, _ := cmd.Flags().GetFloat64("account")

		at, _ := cmd.Flags().GetString("at")
		endTime, err := parser.ParseDateTime(at, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session := endSession(*state.CurrentSession, endTime, hands, account)
		app.Store.Dispatch(store.UpdateSession{Session: session})
		app.Store.Dispatch(store.SetCurrentSession{Session: nil})

		printSessionResult(session)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running session",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		state := app.Store.Snapshot()
		if state.CurrentSession == nil {
			fmt.Println("No session is running")
			total := stats.TotalNet(state.Sessions)
			fmt.Printf("Total net across %d sessions: %+.2f\n", len(state.Sessions), total)
			return
		}

		s := *state.CurrentSession
		now := time.Now()
		mins, _ := stats.DurationMinutes(s, now)
		fmt.Printf("🂡 Session running: %s, %s\n", s.Limit, s.Format)
		fmt.Printf("Started at: %s\n", s.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed: %dh %dm\n", mins/60, mins%60)
		fmt.Printf("Started from hand %d with %.2f\n", s.HandsStart, s.AccountStart)
	}),
}

// endSession closes out a session with its ending figures.
func endSession(s models.Session, endTime time.Time, hands int, account float64) models.Session {
	s.EndTime = &endTime
	s.HandsEnd = &hands
	s.AccountEnd = &account
	s.IsActive = false
	return s
}

// lastSession returns the most recently entered session, if any.
func lastSession(sessions []models.Session) (models.Session, bool) {
	if len(sessions) == 0 {
		return models.Session{}, false
	}
	return sessions[len(sessions)-1], true
}

func printSessionResult(s models.Session) {
	fmt.Printf("🂠 Session ended at %s\n", s.EndTime.Format("15:04"))
	if mins, ok := stats.DurationMinutes(s, time.Now()); ok {
		fmt.Printf("Duration: %dh %dm\n", mins/60, mins%60)
	}
	if hands, ok := stats.Hands(s); ok {
		fmt.Printf("Hands: %d (%.0f/hour)\n", hands, stats.HandsPerHour(s, time.Now()))
	}
	if net, ok := stats.Net(s); ok {
		fmt.Printf("Net: %+.2f\n", net)
	}
}

func init() {
	startCmd.Flags().String("limit", "", "Stake/limit label for the session")
	startCmd.Flags().String("format", "", "Game format label")
	startCmd.Flags().Bool("straddle", false, "Play with a straddle")
	startCmd.Flags().Int("hands", 0, "Starting hand counter")
	startCmd.Flags().Float64("account", 0, "Starting account balance")
	startCmd.Flags().String("at", "", "Start time (now, HH:MM, dd/mm/yyyy HH:MM)")
	startCmd.Flags().Bool("no-ui", false, "Start without the live session panel")

	stopCmd.Flags().Int("hands", 0, "Ending hand counter")
	stopCmd.Flags().Float64("account", 0, "Ending account balance")
	stopCmd.Flags().String("at", "", "End time (now, HH:MM, dd/mm/yyyy HH:MM)")
}

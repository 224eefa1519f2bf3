package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"grindlog/internal/models"
	"grindlog/internal/stats"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show aggregate results",
	Long: `Show summary statistics and the session history through the report
filter. Filter flags update the saved filter, which persists across
runs; --clear resets it.

Examples:
  grindlog report
  grindlog report --stake 2/4 --format "HU with ante"
  grindlog report --no-straddle
  grindlog report --clear`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		filter := app.Bridge.LoadFilter()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			filter = stats.Filter{}
		}
		if cmd.Flags().Changed("stake") {
			filter.StakeLabel, _ = cmd.Flags().GetString("stake")
		}
		if cmd.Flags().Changed("format") {
			filter.FormatLabel, _ = cmd.Flags().GetString("format")
		}
		if straddle, _ := cmd.Flags().GetBool("straddle"); straddle {
			filter.Straddle = stats.StraddleYes
		}
		if noStraddle, _ := cmd.Flags().GetBool("no-straddle"); noStraddle {
			filter.Straddle = stats.StraddleNo
		}

		if err := app.Bridge.SaveFilter(filter); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		state := app.Store.Snapshot()
		filtered := filter.Apply(state.Sessions)
		summary := stats.Summarize(filtered)

		if !filter.IsZero() {
			fmt.Printf("Filter: %s\n\n", describeFilter(filter))
		}

		fmt.Println("SUMMARY")
		fmt.Printf("  Sessions:     %d\n", summary.Sessions)
		fmt.Printf("  Total net:    %+.2f\n", summary.TotalNet)
		fmt.Printf("  Avg net:      %+.2f\n", summary.AvgNet)
		fmt.Printf("  Total hands:  %d\n", summary.TotalHands)
		fmt.Printf("  Total hours:  %.1f\n", summary.TotalHours)
		fmt.Printf("  Hands/hour:   %.1f\n", summary.HandsPerHour)
		fmt.Println()

		if len(filtered) == 0 {
			fmt.Println("No sessions match.")
			return
		}
		printSessionTable(filtered)

		// Offer the distinct values present, like the original picker did
		if filter.IsZero() {
			stakes, formats := distinctLabels(state.Sessions)
			if len(stakes) > 1 || len(formats) > 1 {
				fmt.Printf("\nFilter by stake (%s) or format (%s) with --stake/--format.\n",
					joinLabels(stakes), joinLabels(formats))
			}
		}
	}),
}

func describeFilter(f stats.Filter) string {
	out := ""
	if f.StakeLabel != "" {
		out += fmt.Sprintf("stake ~ %q ", f.StakeLabel)
	}
	if f.FormatLabel != "" {
		out += fmt.Sprintf("format = %q ", f.FormatLabel)
	}
	switch f.Straddle {
	case stats.StraddleYes:
		out += "straddle only"
	case stats.StraddleNo:
		out += "no straddle"
	}
	return out
}

// distinctLabels collects the stake and format labels actually present
// in the recorded sessions, in first-seen order.
func distinctLabels(sessions []models.Session) (stakes, formats []string) {
	seenStake := make(map[string]bool)
	seenFormat := make(map[string]bool)
	for _, s := range sessions {
		if !seenStake[s.Limit] {
			seenStake[s.Limit] = true
			stakes = append(stakes, s.Limit)
		}
		if !seenFormat[s.Format] {
			seenFormat[s.Format] = true
			formats = append(formats, s.Format)
		}
	}
	return stakes, formats
}

func joinLabels(labels []string) string {
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += ", "
		}
		out += l
	}
	return out
}

func init() {
	reportCmd.Flags().String("stake", "", "Keep sessions whose stake label contains this text")
	reportCmd.Flags().String("format", "", "Keep sessions with exactly this format label")
	reportCmd.Flags().Bool("straddle", false, "Keep only straddled sessions")
	reportCmd.Flags().Bool("no-straddle", false, "Keep only non-straddled sessions")
	reportCmd.Flags().Bool("clear", false, "Reset the saved filter")
}

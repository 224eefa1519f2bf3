package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"grindlog/internal/persist"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Manage default session settings",
	Long: `Manage the saved default stake and format. New sessions read them
once on startup. They live under their own key, separate from the
tracked session data.`,
}

var defaultsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save default stake and format",
	Long: `Save a preferred stake and format for new sessions.

Example:
  grindlog defaults set --limit "5/10 (2 ante)" --format "HU with ante"`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		settings, err := app.Bridge.LoadSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if cmd.Flags().Changed("limit") {
			settings.Limit, _ = cmd.Flags().GetString("limit")
		}
		if cmd.Flags().Changed("format") {
			settings.Format, _ = cmd.Flags().GetString("format")
		}

		if err := app.Bridge.SaveSettings(settings); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Defaults saved")
	}),
}

var defaultsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show default session settings",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		settings, err := app.Bridge.LoadSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if settings == (persist.Settings{}) {
			fmt.Println("No defaults saved. Use 'grindlog defaults set'.")
			return
		}
		fmt.Printf("Stake:  %s\n", orNone(settings.Limit))
		fmt.Printf("Format: %s\n", orNone(settings.Format))
	}),
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	defaultsSetCmd.Flags().String("limit", "", "Default stake/limit label")
	defaultsSetCmd.Flags().String("format", "", "Default game format label")

	defaultsCmd.AddCommand(defaultsSetCmd)
	defaultsCmd.AddCommand(defaultsShowCmd)
}

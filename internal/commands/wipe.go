package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"grindlog/internal/persist"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all tracked data",
	Long: `Delete every saved blob: sessions, players, table ratings, the
report filter, and the default settings. This cannot be undone.`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Delete ALL tracked data? This cannot be undone") {
			fmt.Println("Cancelled.")
			return
		}

		for _, key := range []string{persist.DataKey, persist.SettingsKey, persist.FiltersKey} {
			if err := app.KV.Delete(key); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		fmt.Println("All data deleted.")
	}),
}

func init() {
	wipeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

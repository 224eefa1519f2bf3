package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grindlog/internal/models"
	"grindlog/internal/store"
)

// The stake and format reference lists are append-only: entries feed
// the pickers and defaults but are never edited or removed.

var stakeCmd = &cobra.Command{
	Use:     "stake",
	Aliases: []string{"stakes"},
	Short:   "Manage the stake list",
}

var stakeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a stake",
	Long: `Add a stake/limit label to the reference list.

Example:
  grindlog stake add "25/50 (10 ante)" --format HU`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		format, _ := cmd.Flags().GetString("format")

		app.Store.Dispatch(store.AddStake{Stake: models.Stake{
			ID:     store.NewID(),
			Name:   name,
			Format: format,
		}})
		fmt.Printf("✅ Added stake %s\n", name)
	}),
}

var stakeListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List stakes",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		for _, s := range app.Store.Snapshot().Stakes {
			fmt.Printf("%-22s %s\n", s.Name, s.Format)
		}
	}),
}

var formatCmd = &cobra.Command{
	Use:     "format",
	Aliases: []string{"formats"},
	Short:   "Manage the format list",
}

var formatAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a game format",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		app.Store.Dispatch(store.AddFormat{Format: models.Format{
			ID:   store.NewID(),
			Name: name,
		}})
		fmt.Printf("✅ Added format %s\n", name)
	}),
}

var formatListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List formats",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		for _, f := range app.Store.Snapshot().Formats {
			fmt.Println(f.Name)
		}
	}),
}

func init() {
	stakeAddCmd.Flags().String("format", "", "Format category for the stake (HU, 8-max)")

	stakeCmd.AddCommand(stakeAddCmd)
	stakeCmd.AddCommand(stakeListCmd)
	formatCmd.AddCommand(formatAddCmd)
	formatCmd.AddCommand(formatListCmd)
}

package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"grindlog/internal/config"
	"grindlog/internal/kv"
	"grindlog/internal/logging"
	"grindlog/internal/models"
	"grindlog/internal/persist"
	"grindlog/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "grindlog",
	Short: "A poker session tracker and opponent notebook",
	Long: `grindlog tracks your poker play from the terminal: record sessions
with hand counts and bankroll figures, keep color-tagged notes on
opponents, rate tables, and pull filtered reports on your results.`,
}

// App bundles everything a command needs: config, the key/value
// backend, the state store with persistence attached, and the bridge
// for the settings and filter blobs.
type App struct {
	Config config.Config
	KV     *kv.Store
	Store  *store.Store
	Bridge *persist.Bridge
}

// openApp wires the process: config, logging, the database, and a
// store that has already replayed the saved state.
func openApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.LogLevel)

	backend, err := kv.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	st := store.New(models.NewAppState(), log.Logger)
	bridge := persist.NewBridge(backend, log.Logger)
	bridge.Attach(st)

	return &App{Config: cfg, KV: backend, Store: st, Bridge: bridge}, nil
}

// Close flushes nothing (saves are synchronous) and releases the
// database handle.
func (a *App) Close() {
	if err := a.KV.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}

// withApp wraps a command function so it runs against an opened App.
func withApp(fn func(app *App, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()
		fn(app, cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(stakeCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for grindlog",
	Long:  `Display detailed help for all grindlog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grindlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func showCustomHelp() {
	fmt.Print(`
 ██████╗ ██████╗ ██╗███╗   ██╗██████╗
██╔════╝ ██╔══██╗██║████╗  ██║██╔══██╗
██║  ███╗██████╔╝██║██╔██╗ ██║██║  ██║
██║   ██║██╔══██╗██║██║╚██╗██║██║  ██║
╚██████╔╝██║  ██║██║██║ ╚████║██████╔╝
 ╚═════╝ ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝

grindlog - Poker Session Tracker + Opponent Notebook

SESSIONS:

  start                   Start a live session
    --limit               Stake label (falls back to saved defaults)
    --format              Format label
    --straddle            Straddled game
    --hands               Starting hand counter (prefilled from last session)
    --account             Starting balance (prefilled from last session)
    --at                  Start time: now, HH:MM, dd/mm/yyyy HH:MM
    --no-ui               Skip the live session panel

  stop                    End the running session
    --hands               Ending hand counter (required)
    --account             Ending balance (required)

  status                  Show the running session
  add                     Record a past session (interactive form)
  edit <id>               Edit a session (interactive form)
  ls                      List sessions with duration, hands, and net
  rm <id>                 Delete a session (asks for confirmation)

REPORTS:

  report                  Summary statistics + filtered session history
    --stake               Stake label filter (substring, persisted)
    --format              Format label filter (exact, persisted)
    --straddle            Straddled sessions only
    --no-straddle         Non-straddled sessions only
    --clear               Reset the saved filter

OPPONENTS:

  player add <tokens>     Add an opponent with quick-add syntax:
                            #red vpip:34 pfr:8 hands:1200 stakes:100,200
  player ls               List opponents (-i opens the roster browser)
  player edit <id>        Edit opponent fields by flag
  player rm <id>          Delete an opponent (old ratings keep their copy)

TABLES:

  table rate <name>       Rate a table 1-5 and snapshot who sat there
  table ls                List table ratings
  table edit <id>         Edit a rating

SETUP:

  stake add|ls            Manage the stake reference list
  format add|ls           Manage the format reference list
  defaults set|show       Preferred stake/format for new sessions
  wipe                    Delete all tracked data

Use --no-ui or GRINDLOG_NO_UI=true for CLI-only mode.

`)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grindlog/internal/models"
	"grindlog/internal/parser"
	"grindlog/internal/store"
	"grindlog/internal/tui"
)

var playerCmd = &cobra.Command{
	Use:     "player",
	Aliases: []string{"players"},
	Short:   "Manage opponent notes",
}

var playerAddCmd = &cobra.Command{
	Use:   "add <name and tokens>",
	Short: "Add an opponent",
	Long: `Add an opponent to the roster with quick-add syntax.

Syntax tokens (anywhere in the input):
  #tag          Color tag: green, yellow, red, cyan, magenta
  hands:1200    Hands observed
  vpip:34       VPIP percentage
  pfr:8         PFR percentage
  stakes:100,200  Stakes where seen

Example:
  grindlog player add "Ivan the Rock #yellow vpip:18 pfr:14" --note "folds rivers"`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		parsed := parser.ParsePlayer(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, "; "))
			return
		}
		if parsed.Name == "" {
			fmt.Println("Error: player name is required")
			return
		}

		note, _ := cmd.Flags().GetString("note")
		exploits, _ := cmd.Flags().GetString("exploits")

		player := models.Player{
			ID:         store.NewID(),
			Name:       parsed.Name,
			ColorTag:   parsed.ColorTag,
			TotalHands: parsed.TotalHands,
			VPIP:       parsed.VPIP,
			PFR:        parsed.PFR,
			Note:       note,
			Exploits:   exploits,
			Stakes:     parsed.Stakes,
		}

		app.Store.Dispatch(store.AddPlayer{Player: player})
		fmt.Printf("✅ Added %s (%s)\n", player.Name, player.ColorTag.Label())
	}),
}

var playerListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List opponents",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		players := app.Store.Snapshot().Players
		if search, _ := cmd.Flags().GetString("search"); search != "" {
			players = searchPlayers(players, search)
		}
		if len(players) == 0 {
			fmt.Println("No opponents recorded. Use 'grindlog player add' to start your roster.")
			return
		}

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive && !app.Config.NoUI {
			if err := tui.RunRoster(app.Store, players); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		fmt.Printf("%-10s %-20s %-14s %-7s %-6s %-6s %s\n",
			"ID", "NAME", "TAG", "HANDS", "VPIP", "PFR", "NOTE")
		fmt.Println(strings.Repeat("-", 84))
		for _, p := range players {
			fmt.Printf("%-10s %-20s %-14s %-7d %-6.1f %-6.1f %s\n",
				shortID(p.ID),
				truncate(p.Name, 20),
				p.ColorTag.Label(),
				p.TotalHands,
				p.VPIP,
				p.PFR,
				truncate(p.Note, 28))
		}
	}),
}

var playerEditCmd = &cobra.Command{
	Use:   "edit <player-id>",
	Short: "Edit an opponent",
	Long: `Edit an opponent by id. Only the given flags change; quick-add
tokens in the positional argument replace the parsed fields.

Examples:
  grindlog player edit 01JM --note "opens too wide from the button"
  grindlog player edit 01JM --tag red --vpip 21`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		player, err := findPlayer(app.Store.Snapshot().Players, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			player.Name = name
		}
		if cmd.Flags().Changed("tag") {
			raw, _ := cmd.Flags().GetString("tag")
			tag := models.ColorTag(strings.ToLower(raw))
			if !tag.Valid() {
				fmt.Printf("Error: unknown color tag '%s'. Use: green, yellow, red, cyan, or magenta\n", raw)
				return
			}
			player.ColorTag = tag
		}
		if cmd.Flags().Changed("hands") {
			player.TotalHands, _ = cmd.Flags().GetInt("hands")
		}
		if cmd.Flags().Changed("vpip") {
			player.VPIP, _ = cmd.Flags().GetFloat64("vpip")
		}
		if cmd.Flags().Changed("pfr") {
			player.PFR, _ = cmd.Flags().GetFloat64("pfr")
		}
		if cmd.Flags().Changed("note") {
			player.Note, _ = cmd.Flags().GetString("note")
		}
		if cmd.Flags().Changed("exploits") {
			player.Exploits, _ = cmd.Flags().GetString("exploits")
		}
		if cmd.Flags().Changed("stakes") {
			player.Stakes, _ = cmd.Flags().GetIntSlice("stakes")
		}

		app.Store.Dispatch(store.UpdatePlayer{Player: player})
		fmt.Printf("✅ Updated %s\n", player.Name)
	}),
}

var playerRemoveCmd = &cobra.Command{
	Use:     "rm <player-id>",
	Aliases: []string{"remove"},
	Short:   "Delete an opponent",
	Long: `Delete an opponent from the roster. Table ratings keep the player
snapshots taken when they were rated.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		player, err := findPlayer(app.Store.Snapshot().Players, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete %s from the roster?", player.Name)) {
			fmt.Println("Cancelled.")
			return
		}

		app.Store.Dispatch(store.DeletePlayer{ID: player.ID})
		fmt.Printf("Deleted %s.\n", player.Name)
	}),
}

// findPlayer resolves a full id, a unique id prefix, or an exact name.
func findPlayer(players []models.Player, key string) (models.Player, error) {
	var matches []models.Player
	for _, p := range players {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return p, nil
		}
		if strings.HasPrefix(p.ID, key) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Player{}, fmt.Errorf("player '%s' not found", key)
	default:
		return models.Player{}, fmt.Errorf("player id '%s' is ambiguous (%d matches)", key, len(matches))
	}
}

func searchPlayers(players []models.Player, query string) []models.Player {
	query = strings.ToLower(query)
	var out []models.Player
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Note), query) ||
			strings.Contains(strings.ToLower(p.Exploits), query) {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	playerAddCmd.Flags().String("note", "", "Free-text note")
	playerAddCmd.Flags().String("exploits", "", "Exploit note")

	playerListCmd.Flags().StringP("search", "s", "", "Filter by name or note text")
	playerListCmd.Flags().BoolP("interactive", "i", false, "Browse the roster in the TUI")

	playerEditCmd.Flags().String("name", "", "Rename the player")
	playerEditCmd.Flags().String("tag", "", "Color tag: green, yellow, red, cyan, magenta")
	playerEditCmd.Flags().Int("hands", 0, "Hands observed")
	playerEditCmd.Flags().Float64("vpip", 0, "VPIP percentage")
	playerEditCmd.Flags().Float64("pfr", 0, "PFR percentage")
	playerEditCmd.Flags().String("note", "", "Free-text note")
	playerEditCmd.Flags().String("exploits", "", "Exploit note")
	playerEditCmd.Flags().IntSlice("stakes", nil, "Stakes where seen")

	playerRemoveCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerEditCmd)
	playerCmd.AddCommand(playerRemoveCmd)
}

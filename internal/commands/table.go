package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grindlog/internal/models"
	"grindlog/internal/store"
)

var tableCmd = &cobra.Command{
	Use:     "table",
	Aliases: []string{"tables"},
	Short:   "Rate and review tables",
}

var tableRateCmd = &cobra.Command{
	Use:   "rate <table-name>",
	Short: "Rate a table",
	Long: `Rate a table from 1 to 5 and record who was sitting at it.

The named players are copied into the rating as they look right now:
editing or deleting a player later never changes an old rating.

Example:
  grindlog table rate "Aria 7" --rating 4 --players "Ivan,MadLad" --notes "two whales"`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		rating, _ := cmd.Flags().GetInt("rating")
		if rating < 1 || rating > 5 {
			fmt.Println("Error: --rating must be between 1 and 5")
			return
		}

		players, err := resolvePlayers(app, cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		notes, _ := cmd.Flags().GetString("notes")

		table := models.TableRating{
			ID:        store.NewID(),
			TableName: strings.Join(args, " "),
			Players:   players,
			Rating:    rating,
			Notes:     notes,
		}

		app.Store.Dispatch(store.AddTableRating{Rating: table})
		fmt.Printf("✅ Rated %s: %s (%d/5)\n", table.TableName, models.RatingLabel(rating), rating)
	}),
}

var tableListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List table ratings",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		ratings := app.Store.Snapshot().TableRatings
		if len(ratings) == 0 {
			fmt.Println("No tables rated. Use 'grindlog table rate' after scouting a table.")
			return
		}

		for _, r := range ratings {
			fmt.Printf("%-10s %-20s %s %s\n", shortID(r.ID), truncate(r.TableName, 20),
				strings.Repeat("★", r.Rating)+strings.Repeat("☆", 5-r.Rating),
				models.RatingLabel(r.Rating))
			if len(r.Players) > 0 {
				names := make([]string, len(r.Players))
				for i, p := range r.Players {
					names[i] = fmt.Sprintf("%s (%s)", p.Name, p.ColorTag.Label())
				}
				fmt.Printf("           players: %s\n", strings.Join(names, ", "))
			}
			if r.Notes != "" {
				fmt.Printf("           %s\n", r.Notes)
			}
		}
	}),
}

var tableEditCmd = &cobra.Command{
	Use:   "edit <rating-id>",
	Short: "Edit a table rating",
	Long: `Edit a table rating by id. Only the given flags change; --players
replaces the embedded roster with fresh snapshots of the named
players.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		table, err := findRating(app.Store.Snapshot().TableRatings, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			table.TableName = name
		}
		if cmd.Flags().Changed("rating") {
			rating, _ := cmd.Flags().GetInt("rating")
			if rating < 1 || rating > 5 {
				fmt.Println("Error: --rating must be between 1 and 5")
				return
			}
			table.Rating = rating
		}
		if cmd.Flags().Changed("notes") {
			table.Notes, _ = cmd.Flags().GetString("notes")
		}
		if cmd.Flags().Changed("players") {
			players, err := resolvePlayers(app, cmd)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			table.Players = players
		}

		app.Store.Dispatch(store.UpdateTableRating{Rating: table})
		fmt.Printf("✅ Updated %s\n", table.TableName)
	}),
}

// resolvePlayers snapshots the named roster players for embedding.
func resolvePlayers(app *App, cmd *cobra.Command) ([]models.Player, error) {
	raw, _ := cmd.Flags().GetString("players")
	if raw == "" {
		return nil, nil
	}

	roster := app.Store.Snapshot().Players
	var out []models.Player
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		p, err := findPlayer(roster, key)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Clone())
	}
	return out, nil
}

func findRating(ratings []models.TableRating, id string) (models.TableRating, error) {
	var matches []models.TableRating
	for _, r := range ratings {
		if r.ID == id {
			return r, nil
		}
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.TableRating{}, fmt.Errorf("table rating '%s' not found", id)
	default:
		return models.TableRating{}, fmt.Errorf("rating id '%s' is ambiguous (%d matches)", id, len(matches))
	}
}

func init() {
	tableRateCmd.Flags().IntP("rating", "r", 0, "Table quality from 1 to 5")
	tableRateCmd.Flags().StringP("players", "p", "", "Comma-separated player names or ids at the table")
	tableRateCmd.Flags().String("notes", "", "Notes about table dynamics")

	tableEditCmd.Flags().String("name", "", "Rename the table")
	tableEditCmd.Flags().IntP("rating", "r", 0, "Table quality from 1 to 5")
	tableEditCmd.Flags().StringP("players", "p", "", "Replace the embedded players")
	tableEditCmd.Flags().String("notes", "", "Notes about table dynamics")

	tableCmd.AddCommand(tableRateCmd)
	tableCmd.AddCommand(tableListCmd)
	tableCmd.AddCommand(tableEditCmd)
}

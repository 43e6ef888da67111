package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/report"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/scout"
)

var (
	similarSeason   string
	similarAsOf     string
	similarPosition string
	similarN        int
)

// similarCmd finds history-wide stylistic matches for one player.
var similarCmd = &cobra.Command{
	Use:   "similar <player>",
	Short: "Find players with a similar statistical profile",
	Long: `Compares players within the same position group on the group's feature
set, using standardized cosine similarity. Pass --position to override
the reference player's classified group.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player := args[0]

		override := model.GroupUnknown
		if similarPosition != "" {
			g, ok := model.ParseGroup(similarPosition)
			if !ok {
				return fmt.Errorf("unknown position group %q", similarPosition)
			}
			override = g
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		profiles, err := buildProfiles(db, similarSeason, similarAsOf)
		if err != nil {
			return err
		}
		matches := scout.SimilarPlayers(profiles, player, similarN, override)
		if len(matches) == 0 {
			fmt.Printf("No similar players found for %q.\n", player)
			return nil
		}
		group := override
		if group == model.GroupUnknown {
			for i := range profiles {
				if profiles[i].Player == player {
					group = scout.Classify(profiles[i].Position)
					break
				}
			}
		}
		report.PrintSimilarity(os.Stdout, player, group, matches)
		return nil
	},
}

func init() {
	similarCmd.Flags().StringVar(&similarSeason, "season", "", "restrict to one season")
	similarCmd.Flags().StringVar(&similarAsOf, "asof", "", "only count matches on or before this date (YYYY-MM-DD)")
	similarCmd.Flags().StringVar(&similarPosition, "position", "", "override position group (FWD, MID, DEF, GK)")
	similarCmd.Flags().IntVar(&similarN, "top", 5, "number of matches to show")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/report"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/scout"
)

var (
	topSeason     string
	topAsOf       string
	topPosition   string
	topMinMinutes int
	topN          int
)

// topCmd ranks players by a single per-90 metric.
var topCmd = &cobra.Command{
	Use:   "top <metric>",
	Short: "Rank players by a metric",
	Long: `Ranks players by one profile metric (for example goals_per90, xA_per90,
key_passes_per90). Use --position to restrict to FWD, MID, DEF, or GK.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := args[0]

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		profiles, err := buildProfiles(db, topSeason, topAsOf)
		if err != nil {
			return err
		}
		rows := scout.TopPlayersByMetric(profiles, metric, topPosition, topMinMinutes, topN)
		if len(rows) == 0 {
			fmt.Printf("No players matched metric %q with at least %d minutes.\n", metric, topMinMinutes)
			return nil
		}
		report.PrintTopPlayers(os.Stdout, rows)
		return nil
	},
}

func init() {
	topCmd.Flags().StringVar(&topSeason, "season", "", "restrict to one season")
	topCmd.Flags().StringVar(&topAsOf, "asof", "", "only count matches on or before this date (YYYY-MM-DD)")
	topCmd.Flags().StringVar(&topPosition, "position", "", "position group filter (FWD, MID, DEF, GK)")
	topCmd.Flags().IntVar(&topMinMinutes, "min-minutes", 900, "minimum minutes played")
	topCmd.Flags().IntVar(&topN, "top", 20, "number of players to show")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/league"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/report"
)

var (
	tableSeason string
	tableAsOf   string
)

// tableCmd prints the league table built from stored team matches.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the league standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cutoff, err := parseAsOf(tableAsOf)
		if err != nil {
			return err
		}
		teams, err := db.LoadTeamMatches(tableSeason, cutoff)
		if err != nil {
			return fmt.Errorf("load team matches: %w", err)
		}
		rows := league.Standings(teams, tableSeason)
		if len(rows) == 0 {
			fmt.Println("No team data stored. Run fetch or load first.")
			return nil
		}
		report.PrintStandings(os.Stdout, rows)
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableSeason, "season", "", "restrict to one season")
	tableCmd.Flags().StringVar(&tableAsOf, "asof", "", "only count matches on or before this date (YYYY-MM-DD)")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/understat"
)

var (
	fetchLeague string
	fetchSeason string
)

// fetchCmd scrapes a season of team match data from understat.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a season of team match data from understat.com",
	Long: `Fetches the understat league page for a season and stores every team's
match history. Understat's league page carries no per-player match rows
and no shot counts; load those from CSV with the load command.

Example:
  plstats fetch --league EPL --season 2024`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchLeague, "league", "EPL", "understat league code")
	fetchCmd.Flags().StringVar(&fetchSeason, "season", "", "season start year, e.g. 2024 (required)")
	_ = fetchCmd.MarkFlagRequired("season")
}

func runFetch(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	client := understat.NewClient()
	records, err := client.LeagueTeamMatches(fetchLeague, fetchSeason)
	if err != nil {
		return fmt.Errorf("fetch league data: %w", err)
	}
	if err := db.InsertTeamMatches(records); err != nil {
		return fmt.Errorf("store team matches: %w", err)
	}
	fmt.Printf("Stored %d team match rows for %s %s\n", len(records), fetchLeague, fetchSeason)
	return nil
}

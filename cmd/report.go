package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/report"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/scout"
)

var (
	reportSeason string
	reportAsOf   string
)

// reportCmd prints the full scouting report for one player.
var reportCmd = &cobra.Command{
	Use:   "report <player>",
	Short: "Show a player's scouting report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		profiles, err := buildProfiles(db, reportSeason, reportAsOf)
		if err != nil {
			return err
		}
		r := scout.BuildReport(profiles, args[0])
		if r.Err != "" {
			return fmt.Errorf("%s", r.Err)
		}
		report.PrintPlayerReport(os.Stdout, r)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportSeason, "season", "", "restrict to one season")
	reportCmd.Flags().StringVar(&reportAsOf, "asof", "", "only count matches on or before this date (YYYY-MM-DD)")
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/report"
)

// listCmd summarizes the stored data per season.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored seasons",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		seasons, err := db.ListSeasons()
		if err != nil {
			return err
		}
		report.PrintSeasons(os.Stdout, seasons)
		return nil
	},
}

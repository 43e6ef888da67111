package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/loader"
)

var (
	loadTeamsPath   string
	loadPlayersPath string
)

// loadCmd ingests team and player feature CSV files into the store.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load team/player feature CSV files into the database",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadTeamsPath, "teams", "", "path to team features CSV")
	loadCmd.Flags().StringVar(&loadPlayersPath, "players", "", "path to player features CSV")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadTeamsPath == "" && loadPlayersPath == "" {
		return fmt.Errorf("nothing to load: pass --teams and/or --players")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if loadTeamsPath != "" {
		f, err := os.Open(loadTeamsPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", loadTeamsPath, err)
		}
		records, err := loader.TeamMatches(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", loadTeamsPath, err)
		}
		if err := db.InsertTeamMatches(records); err != nil {
			return fmt.Errorf("store team matches: %w", err)
		}
		fmt.Printf("Loaded %d team match rows from %s\n", len(records), loadTeamsPath)
	}

	if loadPlayersPath != "" {
		f, err := os.Open(loadPlayersPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", loadPlayersPath, err)
		}
		records, err := loader.PlayerMatches(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", loadPlayersPath, err)
		}
		if err := db.InsertPlayerMatches(records); err != nil {
			return fmt.Errorf("store player matches: %w", err)
		}
		fmt.Printf("Loaded %d player match rows from %s\n", len(records), loadPlayersPath)
	}
	return nil
}

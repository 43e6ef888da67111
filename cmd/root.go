package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/profile"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/storage"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "plstats",
	Short: "Premier League analytics tool",
	Long:  "Load Premier League match data and compute team/player performance metrics, scouting reports, and similarity searches.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".plstats", "plstats.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(defenseCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// openDB opens the store, creating the parent directory on first use.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// parseAsOf parses an optional --asof date flag. The zero time means no
// point-in-time bound.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --asof date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// buildProfiles loads both match tables under the season/asof slice and
// builds the profile table the scouting commands consume.
func buildProfiles(db *storage.DB, season, asof string) ([]model.PlayerProfile, error) {
	cutoff, err := parseAsOf(asof)
	if err != nil {
		return nil, err
	}
	teams, err := db.LoadTeamMatches(season, cutoff)
	if err != nil {
		return nil, fmt.Errorf("load team matches: %w", err)
	}
	players, err := db.LoadPlayerMatches(season, cutoff)
	if err != nil {
		return nil, fmt.Errorf("load player matches: %w", err)
	}
	return profile.Build(teams, players, season), nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/defense"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/report"
)

var (
	defensePlayer     string
	defensePosition   string
	defenseMetric     string
	defenseSeason     string
	defenseAsOf       string
	defenseMinMinutes int
	defenseTop        int
)

// defenseCmd covers the team-level defensive attribution: a per-player
// breakdown with --player, or a ranking over a position group.
var defenseCmd = &cobra.Command{
	Use:   "defense",
	Short: "Defensive attribution from team match data",
	Long: `Attributes team-level defensive outcomes (goals conceded, xGA, clean
sheets, PPDA) to individual goalkeepers and defenders.

Show one player's breakdown:
  plstats defense --player "Alisson"

Rank a position group by a defensive metric:
  plstats defense --position GK --metric goals_prevented_per90`,
	RunE: runDefense,
}

func init() {
	defenseCmd.Flags().StringVar(&defensePlayer, "player", "", "show attribution for one player")
	defenseCmd.Flags().StringVar(&defensePosition, "position", "DEF", "position group to rank (GK or DEF)")
	defenseCmd.Flags().StringVar(&defenseMetric, "metric", "goals_conceded_per90", "metric to rank by")
	defenseCmd.Flags().StringVar(&defenseSeason, "season", "", "restrict to one season")
	defenseCmd.Flags().StringVar(&defenseAsOf, "asof", "", "only count matches on or before this date (YYYY-MM-DD)")
	defenseCmd.Flags().IntVar(&defenseMinMinutes, "min-minutes", 900, "minimum minutes played")
	defenseCmd.Flags().IntVar(&defenseTop, "top", 20, "number of players to show")
}

func runDefense(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cutoff, err := parseAsOf(defenseAsOf)
	if err != nil {
		return err
	}
	teams, err := db.LoadTeamMatches(defenseSeason, cutoff)
	if err != nil {
		return fmt.Errorf("load team matches: %w", err)
	}
	players, err := db.LoadPlayerMatches(defenseSeason, cutoff)
	if err != nil {
		return fmt.Errorf("load player matches: %w", err)
	}
	calc := defense.NewCalculator(teams, players)

	if defensePlayer != "" {
		attr, err := calc.Attribute(defensePlayer, defenseSeason)
		if err != nil {
			return fmt.Errorf("attribute %s: %w", defensePlayer, err)
		}
		report.PrintAttribution(os.Stdout, attr)
		return nil
	}

	group, ok := model.ParseGroup(defensePosition)
	if !ok {
		return fmt.Errorf("unknown position group %q", defensePosition)
	}
	if group != model.GroupGoalkeeper && group != model.GroupDefender {
		return fmt.Errorf("defensive rankings cover GK and DEF, got %s", group)
	}
	rows := calc.Rank(group, defenseMetric, defenseSeason, defenseMinMinutes)
	if len(rows) == 0 {
		fmt.Printf("No qualifying %s players for metric %q.\n", group, defenseMetric)
		return nil
	}
	if len(rows) > defenseTop {
		rows = rows[:defenseTop]
	}
	report.PrintDefenseRankings(os.Stdout, group, defenseMetric, rows)
	return nil
}

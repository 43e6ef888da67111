package scout

import (
	"testing"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// rankProfile builds a minimal profile for ranking tests.
func rankProfile(player, position string, minutes int, goalsPer90 float64) model.PlayerProfile {
	return model.PlayerProfile{
		Player:     player,
		Team:       "Testham",
		Position:   position,
		Minutes:    minutes,
		GoalsPer90: goalsPer90,
	}
}

func TestTopPlayersByMetric_MinutesThresholdAndOrder(t *testing.T) {
	profiles := []model.PlayerProfile{
		rankProfile("bench", "FW", 300, 2.0), // excluded: under the threshold
		rankProfile("starter", "FW", 1200, 0.6),
		rankProfile("rotation", "FW", 900, 0.9),
	}

	rows := TopPlayersByMetric(profiles, "goals_per90", "", 900, 10)
	if len(rows) != 2 {
		t.Fatalf("expected 2 qualifying players, got %d", len(rows))
	}
	if rows[0].Player != "rotation" || rows[1].Player != "starter" {
		t.Errorf("expected [rotation starter], got [%s %s]", rows[0].Player, rows[1].Player)
	}
	if rows[0].Value != 0.9 {
		t.Errorf("expected top value 0.9, got %v", rows[0].Value)
	}
}

func TestTopPlayersByMetric_TopNTruncation(t *testing.T) {
	profiles := []model.PlayerProfile{
		rankProfile("a", "FW", 1000, 0.3),
		rankProfile("b", "FW", 1000, 0.7),
		rankProfile("c", "FW", 1000, 0.5),
	}
	rows := TopPlayersByMetric(profiles, "goals_per90", "", 0, 1)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Player != "b" {
		t.Errorf("expected b first, got %s", rows[0].Player)
	}
}

func TestTopPlayersByMetric_PositionFilter(t *testing.T) {
	profiles := []model.PlayerProfile{
		rankProfile("striker", "ST", 1000, 0.8),
		rankProfile("centreback", "CB", 1000, 0.1),
	}

	rows := TopPlayersByMetric(profiles, "goals_per90", "DEF", 0, 10)
	if len(rows) != 1 || rows[0].Player != "centreback" {
		t.Fatalf("expected only centreback, got %v", rows)
	}

	// An unparseable filter yields an empty result, not a panic.
	if rows := TopPlayersByMetric(profiles, "goals_per90", "wingback", 0, 10); rows != nil {
		t.Errorf("expected nil for unknown position filter, got %v", rows)
	}
}

func TestTopPlayersByMetric_UnknownMetricEmpty(t *testing.T) {
	profiles := []model.PlayerProfile{rankProfile("a", "FW", 1000, 0.3)}
	if rows := TopPlayersByMetric(profiles, "tackles_per90", "", 0, 10); len(rows) != 0 {
		t.Errorf("expected empty result for unknown metric, got %v", rows)
	}
}

// Defensive columns only resolve on profiles carrying defensive data, so a
// ranking over clean_sheet_rate silently drops players without it.
func TestTopPlayersByMetric_DefensiveColumnsGated(t *testing.T) {
	withDef := rankProfile("fullback", "DF", 1000, 0)
	withDef.HasDefensive = true
	withDef.CleanSheetRate = 40
	withoutDef := rankProfile("other", "DF", 1000, 0)

	rows := TopPlayersByMetric([]model.PlayerProfile{withDef, withoutDef}, "clean_sheet_rate", "", 0, 10)
	if len(rows) != 1 || rows[0].Player != "fullback" {
		t.Fatalf("expected only the profile with defensive data, got %v", rows)
	}
}

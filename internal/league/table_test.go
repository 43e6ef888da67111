package league

import (
	"math"
	"testing"
	"time"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

func match(team string, day, points, gf, ga int, xg, xga float64) model.TeamMatchRecord {
	return model.TeamMatchRecord{
		Team:         team,
		Date:         time.Date(2024, 8, day, 0, 0, 0, 0, time.UTC),
		Season:       "2024",
		Points:       points,
		GoalsFor:     gf,
		GoalsAgainst: ga,
		XG:           xg,
		XGA:          xga,
	}
}

func TestStandings_OrderedByPoints(t *testing.T) {
	teams := []model.TeamMatchRecord{
		match("Mid Town", 1, 1, 1, 1, 1.0, 1.1),
		match("Top FC", 1, 3, 2, 0, 1.8, 0.4),
		match("Bottom United", 1, 0, 0, 2, 0.5, 1.9),
	}
	rows := Standings(teams, "2024")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	order := []string{"Top FC", "Mid Town", "Bottom United"}
	for i, want := range order {
		if rows[i].Team != want {
			t.Errorf("position %d: got %s, want %s", i+1, rows[i].Team, want)
		}
	}
}

func TestStandings_GoalDifferenceTiebreak(t *testing.T) {
	teams := []model.TeamMatchRecord{
		match("Narrow FC", 1, 3, 1, 0, 1.0, 0.5),
		match("Rampant FC", 1, 3, 4, 0, 2.5, 0.3),
	}
	rows := Standings(teams, "2024")
	if rows[0].Team != "Rampant FC" {
		t.Errorf("expected Rampant FC first on goal difference, got %s", rows[0].Team)
	}
}

func TestStandings_AggregatesAndDerivedColumns(t *testing.T) {
	teams := []model.TeamMatchRecord{
		match("Testham", 1, 3, 2, 1, 1.6, 0.9),
		match("Testham", 2, 1, 1, 1, 1.2, 1.3),
	}
	rows := Standings(teams, "2024")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.Matches != 2 || r.Points != 4 || r.GD != 1 {
		t.Errorf("bad aggregates: %+v", r)
	}
	if math.Abs(r.PPG-2.0) > 1e-9 {
		t.Errorf("expected 2.0 PPG, got %v", r.PPG)
	}
	if math.Abs(r.XGD-0.6) > 1e-9 {
		t.Errorf("expected xGD 0.6, got %v", r.XGD)
	}
}

func TestStandings_SeasonFilter(t *testing.T) {
	old := match("Testham", 1, 3, 2, 0, 1.5, 0.5)
	old.Season = "2023"
	teams := []model.TeamMatchRecord{old, match("Testham", 1, 1, 1, 1, 1.0, 1.0)}

	rows := Standings(teams, "2024")
	if len(rows) != 1 || rows[0].Points != 1 {
		t.Fatalf("expected only the 2024 match counted, got %v", rows)
	}
}

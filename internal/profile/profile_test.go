package profile

import (
	"math"
	"testing"
	"time"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

func day(n int) time.Time {
	return time.Date(2024, 8, n, 0, 0, 0, 0, time.UTC)
}

func TestBuild_AggregatesAndPer90(t *testing.T) {
	players := []model.PlayerMatchRecord{
		{Player: "striker", Team: "Testham", Position: "ST", Season: "2024", Date: day(1), Minutes: 90, Goals: 2, Shots: 5, XG: 1.3},
		{Player: "striker", Team: "Testham", Position: "ST", Season: "2024", Date: day(2), Minutes: 90, Goals: 0, Shots: 3, XG: 0.7},
	}

	profiles := Build(nil, players, "2024")
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	p := profiles[0]
	if p.Appearances != 2 || p.Minutes != 180 || p.Goals != 2 {
		t.Errorf("bad totals: %+v", p)
	}
	if p.Group != model.GroupForward {
		t.Errorf("expected Forward group, got %v", p.Group)
	}
	if math.Abs(p.GoalsPer90-1.0) > 1e-9 {
		t.Errorf("expected 1.0 goals per 90, got %v", p.GoalsPer90)
	}
	if math.Abs(p.XGPer90-1.0) > 1e-9 {
		t.Errorf("expected 1.0 xG per 90, got %v", p.XGPer90)
	}
}

// A zero-minute player keeps raw totals as per-90 values instead of
// dividing by zero.
func TestBuild_ZeroMinutesClamp(t *testing.T) {
	players := []model.PlayerMatchRecord{
		{Player: "unused", Team: "Testham", Position: "ST", Season: "2024", Date: day(1), Minutes: 0, Goals: 1},
	}
	profiles := Build(nil, players, "2024")
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if profiles[0].GoalsPer90 != 1.0 {
		t.Errorf("expected raw total as per-90 at zero minutes, got %v", profiles[0].GoalsPer90)
	}
}

func TestBuild_SeasonFilter(t *testing.T) {
	players := []model.PlayerMatchRecord{
		{Player: "a", Team: "Testham", Position: "ST", Season: "2023", Date: day(1), Minutes: 90},
		{Player: "b", Team: "Testham", Position: "ST", Season: "2024", Date: day(1), Minutes: 90},
	}
	profiles := Build(nil, players, "2024")
	if len(profiles) != 1 || profiles[0].Player != "b" {
		t.Fatalf("expected only season 2024 players, got %v", profiles)
	}
}

func TestBuild_GoalkeeperDefensiveJoin(t *testing.T) {
	teams := []model.TeamMatchRecord{
		{Team: "Testham", Date: day(1), Season: "2024", GoalsAgainst: 0, XGA: 0.8, ShotsOnTargetAgainst: 3},
		{Team: "Testham", Date: day(2), Season: "2024", GoalsAgainst: 2, XGA: 1.4, ShotsOnTargetAgainst: 6},
	}
	players := []model.PlayerMatchRecord{
		{Player: "keeper", Team: "Testham", Position: "GK", Season: "2024", Date: day(1), Minutes: 90},
		{Player: "keeper", Team: "Testham", Position: "GK", Season: "2024", Date: day(2), Minutes: 90},
	}

	profiles := Build(teams, players, "2024")
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	p := profiles[0]
	if !p.HasDefensive {
		t.Fatal("expected defensive columns joined for the keeper")
	}
	if math.Abs(p.CleanSheetRate-50) > 1e-9 {
		t.Errorf("expected 50%% clean sheets, got %v", p.CleanSheetRate)
	}
	if math.Abs(p.GoalsConcededPer90-1.0) > 1e-9 {
		t.Errorf("expected 1.0 conceded per 90, got %v", p.GoalsConcededPer90)
	}
	// 7 saves out of 9 on target.
	if math.Abs(p.SavePercentage-700.0/9) > 1e-9 {
		t.Errorf("expected save %% 77.8, got %v", p.SavePercentage)
	}
}

// A player whose team rows never join stays usable; only the defensive
// block is absent.
func TestBuild_DefensiveJoinFailureTolerated(t *testing.T) {
	players := []model.PlayerMatchRecord{
		{Player: "centreback", Team: "Testham", Position: "CB", Season: "2024", Date: day(1), Minutes: 90},
	}
	profiles := Build(nil, players, "2024")
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
	if profiles[0].HasDefensive {
		t.Error("expected no defensive block without team data")
	}
}

func TestBuild_FillsPercentiles(t *testing.T) {
	players := []model.PlayerMatchRecord{
		{Player: "low", Team: "Testham", Position: "ST", Season: "2024", Date: day(1), Minutes: 90, Goals: 0},
		{Player: "mid", Team: "Testham", Position: "ST", Season: "2024", Date: day(1), Minutes: 90, Goals: 1},
		{Player: "high", Team: "Testham", Position: "ST", Season: "2024", Date: day(1), Minutes: 90, Goals: 2},
	}
	profiles := Build(nil, players, "2024")

	byName := make(map[string]model.PlayerProfile)
	for _, p := range profiles {
		byName[p.Player] = p
	}
	cases := map[string]float64{"low": 100.0 / 3, "mid": 200.0 / 3, "high": 100}
	for name, want := range cases {
		p := byName[name]
		got, ok := p.Percentile("goals_per90")
		if !ok {
			t.Fatalf("no goals_per90 percentile for %s", name)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: percentile %v, want %v", name, got, want)
		}
	}
}

// ---- percentile primitive ----

func TestPercentiles_AverageRankTies(t *testing.T) {
	got := percentiles([]float64{2, 2})
	for i, v := range got {
		if math.Abs(v-75) > 1e-9 {
			t.Errorf("tied value %d: percentile %v, want 75", i, v)
		}
	}

	got = percentiles([]float64{1, 3, 2})
	want := []float64{100.0 / 3, 100, 200.0 / 3}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("value %d: percentile %v, want %v", i, got[i], want[i])
		}
	}
}

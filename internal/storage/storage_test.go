package storage

import (
	"testing"
	"time"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func day(n int) time.Time {
	return time.Date(2024, 8, n, 0, 0, 0, 0, time.UTC)
}

func TestTeamMatchRoundTrip(t *testing.T) {
	db := openMemDB(t)

	in := []model.TeamMatchRecord{{
		Team:                 "Testham",
		Date:                 day(17),
		Venue:                "h",
		Opponent:             "Visitors",
		GoalsFor:             2,
		GoalsAgainst:         1,
		ShotsFor:             14,
		ShotsAgainst:         9,
		ShotsOnTargetAgainst: 4,
		XG:                   1.8,
		XGA:                  0.9,
		PPDA:                 8.5,
		PPDAAllowed:          12.3,
		DeepAllowed:          5,
		Season:               "2024",
		Result:               "w",
		Points:               3,
	}}
	if err := db.InsertTeamMatches(in); err != nil {
		t.Fatalf("InsertTeamMatches: %v", err)
	}

	out, err := db.LoadTeamMatches("", time.Time{})
	if err != nil {
		t.Fatalf("LoadTeamMatches: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	got := out[0]
	if got.Team != "Testham" || !got.Date.Equal(day(17)) || got.Points != 3 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.XGA != 0.9 || got.ShotsOnTargetAgainst != 4 {
		t.Errorf("defensive columns mismatch: %+v", got)
	}
}

func TestPlayerMatchRoundTrip(t *testing.T) {
	db := openMemDB(t)

	in := []model.PlayerMatchRecord{{
		Player:    "striker",
		Team:      "Testham",
		Date:      day(17),
		Season:    "2024",
		Position:  "ST",
		Minutes:   90,
		Goals:     1,
		Shots:     4,
		KeyPasses: 2,
		XG:        0.8,
		XA:        0.3,
		XGChain:   1.1,
		XGBuildup: 0.2,
	}}
	if err := db.InsertPlayerMatches(in); err != nil {
		t.Fatalf("InsertPlayerMatches: %v", err)
	}

	out, err := db.LoadPlayerMatches("", time.Time{})
	if err != nil {
		t.Fatalf("LoadPlayerMatches: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	got := out[0]
	if got.Player != "striker" || got.Position != "ST" || got.XGChain != 1.1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

// Reloading the same fixture replaces it instead of duplicating it.
func TestInsertIsIdempotent(t *testing.T) {
	db := openMemDB(t)

	rec := model.TeamMatchRecord{Team: "Testham", Date: day(1), Season: "2024", GoalsFor: 1}
	if err := db.InsertTeamMatches([]model.TeamMatchRecord{rec}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	rec.GoalsFor = 2
	if err := db.InsertTeamMatches([]model.TeamMatchRecord{rec}); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	out, err := db.LoadTeamMatches("", time.Time{})
	if err != nil {
		t.Fatalf("LoadTeamMatches: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row after reload, got %d", len(out))
	}
	if out[0].GoalsFor != 2 {
		t.Errorf("expected replaced row, got %+v", out[0])
	}
}

func TestSeasonFilter(t *testing.T) {
	db := openMemDB(t)

	recs := []model.TeamMatchRecord{
		{Team: "Testham", Date: day(1), Season: "2023"},
		{Team: "Testham", Date: day(2), Season: "2024"},
	}
	if err := db.InsertTeamMatches(recs); err != nil {
		t.Fatalf("InsertTeamMatches: %v", err)
	}

	out, err := db.LoadTeamMatches("2024", time.Time{})
	if err != nil {
		t.Fatalf("LoadTeamMatches: %v", err)
	}
	if len(out) != 1 || out[0].Season != "2024" {
		t.Fatalf("expected only the 2024 row, got %v", out)
	}
}

// The asof bound is inclusive: a fixture on the cutoff date is returned,
// later ones are not.
func TestAsOfCutoff(t *testing.T) {
	db := openMemDB(t)

	recs := []model.TeamMatchRecord{
		{Team: "Testham", Date: day(1), Season: "2024"},
		{Team: "Testham", Date: day(15), Season: "2024"},
		{Team: "Testham", Date: day(30), Season: "2024"},
	}
	if err := db.InsertTeamMatches(recs); err != nil {
		t.Fatalf("InsertTeamMatches: %v", err)
	}

	out, err := db.LoadTeamMatches("", day(15))
	if err != nil {
		t.Fatalf("LoadTeamMatches: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows on or before the cutoff, got %d", len(out))
	}
	for _, r := range out {
		if r.Date.After(day(15)) {
			t.Errorf("row after cutoff leaked: %v", r.Date)
		}
	}
}

func TestListSeasons(t *testing.T) {
	db := openMemDB(t)

	teamRecs := []model.TeamMatchRecord{
		{Team: "Testham", Date: day(1), Season: "2023"},
		{Team: "Testham", Date: day(2), Season: "2024"},
		{Team: "Rival FC", Date: day(2), Season: "2024"},
	}
	if err := db.InsertTeamMatches(teamRecs); err != nil {
		t.Fatalf("InsertTeamMatches: %v", err)
	}
	playerRecs := []model.PlayerMatchRecord{
		{Player: "striker", Team: "Testham", Date: day(2), Season: "2024", Position: "ST", Minutes: 90},
		{Player: "keeper", Team: "Testham", Date: day(2), Season: "2024", Position: "GK", Minutes: 90},
	}
	if err := db.InsertPlayerMatches(playerRecs); err != nil {
		t.Fatalf("InsertPlayerMatches: %v", err)
	}

	seasons, err := db.ListSeasons()
	if err != nil {
		t.Fatalf("ListSeasons: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(seasons))
	}
	// Newest first.
	if seasons[0].Season != "2024" {
		t.Errorf("expected 2024 first, got %s", seasons[0].Season)
	}
	if seasons[0].Teams != 2 || seasons[0].TeamMatches != 2 {
		t.Errorf("bad team counts: %+v", seasons[0])
	}
	if seasons[0].Players != 2 || seasons[0].PlayerRows != 2 {
		t.Errorf("bad player counts: %+v", seasons[0])
	}
	if seasons[1].Players != 0 {
		t.Errorf("expected no 2023 players, got %d", seasons[1].Players)
	}
}

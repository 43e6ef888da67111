package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

const dateLayout = "2006-01-02"

// InsertTeamMatches bulk-inserts team match records in a transaction.
// Uses INSERT OR REPLACE so reloading a season is idempotent.
func (db *DB) InsertTeamMatches(records []model.TeamMatchRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO team_matches(
			team, date, venue, opponent,
			goals_for, goals_against,
			shots_for, shots_against, shots_on_target_against,
			xg, xga, ppda, ppda_allowed, deep_allowed,
			season, result, points
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.Exec(
			r.Team, r.Date.Format(dateLayout), r.Venue, r.Opponent,
			r.GoalsFor, r.GoalsAgainst,
			r.ShotsFor, r.ShotsAgainst, r.ShotsOnTargetAgainst,
			r.XG, r.XGA, r.PPDA, r.PPDAAllowed, r.DeepAllowed,
			r.Season, r.Result, r.Points,
		)
		if err != nil {
			return fmt.Errorf("insert team_matches for %s %s: %w", r.Team, r.Date.Format(dateLayout), err)
		}
	}
	return tx.Commit()
}

// InsertPlayerMatches bulk-inserts player match records in a transaction.
func (db *DB) InsertPlayerMatches(records []model.PlayerMatchRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_matches(
			player, team, date, season, position, minutes,
			goals, assists, shots, key_passes,
			xg, xa, xg_chain, xg_buildup,
			yellow_cards, red_cards
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.Exec(
			r.Player, r.Team, r.Date.Format(dateLayout), r.Season, r.Position, r.Minutes,
			r.Goals, r.Assists, r.Shots, r.KeyPasses,
			r.XG, r.XA, r.XGChain, r.XGBuildup,
			r.YellowCards, r.RedCards,
		)
		if err != nil {
			return fmt.Errorf("insert player_matches for %s %s: %w", r.Player, r.Date.Format(dateLayout), err)
		}
	}
	return tx.Commit()
}

// matchFilter builds the WHERE clause shared by the two loaders. The asof
// bound implements the point-in-time slice: rows dated after it are never
// returned, so downstream analysis cannot leak future data.
func matchFilter(season string, asof time.Time) (string, []any) {
	var conds []string
	var args []any
	if season != "" {
		conds = append(conds, "season = ?")
		args = append(args, season)
	}
	if !asof.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, asof.Format(dateLayout))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// LoadTeamMatches reads team match records, optionally restricted to a
// season and to fixtures on or before asof (zero time = no bound).
func (db *DB) LoadTeamMatches(season string, asof time.Time) ([]model.TeamMatchRecord, error) {
	where, args := matchFilter(season, asof)
	rows, err := db.conn.Query(`
		SELECT team, date, venue, opponent,
		       goals_for, goals_against,
		       shots_for, shots_against, shots_on_target_against,
		       xg, xga, ppda, ppda_allowed, deep_allowed,
		       season, result, points
		FROM team_matches`+where+` ORDER BY date, team`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TeamMatchRecord
	for rows.Next() {
		var r model.TeamMatchRecord
		var date string
		err := rows.Scan(
			&r.Team, &date, &r.Venue, &r.Opponent,
			&r.GoalsFor, &r.GoalsAgainst,
			&r.ShotsFor, &r.ShotsAgainst, &r.ShotsOnTargetAgainst,
			&r.XG, &r.XGA, &r.PPDA, &r.PPDAAllowed, &r.DeepAllowed,
			&r.Season, &r.Result, &r.Points,
		)
		if err != nil {
			return nil, err
		}
		if r.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("bad date %q in team_matches: %w", date, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadPlayerMatches reads player match records with the same season/asof
// filtering as LoadTeamMatches.
func (db *DB) LoadPlayerMatches(season string, asof time.Time) ([]model.PlayerMatchRecord, error) {
	where, args := matchFilter(season, asof)
	rows, err := db.conn.Query(`
		SELECT player, team, date, season, position, minutes,
		       goals, assists, shots, key_passes,
		       xg, xa, xg_chain, xg_buildup,
		       yellow_cards, red_cards
		FROM player_matches`+where+` ORDER BY date, player`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerMatchRecord
	for rows.Next() {
		var r model.PlayerMatchRecord
		var date string
		err := rows.Scan(
			&r.Player, &r.Team, &date, &r.Season, &r.Position, &r.Minutes,
			&r.Goals, &r.Assists, &r.Shots, &r.KeyPasses,
			&r.XG, &r.XA, &r.XGChain, &r.XGBuildup,
			&r.YellowCards, &r.RedCards,
		)
		if err != nil {
			return nil, err
		}
		if r.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("bad date %q in player_matches: %w", date, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SeasonSummary is a lightweight record for the list command.
type SeasonSummary struct {
	Season       string
	Teams        int
	TeamMatches  int
	PlayerRows   int
	Players      int
	FirstDate    string
	LastDate     string
}

// ListSeasons summarizes the stored data per season, newest first.
func (db *DB) ListSeasons() ([]SeasonSummary, error) {
	rows, err := db.conn.Query(`
		SELECT season, COUNT(DISTINCT team), COUNT(1), MIN(date), MAX(date)
		FROM team_matches GROUP BY season ORDER BY season DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SeasonSummary
	for rows.Next() {
		var s SeasonSummary
		if err := rows.Scan(&s.Season, &s.Teams, &s.TeamMatches, &s.FirstDate, &s.LastDate); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		err := db.conn.QueryRow(
			`SELECT COUNT(1), COUNT(DISTINCT player) FROM player_matches WHERE season = ?`,
			out[i].Season,
		).Scan(&out[i].PlayerRows, &out[i].Players)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

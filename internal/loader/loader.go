// Package loader reads the team and player feature CSV files into match
// records. Column names follow the understat-derived data files
// (team_features_*.csv, player_features_*.csv).
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

const dateLayout = "2006-01-02"

// row gives header-indexed access to one CSV record. Numeric getters treat
// missing or malformed cells as zero; only structurally required columns
// (identity, date) fail the load.
type row struct {
	header map[string]int
	fields []string
}

func (r row) str(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r row) intval(col string) int {
	v, err := strconv.ParseFloat(r.str(col), 64)
	if err != nil {
		return 0
	}
	return int(v)
}

func (r row) floatval(col string) float64 {
	v, err := strconv.ParseFloat(r.str(col), 64)
	if err != nil {
		return 0
	}
	return v
}

// readAll decodes the CSV stream and validates the required headers.
func readAll(src io.Reader, required []string) ([]row, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[name] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	rows := make([]row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, row{header: header, fields: rec})
	}
	return rows, nil
}

// TeamMatches parses a team features CSV.
func TeamMatches(src io.Reader) ([]model.TeamMatchRecord, error) {
	rows, err := readAll(src, []string{"team_name", "date"})
	if err != nil {
		return nil, err
	}

	out := make([]model.TeamMatchRecord, 0, len(rows))
	for i, r := range rows {
		date, err := time.Parse(dateLayout, r.str("date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q: %w", i+2, r.str("date"), err)
		}
		out = append(out, model.TeamMatchRecord{
			Team:                 r.str("team_name"),
			Date:                 date,
			Venue:                r.str("venue"),
			Opponent:             r.str("opponent"),
			GoalsFor:             r.intval("goals_for"),
			GoalsAgainst:         r.intval("goals_against"),
			ShotsFor:             r.intval("shots_for"),
			ShotsAgainst:         r.intval("shots_against"),
			ShotsOnTargetAgainst: r.intval("shots_on_target_against"),
			XG:                   r.floatval("xG"),
			XGA:                  r.floatval("xGA"),
			PPDA:                 r.floatval("ppda"),
			PPDAAllowed:          r.floatval("ppda_allowed"),
			DeepAllowed:          r.intval("deep_allowed"),
			Season:               r.str("season"),
			Result:               r.str("result"),
			Points:               r.intval("points"),
		})
	}
	return out, nil
}

// PlayerMatches parses a player features CSV.
func PlayerMatches(src io.Reader) ([]model.PlayerMatchRecord, error) {
	rows, err := readAll(src, []string{"player_name", "team_name", "date"})
	if err != nil {
		return nil, err
	}

	out := make([]model.PlayerMatchRecord, 0, len(rows))
	for i, r := range rows {
		date, err := time.Parse(dateLayout, r.str("date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q: %w", i+2, r.str("date"), err)
		}
		out = append(out, model.PlayerMatchRecord{
			Player:      r.str("player_name"),
			Team:        r.str("team_name"),
			Date:        date,
			Season:      r.str("season"),
			Position:    r.str("position"),
			Minutes:     r.intval("minutes"),
			Goals:       r.intval("goals"),
			Assists:     r.intval("assists"),
			Shots:       r.intval("shots"),
			KeyPasses:   r.intval("key_passes"),
			XG:          r.floatval("xG"),
			XA:          r.floatval("xA"),
			XGChain:     r.floatval("xGChain"),
			XGBuildup:   r.floatval("xGBuildup"),
			YellowCards: r.intval("yellow_card"),
			RedCards:    r.intval("red_card"),
		})
	}
	return out, nil
}

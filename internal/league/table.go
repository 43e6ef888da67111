// Package league aggregates team match records into season standings.
package league

import (
	"sort"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// TableRow is one team's line in the standings.
type TableRow struct {
	Team         string
	Matches      int
	Points       int
	PPG          float64
	GoalsFor     int
	GoalsAgainst int
	GD           int
	XG           float64
	XGA          float64
	XGD          float64
}

// Standings builds the league table for a season (all rows when season is
// empty), ordered by points then goal difference, both descending.
func Standings(teams []model.TeamMatchRecord, season string) []TableRow {
	byTeam := make(map[string]*TableRow)
	var order []string
	for _, t := range teams {
		if season != "" && t.Season != season {
			continue
		}
		row := byTeam[t.Team]
		if row == nil {
			row = &TableRow{Team: t.Team}
			byTeam[t.Team] = row
			order = append(order, t.Team)
		}
		row.Matches++
		row.Points += t.Points
		row.GoalsFor += t.GoalsFor
		row.GoalsAgainst += t.GoalsAgainst
		row.XG += t.XG
		row.XGA += t.XGA
	}

	rows := make([]TableRow, 0, len(order))
	for _, name := range order {
		row := *byTeam[name]
		row.GD = row.GoalsFor - row.GoalsAgainst
		row.XGD = row.XG - row.XGA
		if row.Matches > 0 {
			row.PPG = float64(row.Points) / float64(row.Matches)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GD > rows[j].GD
	})
	return rows
}

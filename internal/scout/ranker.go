package scout

import (
	"sort"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// RankedPlayer is one row of a TopPlayersByMetric result.
type RankedPlayer struct {
	Player   string
	Team     string
	Position string
	Minutes  int
	Metric   string
	Value    float64
}

// TopPlayersByMetric returns up to n players with the largest values of the
// named metric column, restricted to those with at least minMinutes played
// and, when positionFilter is non-empty, to the matching canonical group
// (FWD/MID/DEF/GK shorthands accepted). An unknown metric yields an empty
// result rather than an error. Ties keep input order.
func TopPlayersByMetric(profiles []model.PlayerProfile, metric, positionFilter string, minMinutes, n int) []RankedPlayer {
	wantGroup := model.GroupUnknown
	if positionFilter != "" {
		g, ok := model.ParseGroup(positionFilter)
		if !ok {
			return nil
		}
		wantGroup = g
	}

	var rows []RankedPlayer
	for i := range profiles {
		p := &profiles[i]
		if p.Minutes < minMinutes {
			continue
		}
		if wantGroup != model.GroupUnknown && groupOf(p) != wantGroup {
			continue
		}
		v, ok := p.Metric(metric)
		if !ok {
			continue
		}
		rows = append(rows, RankedPlayer{
			Player:   p.Player,
			Team:     p.Team,
			Position: p.Position,
			Minutes:  p.Minutes,
			Metric:   metric,
			Value:    v,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

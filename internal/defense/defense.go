// Package defense derives goalkeeper and defender metrics from team-level
// match data. The source data carries no individual defensive event stream,
// so a player's defensive output is approximated by attributing the team's
// defensive outcomes over the matches the player appeared in. The
// approximation and its caveats are part of the contract, not a shortcut.
package defense

import (
	"errors"
	"sort"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/scout"
)

var (
	// ErrNoMatches means the player has no match records in the window.
	ErrNoMatches = errors.New("no matches found")
	// ErrNoTeamData means no team records joined the player's match dates.
	ErrNoTeamData = errors.New("no team data found")
)

// Calculator attributes team-level defensive outcomes to individual
// players. It never mutates the tables it is handed; every result is a
// freshly built record.
type Calculator struct {
	teams   []model.TeamMatchRecord
	players []model.PlayerMatchRecord
}

// NewCalculator returns a Calculator over the given match tables.
func NewCalculator(teams []model.TeamMatchRecord, players []model.PlayerMatchRecord) *Calculator {
	return &Calculator{teams: teams, players: players}
}

const gkNote = "Saves estimated from shots on target - goals conceded. Individual GK data not available in Understat."
const defNote = "Defensive stats derived from team performance when player was on field."

// joined holds the aggregated team figures for the player's match window.
type joined struct {
	team         string
	matches      int
	minutes      int
	playerRows   []model.PlayerMatchRecord
	goalsAgainst int
	xGA          float64
	shotsAgainst int
	sotAgainst   int
	deepAllowed  int
	ppdaAllowed  float64 // mean across joined matches
	cleanSheets  int
}

// join selects the player's match rows (optionally season-filtered), reads
// the team off the first row, and aggregates the team records sharing those
// dates. A player is assumed single-team within the window; mid-window
// transfers are not handled.
func (c *Calculator) join(player, season string) (*joined, error) {
	var rows []model.PlayerMatchRecord
	for _, r := range c.players {
		if r.Player != player {
			continue
		}
		if season != "" && r.Season != season {
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return nil, ErrNoMatches
	}

	team := rows[0].Team
	dates := make(map[string]struct{}, len(rows))
	minutes := 0
	for _, r := range rows {
		dates[r.Date.Format("2006-01-02")] = struct{}{}
		minutes += r.Minutes
	}

	j := &joined{team: team, minutes: minutes, playerRows: rows}
	var ppdaSum float64
	for _, t := range c.teams {
		if t.Team != team {
			continue
		}
		if _, ok := dates[t.Date.Format("2006-01-02")]; !ok {
			continue
		}
		j.matches++
		j.goalsAgainst += t.GoalsAgainst
		j.xGA += t.XGA
		j.shotsAgainst += t.ShotsAgainst
		j.sotAgainst += t.ShotsOnTargetAgainst
		j.deepAllowed += t.DeepAllowed
		ppdaSum += t.PPDAAllowed
		if t.GoalsAgainst == 0 {
			j.cleanSheets++
		}
	}
	if j.matches == 0 {
		return nil, ErrNoTeamData
	}
	j.ppdaAllowed = ppdaSum / float64(j.matches)
	return j, nil
}

// GoalkeeperStats computes the goalkeeper attribution for one player over
// the optional season window.
func (c *Calculator) GoalkeeperStats(player, season string) (*model.DefensiveAttribution, error) {
	j, err := c.join(player, season)
	if err != nil {
		return nil, err
	}

	saves := j.sotAgainst - j.goalsAgainst
	if saves < 0 {
		saves = 0
	}
	savePct := 0.0
	if j.sotAgainst > 0 {
		savePct = float64(saves) / float64(j.sotAgainst) * 100
	}
	goalsPrevented := j.xGA - float64(j.goalsAgainst)
	cleanSheetRate := float64(j.cleanSheets) / float64(j.matches) * 100

	a := &model.DefensiveAttribution{
		Player:  player,
		Team:    j.team,
		Group:   model.GroupGoalkeeper,
		Matches: j.matches,
		Minutes: j.minutes,

		GoalsConceded:      j.goalsAgainst,
		GoalsConcededPer90: model.Per90(float64(j.goalsAgainst), j.minutes),
		XGA:                j.xGA,
		XGAPer90:           model.Per90(j.xGA, j.minutes),

		ShotsFaced:         j.shotsAgainst,
		ShotsFacedPer90:    model.Per90(float64(j.shotsAgainst), j.minutes),
		ShotsOnTargetFaced: j.sotAgainst,
		SavesEstimate:      saves,
		SavePercentage:     savePct,

		GoalsPrevented:      goalsPrevented,
		GoalsPreventedPer90: model.Per90(goalsPrevented, j.minutes),
		CleanSheets:         j.cleanSheets,
		CleanSheetRate:      cleanSheetRate,

		Note: gkNote,
	}
	return a, nil
}

// DefenderStats computes the defender attribution for one player over the
// optional season window, carrying the player's own attacking totals
// through unmodified.
func (c *Calculator) DefenderStats(player, season string) (*model.DefensiveAttribution, error) {
	j, err := c.join(player, season)
	if err != nil {
		return nil, err
	}

	// Sign convention: conceded minus expected, so negative is better than
	// expected. This is the mirror of the goalkeeper's GoalsPrevented.
	defensivePerformance := float64(j.goalsAgainst) - j.xGA
	cleanSheetRate := float64(j.cleanSheets) / float64(j.matches) * 100

	var goals, assists int
	var xGBuildup, xGChain float64
	for _, r := range j.playerRows {
		goals += r.Goals
		assists += r.Assists
		xGBuildup += r.XGBuildup
		xGChain += r.XGChain
	}

	a := &model.DefensiveAttribution{
		Player:  player,
		Team:    j.team,
		Group:   model.GroupDefender,
		Matches: j.matches,
		Minutes: j.minutes,

		GoalsConceded:      j.goalsAgainst,
		GoalsConcededPer90: model.Per90(float64(j.goalsAgainst), j.minutes),
		XGA:                j.xGA,
		XGAPer90:           model.Per90(j.xGA, j.minutes),

		DefensivePerformance:      defensivePerformance,
		DefensivePerformancePer90: model.Per90(defensivePerformance, j.minutes),

		ShotsAgainst:      j.shotsAgainst,
		ShotsAgainstPer90: model.Per90(float64(j.shotsAgainst), j.minutes),
		DeepAllowed:       j.deepAllowed,
		DeepAllowedPer90:  model.Per90(float64(j.deepAllowed), j.minutes),
		PPDAAllowed:       j.ppdaAllowed,

		CleanSheets:    j.cleanSheets,
		CleanSheetRate: cleanSheetRate,

		Goals:          goals,
		GoalsPer90:     model.Per90(float64(goals), j.minutes),
		Assists:        assists,
		AssistsPer90:   model.Per90(float64(assists), j.minutes),
		XGBuildup:      xGBuildup,
		XGBuildupPer90: model.Per90(xGBuildup, j.minutes),
		XGChain:        xGChain,
		XGChainPer90:   model.Per90(xGChain, j.minutes),

		Note: defNote,
	}
	return a, nil
}

// Attribute dispatches to the goalkeeper or defender path based on the
// player's classified position group.
func (c *Calculator) Attribute(player, season string) (*model.DefensiveAttribution, error) {
	group := model.GroupDefender
	for _, r := range c.players {
		if r.Player == player {
			group = scout.Classify(r.Position)
			break
		}
	}
	if group == model.GroupGoalkeeper {
		return c.GoalkeeperStats(player, season)
	}
	return c.DefenderStats(player, season)
}

// ascendingMetrics lists the ranking metrics where lower is better.
var ascendingMetrics = map[string]bool{
	"goals_conceded_per90": true,
	"xGA_per90":            true,
	"shots_against_per90":  true,
	"deep_allowed_per90":   true,
	"ppda_allowed":         true,
}

// Rank returns defensive attributions for all players of the given group
// with at least minMinutes in the window, ordered by the named metric.
// Lower-is-better metrics sort ascending, everything else descending.
// Players whose attribution fails are silently excluded.
func (c *Calculator) Rank(group model.Group, metric, season string, minMinutes int) []model.DefensiveAttribution {
	type totals struct {
		minutes  int
		position string
	}
	byPlayer := make(map[string]*totals)
	var order []string
	for _, r := range c.players {
		if season != "" && r.Season != season {
			continue
		}
		t := byPlayer[r.Player]
		if t == nil {
			t = &totals{position: r.Position}
			byPlayer[r.Player] = t
			order = append(order, r.Player)
		}
		t.minutes += r.Minutes
	}

	var results []model.DefensiveAttribution
	for _, player := range order {
		t := byPlayer[player]
		if t.minutes < minMinutes {
			continue
		}
		if scout.Classify(t.position) != group {
			continue
		}
		var a *model.DefensiveAttribution
		var err error
		if group == model.GroupGoalkeeper {
			a, err = c.GoalkeeperStats(player, season)
		} else {
			a, err = c.DefenderStats(player, season)
		}
		if err != nil {
			continue
		}
		if _, ok := a.Metric(metric); !ok {
			continue
		}
		results = append(results, *a)
	}

	ascending := ascendingMetrics[metric]
	sort.SliceStable(results, func(i, j int) bool {
		vi, _ := results[i].Metric(metric)
		vj, _ := results[j].Metric(metric)
		if ascending {
			return vi < vj
		}
		return vi > vj
	})
	return results
}

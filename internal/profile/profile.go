// Package profile builds the per-player profile table consumed by the
// scouting core: season totals, per-90 columns, defensive columns
// pre-joined from team-level data, and position-group percentiles.
package profile

import (
	"sort"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/defense"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/scout"
)

// Build aggregates the match tables into one PlayerProfile per player,
// optionally restricted to a season. Defenders and goalkeepers get the
// defensive attribution columns pre-joined; players whose attribution
// fails simply carry no defensive block. Percentile columns are filled
// for every catalog-relevant metric.
func Build(teams []model.TeamMatchRecord, players []model.PlayerMatchRecord, season string) []model.PlayerProfile {
	type accum struct {
		p model.PlayerProfile
	}
	byPlayer := make(map[string]*accum)
	var order []string

	for _, r := range players {
		if season != "" && r.Season != season {
			continue
		}
		a := byPlayer[r.Player]
		if a == nil {
			a = &accum{p: model.PlayerProfile{
				Player:   r.Player,
				Team:     r.Team,
				Position: r.Position,
				Season:   r.Season,
			}}
			byPlayer[r.Player] = a
			order = append(order, r.Player)
		}
		p := &a.p
		p.Appearances++
		p.Minutes += r.Minutes
		p.Goals += r.Goals
		p.Assists += r.Assists
		p.Shots += r.Shots
		p.KeyPasses += r.KeyPasses
		p.XG += r.XG
		p.XA += r.XA
		p.XGChain += r.XGChain
		p.XGBuildup += r.XGBuildup
		p.YellowCards += r.YellowCards
		p.RedCards += r.RedCards
	}

	calc := defense.NewCalculator(teams, players)

	profiles := make([]model.PlayerProfile, 0, len(order))
	for _, name := range order {
		p := byPlayer[name].p
		p.Group = scout.Classify(p.Position)

		p.GoalsPer90 = model.Per90(float64(p.Goals), p.Minutes)
		p.AssistsPer90 = model.Per90(float64(p.Assists), p.Minutes)
		p.ShotsPer90 = model.Per90(float64(p.Shots), p.Minutes)
		p.KeyPassesPer90 = model.Per90(float64(p.KeyPasses), p.Minutes)
		p.XGPer90 = model.Per90(p.XG, p.Minutes)
		p.XAPer90 = model.Per90(p.XA, p.Minutes)
		p.XGChainPer90 = model.Per90(p.XGChain, p.Minutes)
		p.XGBuildupPer90 = model.Per90(p.XGBuildup, p.Minutes)

		switch p.Group {
		case model.GroupGoalkeeper:
			if a, err := calc.GoalkeeperStats(name, season); err == nil {
				p.HasDefensive = true
				p.CleanSheetRate = a.CleanSheetRate
				p.GoalsConcededPer90 = a.GoalsConcededPer90
				p.XGAPer90 = a.XGAPer90
				p.SavePercentage = a.SavePercentage
				p.GoalsPreventedPer90 = a.GoalsPreventedPer90
			}
		case model.GroupDefender:
			if a, err := calc.DefenderStats(name, season); err == nil {
				p.HasDefensive = true
				p.CleanSheetRate = a.CleanSheetRate
				p.GoalsConcededPer90 = a.GoalsConcededPer90
				p.XGAPer90 = a.XGAPer90
				p.DefensivePerformancePer90 = a.DefensivePerformancePer90
				p.PPDAAllowed = a.PPDAAllowed
			}
		}

		profiles = append(profiles, p)
	}

	FillPercentiles(profiles)
	return profiles
}

// FillPercentiles computes, for every catalog-relevant metric of each
// position group, each member's percentile (0-100, average rank) among the
// group's members that carry the column, and stores it under the metric's
// <name>_pct key. Computed once per scope over the full table.
func FillPercentiles(profiles []model.PlayerProfile) {
	byGroup := make(map[model.Group][]int)
	for i := range profiles {
		g := profiles[i].Group
		if g == model.GroupUnknown {
			g = scout.Classify(profiles[i].Position)
		}
		byGroup[g] = append(byGroup[g], i)
	}

	for g, members := range byGroup {
		for _, col := range scout.RelevantMetrics(g) {
			var idxs []int
			var vals []float64
			for _, i := range members {
				if v, ok := profiles[i].Metric(col); ok {
					idxs = append(idxs, i)
					vals = append(vals, v)
				}
			}
			if len(vals) == 0 {
				continue
			}
			pcts := percentiles(vals)
			for k, i := range idxs {
				if profiles[i].Percentiles == nil {
					profiles[i].Percentiles = make(map[string]float64)
				}
				profiles[i].Percentiles[col] = pcts[k]
			}
		}
	}
}

// percentiles returns the average-rank percentile of each value within the
// slice, in input order, on a 0-100 scale. Equal values share the average
// of their ranks.
func percentiles(vals []float64) []float64 {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && vals[idx[j+1]] == vals[idx[i]] {
			j++
		}
		// 1-based ranks i+1..j+1 share their average.
		avgRank := float64(i+j+2) / 2
		pct := avgRank / float64(n) * 100
		for k := i; k <= j; k++ {
			out[idx[k]] = pct
		}
		i = j + 1
	}
	return out
}

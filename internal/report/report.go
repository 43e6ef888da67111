// Package report renders engine results as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/league"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/scout"
	"github.com/walauceh/Premier-League-Analytics-Project/internal/storage"
)

// newTable builds a tablewriter with right-aligned rows and centered headers.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintStandings prints the league table.
func PrintStandings(w io.Writer, rows []league.TableRow) {
	table := newTable(w)
	table.Header("POS", "TEAM", "MP", "PTS", "PPG", "GF", "GA", "GD", "xG", "xGA", "xGD")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Team,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Points),
			fmt.Sprintf("%.2f", r.PPG),
			strconv.Itoa(r.GoalsFor),
			strconv.Itoa(r.GoalsAgainst),
			fmt.Sprintf("%+d", r.GD),
			fmt.Sprintf("%.1f", r.XG),
			fmt.Sprintf("%.1f", r.XGA),
			fmt.Sprintf("%+.1f", r.XGD),
		)
	}
	table.Render()
}

// PrintTopPlayers prints a metric ranking.
func PrintTopPlayers(w io.Writer, rows []scout.RankedPlayer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No qualifying players.")
		return
	}
	table := newTable(w)
	table.Header("#", "PLAYER", "TEAM", "POS", "MIN", rows[0].Metric)
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			r.Player,
			r.Team,
			r.Position,
			strconv.Itoa(r.Minutes),
			fmt.Sprintf("%.2f", r.Value),
		)
	}
	table.Render()
}

// PrintPlayerReport prints the composite player report: identity header,
// per-90 block, percentiles, and the defensive block when present.
func PrintPlayerReport(w io.Writer, r scout.Report) {
	if r.Err != "" {
		fmt.Fprintln(w, r.Err)
		return
	}

	fmt.Fprintf(w, "\n%s  |  %s  |  %s (%s)\n", r.Player, r.Team, r.Position, r.Group)
	fmt.Fprintf(w, "Matches: %d  |  Minutes: %d  |  Min/Match: %.0f  |  Goals: %d\n\n",
		r.Matches, r.Minutes, r.MinutesPerMatch, r.Goals)

	table := newTable(w)
	table.Header("METRIC", "VALUE")
	for _, kv := range []struct {
		label string
		value float64
	}{
		{"Goals/90", r.GoalsPer90},
		{"Assists/90", r.AssistsPer90},
		{"Goal Involvement/90", r.GoalInvolvementPer90},
		{"Key Passes/90", r.KeyPassesPer90},
		{"xG/90", r.XGPer90},
		{"xA/90", r.XAPer90},
		{"xG Involvement/90", r.XGInvolvementPer90},
		{"Shots/90", r.ShotsPer90},
		{"xGChain/90", r.XGChainPer90},
		{"Goals vs xG", r.GoalsVsXG},
		{"Shot Efficiency", r.ShotEfficiency},
	} {
		table.Append(kv.label, fmt.Sprintf("%.2f", kv.value))
	}
	table.Render()

	if len(r.Percentiles) > 0 {
		fmt.Fprintf(w, "\nPercentiles vs %ss:\n", r.Group)
		labels := make([]string, 0, len(r.Percentiles))
		for l := range r.Percentiles {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		pctTable := newTable(w)
		pctTable.Header("METRIC", "PCT")
		for _, l := range labels {
			pctTable.Append(l, fmt.Sprintf("%.0f", r.Percentiles[l]))
		}
		pctTable.Render()
	}

	if d := r.Defensive; d != nil {
		fmt.Fprintln(w, "\nDefensive profile (attributed from team data):")
		defTable := newTable(w)
		defTable.Header("METRIC", "VALUE")
		defTable.Append("Clean Sheets", strconv.Itoa(d.CleanSheets))
		defTable.Append("Clean Sheet %", fmt.Sprintf("%.1f", d.CleanSheetRate))
		defTable.Append("Goals Conceded/90", fmt.Sprintf("%.2f", d.GoalsConcededPer90))
		defTable.Append("xGA/90", fmt.Sprintf("%.2f", d.XGAPer90))
		if r.Group == model.GroupGoalkeeper {
			defTable.Append("Save %", fmt.Sprintf("%.1f", d.SavePercentage))
			defTable.Append("Goals Prevented", fmt.Sprintf("%+.2f", d.GoalsPrevented))
			defTable.Append("Goals Prevented/90", fmt.Sprintf("%+.2f", d.GoalsPreventedPer90))
			defTable.Append("Shots Faced/90 (approx)", fmt.Sprintf("%.2f", d.ShotsFacedPer90))
		}
		if r.Group == model.GroupDefender {
			defTable.Append("Defensive Performance", fmt.Sprintf("%+.2f", d.DefensivePerformance))
			defTable.Append("Defensive Performance/90", fmt.Sprintf("%+.2f", d.DefensivePerformancePer90))
			defTable.Append("PPDA Allowed", fmt.Sprintf("%.1f", d.PPDAAllowed))
		}
		defTable.Render()
	}

	if r.PositionContext != "" {
		fmt.Fprintf(w, "\n%s\n", r.PositionContext)
	}
}

// PrintSimilarity prints the similarity matches with the reference group's
// display metrics as columns.
func PrintSimilarity(w io.Writer, reference string, group model.Group, matches []scout.SimilarityMatch) {
	if len(matches) == 0 {
		fmt.Fprintf(w, "No similar players found for %q.\n", reference)
		return
	}

	cols := scout.DisplayMetricsFor(group)
	header := []any{"PLAYER", "TEAM", "POS", "MIN", "SCORE"}
	for _, c := range cols {
		header = append(header, scout.Label(group, c))
	}

	fmt.Fprintf(w, "\nPlayers similar to %s (%s):\n", reference, group)
	table := newTable(w)
	table.Header(header...)
	for _, m := range matches {
		rowVals := []any{
			m.Player,
			m.Team,
			m.Position,
			strconv.Itoa(m.Minutes),
			fmt.Sprintf("%.3f", m.Score),
		}
		for _, c := range cols {
			if v, ok := m.Metrics[c]; ok {
				rowVals = append(rowVals, fmt.Sprintf("%.2f", v))
			} else {
				rowVals = append(rowVals, "-")
			}
		}
		table.Append(rowVals...)
	}
	table.Render()
}

// PrintDefenseRankings prints a defensive attribution ranking. Column set
// differs between goalkeepers and defenders.
func PrintDefenseRankings(w io.Writer, group model.Group, metric string, rows []model.DefensiveAttribution) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No qualifying players.")
		return
	}

	table := newTable(w)
	if group == model.GroupGoalkeeper {
		table.Header("#", "PLAYER", "TEAM", "MP", "MIN", "CONCEDED", "GC/90", "SAVE%", "PREVENTED", "CS%", metric)
	} else {
		table.Header("#", "PLAYER", "TEAM", "MP", "MIN", "CONCEDED", "GC/90", "DEF_PERF", "PPDA", "CS%", metric)
	}
	for i, a := range rows {
		v, _ := a.Metric(metric)
		var extra string
		if group == model.GroupGoalkeeper {
			extra = fmt.Sprintf("%.1f", a.SavePercentage)
		} else {
			extra = fmt.Sprintf("%+.2f", a.DefensivePerformance)
		}
		var fourth string
		if group == model.GroupGoalkeeper {
			fourth = fmt.Sprintf("%+.2f", a.GoalsPrevented)
		} else {
			fourth = fmt.Sprintf("%.1f", a.PPDAAllowed)
		}
		table.Append(
			strconv.Itoa(i+1),
			a.Player,
			a.Team,
			strconv.Itoa(a.Matches),
			strconv.Itoa(a.Minutes),
			strconv.Itoa(a.GoalsConceded),
			fmt.Sprintf("%.2f", a.GoalsConcededPer90),
			extra,
			fourth,
			fmt.Sprintf("%.1f", a.CleanSheetRate),
			fmt.Sprintf("%.2f", v),
		)
	}
	table.Render()
}

// PrintAttribution prints one player's full attribution record.
func PrintAttribution(w io.Writer, a *model.DefensiveAttribution) {
	fmt.Fprintf(w, "\n%s  |  %s  |  %s  |  %d matches, %d minutes\n\n",
		a.Player, a.Team, a.Group, a.Matches, a.Minutes)

	table := newTable(w)
	table.Header("METRIC", "VALUE")
	table.Append("Goals Conceded", strconv.Itoa(a.GoalsConceded))
	table.Append("Goals Conceded/90", fmt.Sprintf("%.2f", a.GoalsConcededPer90))
	table.Append("xGA", fmt.Sprintf("%.2f", a.XGA))
	table.Append("xGA/90", fmt.Sprintf("%.2f", a.XGAPer90))
	table.Append("Clean Sheets", strconv.Itoa(a.CleanSheets))
	table.Append("Clean Sheet %", fmt.Sprintf("%.1f", a.CleanSheetRate))

	if a.Group == model.GroupGoalkeeper {
		table.Append("Shots Faced", strconv.Itoa(a.ShotsFaced))
		table.Append("Shots Faced/90", fmt.Sprintf("%.2f", a.ShotsFacedPer90))
		table.Append("Shots On Target Faced", strconv.Itoa(a.ShotsOnTargetFaced))
		table.Append("Saves (estimate)", strconv.Itoa(a.SavesEstimate))
		table.Append("Save %", fmt.Sprintf("%.1f", a.SavePercentage))
		table.Append("Goals Prevented", fmt.Sprintf("%+.2f", a.GoalsPrevented))
		table.Append("Goals Prevented/90", fmt.Sprintf("%+.2f", a.GoalsPreventedPer90))
	} else {
		table.Append("Defensive Performance", fmt.Sprintf("%+.2f", a.DefensivePerformance))
		table.Append("Defensive Performance/90", fmt.Sprintf("%+.2f", a.DefensivePerformancePer90))
		table.Append("Shots Against", strconv.Itoa(a.ShotsAgainst))
		table.Append("Shots Against/90", fmt.Sprintf("%.2f", a.ShotsAgainstPer90))
		table.Append("Deep Allowed", strconv.Itoa(a.DeepAllowed))
		table.Append("Deep Allowed/90", fmt.Sprintf("%.2f", a.DeepAllowedPer90))
		table.Append("PPDA Allowed", fmt.Sprintf("%.1f", a.PPDAAllowed))
		table.Append("Goals", strconv.Itoa(a.Goals))
		table.Append("Assists", strconv.Itoa(a.Assists))
		table.Append("xGBuildup/90", fmt.Sprintf("%.2f", a.XGBuildupPer90))
		table.Append("xGChain/90", fmt.Sprintf("%.2f", a.XGChainPer90))
	}
	table.Render()

	if a.Note != "" {
		fmt.Fprintf(w, "\nNote: %s\n", a.Note)
	}
}

// PrintSeasons prints the stored-season summary.
func PrintSeasons(w io.Writer, seasons []storage.SeasonSummary) {
	if len(seasons) == 0 {
		fmt.Fprintln(w, "No data loaded.")
		return
	}
	table := newTable(w)
	table.Header("SEASON", "TEAMS", "TEAM ROWS", "PLAYERS", "PLAYER ROWS", "FROM", "TO")
	for _, s := range seasons {
		table.Append(
			s.Season,
			strconv.Itoa(s.Teams),
			strconv.Itoa(s.TeamMatches),
			strconv.Itoa(s.Players),
			strconv.Itoa(s.PlayerRows),
			s.FirstDate,
			s.LastDate,
		)
	}
	table.Render()
}

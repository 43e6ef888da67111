package scout

import (
	"fmt"
	"math"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// Report is the composite per-player record assembled by BuildReport.
// A missing player is signalled through the Err field, not a Go error.
type Report struct {
	Err string // "player not found" marker; empty on success

	Player        string
	Team          string
	Position      string
	Group         model.Group
	Matches       int
	Minutes       int
	MinutesPerMatch float64
	Goals         int

	GoalsPer90           float64
	AssistsPer90         float64
	GoalInvolvementPer90 float64
	KeyPassesPer90       float64

	XGPer90            float64
	XAPer90            float64
	XGInvolvementPer90 float64
	ShotsPer90         float64
	XGChainPer90       float64

	GoalsVsXG      float64 // season totals, not per-90
	ShotEfficiency float64 // goals / shots; 0 when shotless

	// Percentiles maps the catalog's human label to the player's percentile
	// among position-group peers. Nil when the profile table carried no
	// percentile columns.
	Percentiles map[string]float64

	// Defensive holds the attributed defensive block for goalkeepers and
	// defenders (and midfielders with a defensive signal). Nil otherwise.
	Defensive *DefensiveBlock

	PositionContext string
}

// DefensiveBlock is the defensive portion of a player report, read from the
// pre-joined profile columns rather than a fresh team join.
type DefensiveBlock struct {
	Matches int
	Minutes int

	CleanSheets    int
	CleanSheetRate float64

	GoalsConceded      float64
	GoalsConcededPer90 float64
	XGAPer90           float64

	// Goalkeeper only.
	SavePercentage      float64
	GoalsPrevented      float64
	GoalsPreventedPer90 float64
	// ShotsFacedPer90 is approximated from the player's general shots_per90
	// column in this path; the attribution engine derives the same-named
	// quantity from team shots on target instead. The two derivations are
	// left unreconciled on purpose.
	ShotsFacedPer90    float64
	ShotsOnTargetFaced int
	SavesEstimate      int

	// Defender only.
	DefensivePerformance      float64
	DefensivePerformancePer90 float64
	PPDAAllowed               float64
	ShotsAgainstPer90         float64
	DeepAllowedPer90          float64
}

// positionContexts explains, per group, what the data source can and cannot
// measure for that group.
var positionContexts = map[model.Group]string{
	model.GroupForward:    "Forwards are evaluated primarily on goal-scoring ability, shot volume, and direct goal involvement.",
	model.GroupMidfielder: "Midfielders are assessed on creative output (assists, key passes), build-up play contribution, and goal threat.",
	model.GroupDefender:   "Defenders are evaluated on build-up play contribution and discipline. Note: Understat data lacks defensive-specific metrics (tackles, clearances, blocks).",
	model.GroupGoalkeeper: "Limited metrics available - Understat data does not include goalkeeper-specific stats (saves, save %, distribution).",
}

// BuildReport assembles the full report for one player from the profile
// table. An unknown player yields a report whose Err field is set.
func BuildReport(profiles []model.PlayerProfile, player string) Report {
	var p *model.PlayerProfile
	for i := range profiles {
		if profiles[i].Player == player {
			p = &profiles[i]
			break
		}
	}
	if p == nil {
		return Report{Err: fmt.Sprintf("player %q not found", player)}
	}

	group := groupOf(p)
	apps := p.Appearances
	if apps < 1 {
		apps = 1
	}

	r := Report{
		Player:          p.Player,
		Team:            p.Team,
		Position:        p.Position,
		Group:           group,
		Matches:         p.Appearances,
		Minutes:         p.Minutes,
		MinutesPerMatch: float64(p.Minutes) / float64(apps),
		Goals:           p.Goals,

		GoalsPer90:           p.GoalsPer90,
		AssistsPer90:         p.AssistsPer90,
		GoalInvolvementPer90: p.GoalsPer90 + p.AssistsPer90,
		KeyPassesPer90:       p.KeyPassesPer90,

		XGPer90:            p.XGPer90,
		XAPer90:            p.XAPer90,
		XGInvolvementPer90: p.XGPer90 + p.XAPer90,
		ShotsPer90:         p.ShotsPer90,
		XGChainPer90:       p.XGChainPer90,

		GoalsVsXG: float64(p.Goals) - p.XG,

		PositionContext: positionContexts[group],
	}
	if p.Shots > 0 {
		r.ShotEfficiency = float64(p.Goals) / float64(p.Shots)
	}

	// Percentile block: position-relevant metrics only, keyed by label.
	percentiles := make(map[string]float64)
	for _, col := range RelevantMetrics(group) {
		if pct, ok := p.Percentile(col); ok {
			percentiles[Label(group, col)] = pct
		}
	}
	if len(percentiles) > 0 {
		r.Percentiles = percentiles
	}

	r.Defensive = defensiveBlock(p, group)

	return r
}

// defensiveBlock reads the pre-joined defensive columns off the profile.
// It returns nil when the group carries no defensive block or the profile
// has no meaningful defensive signal.
func defensiveBlock(p *model.PlayerProfile, group model.Group) *DefensiveBlock {
	if !p.HasDefensive {
		return nil
	}
	matchMinutes := float64(p.Minutes) / 90

	switch group {
	case model.GroupGoalkeeper:
		if p.SavePercentage <= 0 && math.Abs(p.GoalsPreventedPer90) <= 0.01 {
			return nil
		}
		b := &DefensiveBlock{
			Matches:             p.Appearances,
			Minutes:             p.Minutes,
			CleanSheetRate:      p.CleanSheetRate,
			GoalsConcededPer90:  p.GoalsConcededPer90,
			XGAPer90:            p.XGAPer90,
			SavePercentage:      p.SavePercentage,
			GoalsPreventedPer90: p.GoalsPreventedPer90,
			ShotsFacedPer90:     p.ShotsPer90, // approximation from general stats
			ShotsOnTargetFaced:  0,            // not available in this path
		}
		if p.Minutes > 0 {
			b.GoalsPrevented = p.GoalsPreventedPer90 * matchMinutes
			b.GoalsConceded = p.GoalsConcededPer90 * matchMinutes
			b.SavesEstimate = int(p.SavePercentage / 100 * p.ShotsPer90 * matchMinutes)
		}
		if p.Appearances > 0 {
			b.CleanSheets = int(p.CleanSheetRate / 100 * float64(p.Appearances))
		}
		return b

	case model.GroupDefender:
		if p.CleanSheetRate <= 0 && math.Abs(p.DefensivePerformancePer90) <= 0.01 {
			return nil
		}
		b := &DefensiveBlock{
			Matches:                   p.Appearances,
			Minutes:                   p.Minutes,
			CleanSheetRate:            p.CleanSheetRate,
			GoalsConcededPer90:        p.GoalsConcededPer90,
			XGAPer90:                  p.XGAPer90,
			DefensivePerformancePer90: p.DefensivePerformancePer90,
			PPDAAllowed:               p.PPDAAllowed,
			ShotsAgainstPer90:         p.ShotsPer90, // approximation
			DeepAllowedPer90:          0,            // not available in this path
		}
		if p.Minutes > 0 {
			b.GoalsConceded = p.GoalsConcededPer90 * matchMinutes
			b.DefensivePerformance = p.DefensivePerformancePer90 * matchMinutes
		}
		if p.Appearances > 0 {
			b.CleanSheets = int(p.CleanSheetRate / 100 * float64(p.Appearances))
		}
		return b

	case model.GroupMidfielder:
		// Included only when a nonzero defensive signal exists.
		if p.CleanSheetRate <= 0 && p.DefensivePerformancePer90 == 0 {
			return nil
		}
		b := &DefensiveBlock{
			Matches:                   p.Appearances,
			CleanSheetRate:            p.CleanSheetRate,
			GoalsConcededPer90:        p.GoalsConcededPer90,
			DefensivePerformancePer90: p.DefensivePerformancePer90,
		}
		if p.Appearances > 0 {
			b.CleanSheets = int(p.CleanSheetRate / 100 * float64(p.Appearances))
		}
		return b

	default:
		return nil
	}
}

package model

import "time"

// Group is a canonical position group derived from free-text position tokens.
type Group int

const (
	GroupUnknown Group = iota
	GroupForward
	GroupMidfielder
	GroupDefender
	GroupGoalkeeper
)

func (g Group) String() string {
	switch g {
	case GroupForward:
		return "Forward"
	case GroupMidfielder:
		return "Midfielder"
	case GroupDefender:
		return "Defender"
	case GroupGoalkeeper:
		return "Goalkeeper"
	default:
		return "?"
	}
}

// ParseGroup resolves a group name or the common short filter forms
// (FWD, MID, DEF, GK) to a Group. Returns false for anything else.
func ParseGroup(s string) (Group, bool) {
	switch s {
	case "Forward", "FWD", "FW":
		return GroupForward, true
	case "Midfielder", "MID", "MF":
		return GroupMidfielder, true
	case "Defender", "DEF", "DF":
		return GroupDefender, true
	case "Goalkeeper", "GK":
		return GroupGoalkeeper, true
	default:
		return GroupUnknown, false
	}
}

// ---- Match tables supplied by ingestion ----

// TeamMatchRecord is one team's participation in one fixture.
// Keyed by (team, date); immutable once loaded.
type TeamMatchRecord struct {
	Team     string
	Date     time.Time
	Venue    string // "h" or "a"
	Opponent string

	GoalsFor     int
	GoalsAgainst int

	ShotsFor             int
	ShotsAgainst         int
	ShotsOnTargetAgainst int

	XG  float64
	XGA float64

	PPDA        float64 // passes allowed per defensive action: own pressing
	PPDAAllowed float64 // opponent's pressing against this team
	DeepAllowed int     // deep completions conceded

	Season string
	Result string // "w", "d", "l"
	Points int
}

// PlayerMatchRecord is one player's participation in one fixture.
// Keyed by (player, date). The player's team on a given date must match
// exactly one TeamMatchRecord for that date.
type PlayerMatchRecord struct {
	Player   string
	Team     string
	Date     time.Time
	Season   string
	Position string
	Minutes  int

	Goals     int
	Assists   int
	Shots     int
	KeyPasses int

	XG        float64
	XA        float64
	XGChain   float64
	XGBuildup float64

	YellowCards int
	RedCards    int
}

// ---- Player profile table ----

// PlayerProfile is one row per player per scope (season or aggregate), with
// totals, per-90 columns, optionally pre-joined defensive columns, and
// optionally percentile columns. Columns are addressed by name through
// Metric, replacing the loose row.get(col, default) access of the data files.
type PlayerProfile struct {
	Player   string
	Team     string
	Position string
	Group    Group // GroupUnknown when the source table had no position_group column
	Season   string

	Appearances int
	Minutes     int

	Goals     int
	Assists   int
	Shots     int
	KeyPasses int

	XG        float64
	XA        float64
	XGChain   float64
	XGBuildup float64

	YellowCards int
	RedCards    int

	GoalsPer90     float64
	AssistsPer90   float64
	ShotsPer90     float64
	KeyPassesPer90 float64
	XGPer90        float64
	XAPer90        float64
	XGChainPer90   float64
	XGBuildupPer90 float64

	// Defensive columns are attributed from team-level data upstream and are
	// only meaningful when HasDefensive is set; absent columns stay omitted
	// from derived outputs rather than read as zero.
	HasDefensive              bool
	CleanSheetRate            float64
	GoalsConcededPer90        float64
	XGAPer90                  float64
	DefensivePerformancePer90 float64
	PPDAAllowed               float64
	SavePercentage            float64
	GoalsPreventedPer90       float64

	// Percentiles holds <metric>_pct values (0-100 rank among position-group
	// peers), keyed by the metric column name. Nil when not precomputed.
	Percentiles map[string]float64
}

// Metric returns the named column's value. The second return is false when
// the column does not exist or is a defensive column on a profile without
// defensive data.
func (p *PlayerProfile) Metric(col string) (float64, bool) {
	switch col {
	case "goals":
		return float64(p.Goals), true
	case "assists":
		return float64(p.Assists), true
	case "shots":
		return float64(p.Shots), true
	case "key_passes":
		return float64(p.KeyPasses), true
	case "xG":
		return p.XG, true
	case "xA":
		return p.XA, true
	case "xGChain":
		return p.XGChain, true
	case "xGBuildup":
		return p.XGBuildup, true
	case "yellow_card":
		return float64(p.YellowCards), true
	case "red_card":
		return float64(p.RedCards), true
	case "minutes":
		return float64(p.Minutes), true
	case "appearances":
		return float64(p.Appearances), true
	case "goals_per90":
		return p.GoalsPer90, true
	case "assists_per90":
		return p.AssistsPer90, true
	case "shots_per90":
		return p.ShotsPer90, true
	case "key_passes_per90":
		return p.KeyPassesPer90, true
	case "xG_per90":
		return p.XGPer90, true
	case "xA_per90":
		return p.XAPer90, true
	case "xGChain_per90":
		return p.XGChainPer90, true
	case "xGBuildup_per90":
		return p.XGBuildupPer90, true
	}
	if !p.HasDefensive {
		return 0, false
	}
	switch col {
	case "clean_sheet_rate":
		return p.CleanSheetRate, true
	case "goals_conceded_per90":
		return p.GoalsConcededPer90, true
	case "xGA_per90":
		return p.XGAPer90, true
	case "defensive_performance_per90":
		return p.DefensivePerformancePer90, true
	case "ppda_allowed":
		return p.PPDAAllowed, true
	case "save_percentage":
		return p.SavePercentage, true
	case "goals_prevented_per90":
		return p.GoalsPreventedPer90, true
	}
	return 0, false
}

// Percentile returns the player's percentile for the given metric column,
// when one was precomputed.
func (p *PlayerProfile) Percentile(col string) (float64, bool) {
	v, ok := p.Percentiles[col]
	return v, ok
}

// ---- Derived, query-scoped records ----

// DefensiveAttribution is the aggregated defensive/attacking context
// attributed to one player over a match window. Produced fresh per query;
// never persisted. Goalkeeper and defender queries populate different
// subsets of the fields.
type DefensiveAttribution struct {
	Player  string
	Team    string
	Group   Group
	Matches int
	Minutes int

	GoalsConceded      int
	GoalsConcededPer90 float64
	XGA                float64
	XGAPer90           float64
	CleanSheets        int
	CleanSheetRate     float64 // percent, 0-100

	// Goalkeeper fields. Saves are approximated from team shots on target
	// against minus goals conceded; never negative.
	ShotsFaced         int
	ShotsFacedPer90    float64
	ShotsOnTargetFaced int
	SavesEstimate      int
	SavePercentage     float64 // percent, 0-100
	GoalsPrevented     float64 // xGA - conceded; positive = better than expected
	GoalsPreventedPer90 float64

	// Defender fields. DefensivePerformance is conceded - xGA; negative =
	// better than expected. The sign convention deliberately differs from
	// GoalsPrevented.
	DefensivePerformance      float64
	DefensivePerformancePer90 float64
	ShotsAgainst              int
	ShotsAgainstPer90         float64
	DeepAllowed               int
	DeepAllowedPer90          float64
	PPDAAllowed               float64 // mean across matches, not per-90

	// Attacking contribution carried through from the player's own records
	// (defender queries only).
	Goals          int
	GoalsPer90     float64
	Assists        int
	AssistsPer90   float64
	XGBuildup      float64
	XGBuildupPer90 float64
	XGChain        float64
	XGChainPer90   float64

	Note string
}

// Metric returns the named attribution column's value, false if unknown.
func (a *DefensiveAttribution) Metric(col string) (float64, bool) {
	switch col {
	case "goals_conceded":
		return float64(a.GoalsConceded), true
	case "goals_conceded_per90":
		return a.GoalsConcededPer90, true
	case "xGA":
		return a.XGA, true
	case "xGA_per90":
		return a.XGAPer90, true
	case "clean_sheets":
		return float64(a.CleanSheets), true
	case "clean_sheet_rate":
		return a.CleanSheetRate, true
	case "shots_faced":
		return float64(a.ShotsFaced), true
	case "shots_faced_per90":
		return a.ShotsFacedPer90, true
	case "shots_on_target_faced":
		return float64(a.ShotsOnTargetFaced), true
	case "saves_estimate":
		return float64(a.SavesEstimate), true
	case "save_percentage":
		return a.SavePercentage, true
	case "goals_prevented":
		return a.GoalsPrevented, true
	case "goals_prevented_per90":
		return a.GoalsPreventedPer90, true
	case "defensive_performance":
		return a.DefensivePerformance, true
	case "defensive_performance_per90":
		return a.DefensivePerformancePer90, true
	case "shots_against":
		return float64(a.ShotsAgainst), true
	case "shots_against_per90":
		return a.ShotsAgainstPer90, true
	case "deep_allowed":
		return float64(a.DeepAllowed), true
	case "deep_allowed_per90":
		return a.DeepAllowedPer90, true
	case "ppda_allowed":
		return a.PPDAAllowed, true
	case "goals":
		return float64(a.Goals), true
	case "goals_per90":
		return a.GoalsPer90, true
	case "assists":
		return float64(a.Assists), true
	case "assists_per90":
		return a.AssistsPer90, true
	case "xGBuildup":
		return a.XGBuildup, true
	case "xGBuildup_per90":
		return a.XGBuildupPer90, true
	case "xGChain":
		return a.XGChain, true
	case "xGChain_per90":
		return a.XGChainPer90, true
	case "minutes":
		return float64(a.Minutes), true
	case "matches":
		return float64(a.Matches), true
	default:
		return 0, false
	}
}

// Per90 normalizes a total to a 90-minute window. A zero-minute divisor is
// clamped to one match-equivalent, yielding the raw total (a known
// approximation rather than a division fault).
func Per90(total float64, minutes int) float64 {
	factor := float64(minutes) / 90
	if minutes <= 0 {
		factor = 1
	}
	return total / factor
}

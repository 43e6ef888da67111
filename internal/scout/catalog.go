package scout

import "github.com/walauceh/Premier-League-Analytics-Project/internal/model"

// Catalog lists, for one position group, which profile columns feed the
// similarity engine, which are displayed (primary before secondary), and
// the human-readable label per column.
type Catalog struct {
	SimilarityFeatures []string
	Primary            []string
	Secondary          []string
	Labels             map[string]string
}

// catalogs is the process-wide metric registry. Built once, never mutated;
// callers must treat the slices and maps as read-only.
var catalogs = map[model.Group]Catalog{
	model.GroupForward: {
		SimilarityFeatures: []string{"goals_per90", "xG_per90", "shots_per90", "xGChain_per90", "assists_per90", "key_passes_per90"},
		Primary:            []string{"goals_per90", "xG_per90", "shots_per90", "assists_per90"},
		Secondary:          []string{"xA_per90", "key_passes_per90", "xGChain_per90"},
		Labels: map[string]string{
			"goals_per90":      "Goals/90",
			"xG_per90":         "xG/90",
			"shots_per90":      "Shots/90",
			"assists_per90":    "Assists/90",
			"xA_per90":         "xA/90",
			"key_passes_per90": "Key Passes/90",
			"xGChain_per90":    "xGChain/90",
		},
	},
	model.GroupMidfielder: {
		SimilarityFeatures: []string{"assists_per90", "xA_per90", "key_passes_per90", "xGChain_per90", "xGBuildup_per90", "goals_per90"},
		Primary:            []string{"assists_per90", "key_passes_per90", "xA_per90", "xGChain_per90"},
		Secondary:          []string{"goals_per90", "xG_per90", "xGBuildup_per90", "shots_per90"},
		Labels: map[string]string{
			"assists_per90":    "Assists/90",
			"key_passes_per90": "Key Passes/90",
			"xA_per90":         "xA/90",
			"xGChain_per90":    "xGChain/90",
			"goals_per90":      "Goals/90",
			"xG_per90":         "xG/90",
			"xGBuildup_per90":  "xGBuildup/90",
			"shots_per90":      "Shots/90",
		},
	},
	model.GroupDefender: {
		SimilarityFeatures: []string{"xGBuildup_per90", "xGChain_per90", "clean_sheet_rate", "goals_conceded_per90", "defensive_performance_per90", "ppda_allowed"},
		Primary:            []string{"clean_sheet_rate", "goals_conceded_per90", "defensive_performance_per90", "xGBuildup_per90"},
		Secondary:          []string{"xGChain_per90", "ppda_allowed", "assists_per90", "yellow_card"},
		Labels: map[string]string{
			"clean_sheet_rate":            "Clean Sheet %",
			"goals_conceded_per90":        "Goals Conceded/90",
			"defensive_performance_per90": "Defensive Performance/90",
			"xGBuildup_per90":             "xGBuildup/90 (Build-up Play)",
			"xGChain_per90":               "xGChain/90 (Attack Involvement)",
			"ppda_allowed":                "PPDA Allowed",
			"key_passes_per90":            "Key Passes/90",
			"assists_per90":               "Assists/90",
			"yellow_card":                 "Yellow Cards",
			"red_card":                    "Red Cards",
			"goals_per90":                 "Goals/90",
		},
	},
	model.GroupGoalkeeper: {
		SimilarityFeatures: []string{"save_percentage", "goals_prevented_per90", "clean_sheet_rate", "goals_conceded_per90", "xGA_per90"},
		Primary:            []string{"save_percentage", "goals_prevented_per90", "clean_sheet_rate", "goals_conceded_per90"},
		Secondary:          []string{"xGA_per90", "xGBuildup_per90", "xGChain_per90"},
		Labels: map[string]string{
			"save_percentage":       "Save %",
			"goals_prevented_per90": "Goals Prevented/90",
			"clean_sheet_rate":      "Clean Sheet %",
			"goals_conceded_per90":  "Goals Conceded/90",
			"xGA_per90":             "xGA/90",
			"xGBuildup_per90":       "xGBuildup/90 (Distribution)",
			"xGChain_per90":         "xGChain/90 (Attack Involvement)",
			"key_passes_per90":      "Key Passes/90",
			"yellow_card":           "Yellow Cards",
		},
	},
}

// displayMetrics lists the raw columns annotated onto similarity matches,
// distinct per group.
var displayMetrics = map[model.Group][]string{
	model.GroupGoalkeeper: {"save_percentage", "goals_prevented_per90", "clean_sheet_rate", "goals_conceded_per90"},
	model.GroupDefender:   {"clean_sheet_rate", "goals_conceded_per90", "defensive_performance_per90", "xGBuildup_per90"},
	model.GroupMidfielder: {"assists_per90", "key_passes_per90", "xA_per90", "goals_per90"},
	model.GroupForward:    {"goals_per90", "assists_per90", "xG_per90", "shots_per90"},
}

// CatalogFor returns the catalog for a group, falling back to the
// Midfielder entry for unknown groups.
func CatalogFor(group model.Group) Catalog {
	if c, ok := catalogs[group]; ok {
		return c
	}
	return catalogs[model.GroupMidfielder]
}

// RelevantMetrics returns the display columns for a group, primary then
// secondary, in registration order.
func RelevantMetrics(group model.Group) []string {
	c := CatalogFor(group)
	out := make([]string, 0, len(c.Primary)+len(c.Secondary))
	out = append(out, c.Primary...)
	out = append(out, c.Secondary...)
	return out
}

// Label returns the human-readable label for a column within a group's
// catalog, or the column name itself when no label is registered.
func Label(group model.Group, col string) string {
	if l, ok := CatalogFor(group).Labels[col]; ok {
		return l
	}
	return col
}

// DisplayMetricsFor returns the similarity-result display columns for a
// group, falling back to the Forward set.
func DisplayMetricsFor(group model.Group) []string {
	if cols, ok := displayMetrics[group]; ok {
		return cols
	}
	return displayMetrics[model.GroupForward]
}

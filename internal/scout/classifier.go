// Package scout implements the position-aware player performance core:
// position classification, metric catalogs, ranking, player reports, and
// similarity search. Everything operates on in-memory tables handed in by
// the caller and performs no I/O.
package scout

import (
	"strings"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// Classify maps a raw position token to a canonical group. The checks run
// in precedence order and the first match wins, so a token carrying both
// attacking and defensive substrings resolves per the listed order. There
// is no failure case: anything unrecognized is a Midfielder.
func Classify(raw string) model.Group {
	pos := strings.ToUpper(raw)
	switch {
	case strings.Contains(pos, "GK"):
		return model.GroupGoalkeeper
	case strings.Contains(pos, "FW"), strings.Contains(pos, "ST"), strings.Contains(pos, "CF"):
		return model.GroupForward
	case strings.Contains(pos, "MF"), strings.Contains(pos, "AM"), strings.Contains(pos, "DM"), strings.Contains(pos, "M"):
		return model.GroupMidfielder
	case strings.Contains(pos, "DF"), strings.Contains(pos, "CB"), strings.Contains(pos, "FB"), strings.Contains(pos, "WB"), strings.Contains(pos, "D"):
		return model.GroupDefender
	default:
		return model.GroupMidfielder
	}
}

// groupOf resolves a profile's canonical group, classifying the raw
// position string when the source table had no position_group column.
func groupOf(p *model.PlayerProfile) model.Group {
	if p.Group != model.GroupUnknown {
		return p.Group
	}
	return Classify(p.Position)
}

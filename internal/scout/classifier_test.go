package scout

import (
	"testing"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

func TestClassify_KnownTokens(t *testing.T) {
	cases := []struct {
		pos  string
		want model.Group
	}{
		{"GK", model.GroupGoalkeeper},
		{"gk", model.GroupGoalkeeper},
		{"FW", model.GroupForward},
		{"ST", model.GroupForward},
		{"CF", model.GroupForward},
		{"FWL", model.GroupForward},
		{"MF", model.GroupMidfielder},
		{"AMC", model.GroupMidfielder},
		{"DMC", model.GroupMidfielder},
		{"MC", model.GroupMidfielder},
		{"DF", model.GroupDefender},
		{"LCB", model.GroupDefender},
		{"FB", model.GroupDefender},
		{"WB", model.GroupDefender},
		{"DR", model.GroupDefender},
	}
	for _, c := range cases {
		if got := Classify(c.pos); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.pos, got, c.want)
		}
	}
}

// A token matching more than one class resolves to the first check in
// precedence order: GK beats everything, forwards beat midfielders,
// midfielders beat defenders.
func TestClassify_PrecedenceOrder(t *testing.T) {
	cases := []struct {
		pos  string
		want model.Group
	}{
		{"GK DR", model.GroupGoalkeeper}, // GK wins over D
		{"ST M", model.GroupForward},     // forward wins over midfielder
		{"DM", model.GroupMidfielder},    // DM is a midfielder, not a defender
		{"MD", model.GroupMidfielder},    // M check runs before D
	}
	for _, c := range cases {
		if got := Classify(c.pos); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestClassify_UnknownDefaultsToMidfielder(t *testing.T) {
	for _, pos := range []string{"", "Sub", "??", "RW"} {
		if got := Classify(pos); got != model.GroupMidfielder {
			t.Errorf("Classify(%q) = %v, want Midfielder", pos, got)
		}
	}
}

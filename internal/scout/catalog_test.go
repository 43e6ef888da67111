package scout

import (
	"testing"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

func TestCatalogFor_UnknownFallsBackToMidfielder(t *testing.T) {
	got := CatalogFor(model.GroupUnknown)
	want := CatalogFor(model.GroupMidfielder)
	if len(got.SimilarityFeatures) != len(want.SimilarityFeatures) {
		t.Fatalf("expected midfielder fallback, got %v", got.SimilarityFeatures)
	}
	for i := range got.SimilarityFeatures {
		if got.SimilarityFeatures[i] != want.SimilarityFeatures[i] {
			t.Errorf("feature %d: got %s, want %s", i, got.SimilarityFeatures[i], want.SimilarityFeatures[i])
		}
	}
}

func TestRelevantMetrics_PrimaryBeforeSecondary(t *testing.T) {
	c := CatalogFor(model.GroupForward)
	metrics := RelevantMetrics(model.GroupForward)
	if len(metrics) != len(c.Primary)+len(c.Secondary) {
		t.Fatalf("expected %d metrics, got %d", len(c.Primary)+len(c.Secondary), len(metrics))
	}
	for i, col := range c.Primary {
		if metrics[i] != col {
			t.Errorf("position %d: got %s, want primary %s", i, metrics[i], col)
		}
	}
}

func TestLabel_FallsBackToColumnName(t *testing.T) {
	if got := Label(model.GroupForward, "goals_per90"); got != "Goals/90" {
		t.Errorf("expected registered label, got %q", got)
	}
	if got := Label(model.GroupForward, "made_up_column"); got != "made_up_column" {
		t.Errorf("expected column name fallback, got %q", got)
	}
}

func TestDisplayMetricsFor_GroupSpecific(t *testing.T) {
	gk := DisplayMetricsFor(model.GroupGoalkeeper)
	if len(gk) == 0 || gk[0] != "save_percentage" {
		t.Errorf("unexpected keeper display metrics: %v", gk)
	}
	// Unknown groups display the forward set.
	unknown := DisplayMetricsFor(model.GroupUnknown)
	fwd := DisplayMetricsFor(model.GroupForward)
	if len(unknown) != len(fwd) || unknown[0] != fwd[0] {
		t.Errorf("expected forward fallback, got %v", unknown)
	}
}

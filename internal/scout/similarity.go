package scout

import (
	"math"
	"sort"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// SimilarityMatch is one candidate from a similarity search: identity, the
// score against the reference player, and the group's display metrics.
type SimilarityMatch struct {
	Player   string
	Team     string
	Position string
	Minutes  int

	// Score is the cosine similarity of standardized feature vectors,
	// floored at 0 so the published range is [0, 1].
	Score float64

	// Metrics holds the group's display columns (see DisplayMetricsFor)
	// with the candidate's raw values.
	Metrics map[string]float64
}

// SimilarPlayers finds the n players most similar to the reference player
// using the catalog's position-relevant features, standardized over the
// candidate pool, compared by cosine similarity. The pool is every other
// player in the reference player's group, or in the override group when one
// is given. A missing player, empty pool, or empty usable feature set all
// yield an empty result, never an error.
func SimilarPlayers(profiles []model.PlayerProfile, player string, n int, override model.Group) []SimilarityMatch {
	var ref *model.PlayerProfile
	for i := range profiles {
		if profiles[i].Player == player {
			ref = &profiles[i]
			break
		}
	}
	if ref == nil {
		return nil
	}

	refGroup := groupOf(ref)
	poolGroup := refGroup
	if override != model.GroupUnknown {
		poolGroup = override
	}

	var pool []*model.PlayerProfile
	for i := range profiles {
		c := &profiles[i]
		if c.Player == player {
			continue
		}
		if groupOf(c) == poolGroup {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	// Restrict the feature list to columns the pool actually carries: a
	// column counts as present when any candidate resolves it.
	var features []string
	for _, col := range CatalogFor(refGroup).SimilarityFeatures {
		present := false
		if _, ok := ref.Metric(col); ok {
			present = true
		}
		for _, c := range pool {
			if _, ok := c.Metric(col); ok {
				present = true
				break
			}
		}
		if present {
			features = append(features, col)
		}
	}
	if len(features) == 0 {
		return nil
	}

	// Candidate matrix, missing values coerced to 0.
	matrix := make([][]float64, len(pool))
	for i, c := range pool {
		row := make([]float64, len(features))
		for j, col := range features {
			if v, ok := c.Metric(col); ok {
				row[j] = v
			}
		}
		matrix[i] = row
	}
	refVec := make([]float64, len(features))
	for j, col := range features {
		if v, ok := ref.Metric(col); ok {
			refVec[j] = v
		}
	}

	standardize(matrix, refVec)

	type scored struct {
		idx int
		cos float64
	}
	scores := make([]scored, len(pool))
	for i := range pool {
		scores[i] = scored{idx: i, cos: cosine(refVec, matrix[i])}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].cos > scores[j].cos })
	if len(scores) > n {
		scores = scores[:n]
	}

	displayCols := DisplayMetricsFor(refGroup)
	out := make([]SimilarityMatch, 0, len(scores))
	for _, s := range scores {
		c := pool[s.idx]
		metrics := make(map[string]float64, len(displayCols))
		for _, col := range displayCols {
			if v, ok := c.Metric(col); ok {
				metrics[col] = v
			}
		}
		out = append(out, SimilarityMatch{
			Player:   c.Player,
			Team:     c.Team,
			Position: c.Position,
			Minutes:  c.Minutes,
			Score:    math.Max(0, s.cos),
			Metrics:  metrics,
		})
	}
	return out
}

// standardize rescales each feature column to zero mean and unit variance,
// fitted on the candidate matrix only, and applies the same transform to
// the reference vector. A zero-variance column is zeroed out everywhere so
// constant features contribute nothing instead of dividing by zero.
func standardize(matrix [][]float64, refVec []float64) {
	rows := len(matrix)
	if rows == 0 {
		return
	}
	cols := len(refVec)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += matrix[i][j]
		}
		mean := sum / float64(rows)

		var sq float64
		for i := 0; i < rows; i++ {
			d := matrix[i][j] - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(rows))

		if std == 0 {
			for i := 0; i < rows; i++ {
				matrix[i][j] = 0
			}
			refVec[j] = 0
			continue
		}
		for i := 0; i < rows; i++ {
			matrix[i][j] = (matrix[i][j] - mean) / std
		}
		refVec[j] = (refVec[j] - mean) / std
	}
}

// cosine returns the cosine similarity of two equal-length vectors, 0 when
// either has zero magnitude.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

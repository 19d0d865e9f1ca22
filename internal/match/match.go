package match

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultThreshold is the similarity a candidate must strictly exceed before
// an approximate match is accepted. Shared by the catalog resolver and the
// safety classifier so there is exactly one fuzzy-matching policy.
const DefaultThreshold = 0.80

type Scorer struct {
	metric    *metrics.Levenshtein
	threshold float64
}

func NewScorer(threshold float64) *Scorer {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	return &Scorer{metric: m, threshold: threshold}
}

// Similarity returns a normalized score in [0, 1].
func (s *Scorer) Similarity(a, b string) float64 {
	return strutil.Similarity(a, b, s.metric)
}

// Match reports whether a and b are similar enough to be treated as the same
// term. The threshold is exclusive.
func (s *Scorer) Match(a, b string) bool {
	return s.Similarity(a, b) > s.threshold
}

// BestMatch scans candidates for the highest-scoring one. ok is false when no
// candidate clears the threshold; no result is ever returned below it.
func (s *Scorer) BestMatch(query string, candidates []string) (best string, score float64, ok bool) {
	query = strings.ToLower(query)
	for _, c := range candidates {
		sc := s.Similarity(query, c)
		if sc > score {
			best, score = c, sc
		}
	}
	if score <= s.threshold {
		return "", score, false
	}
	return best, score, true
}

package match

import "testing"

func TestSimilarityIsCaseInsensitive(t *testing.T) {
	s := NewScorer(DefaultThreshold)

	if got := s.Similarity("Peanut Butter", "peanut butter"); got != 1.0 {
		t.Fatalf("expected 1.0 for case-only difference, got %f", got)
	}
}

func TestMatchThresholdIsExclusive(t *testing.T) {
	s := NewScorer(1.0)

	// Identical strings score exactly 1.0, which does not exceed a 1.0
	// threshold.
	if s.Match("milk", "milk") {
		t.Fatalf("score equal to threshold must not match")
	}
}

func TestBestMatchPicksClosestCandidate(t *testing.T) {
	s := NewScorer(DefaultThreshold)

	best, score, ok := s.BestMatch("peanut buter", []string{"peanut butter", "oat milk", "brown rice"})
	if !ok {
		t.Fatalf("expected a match, got none (score %f)", score)
	}
	if best != "peanut butter" {
		t.Fatalf("expected peanut butter, got %q", best)
	}
}

func TestBestMatchRejectsEverythingBelowThreshold(t *testing.T) {
	s := NewScorer(DefaultThreshold)

	if best, _, ok := s.BestMatch("chocolate cake", []string{"oat milk", "brown rice"}); ok {
		t.Fatalf("expected no match, got %q", best)
	}
}

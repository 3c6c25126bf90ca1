package journal

import "sort"

// Scoring weights. Emotional intensity and sensory richness stand in for
// memory salience; content length gets diminishing returns so verbosity
// alone cannot dominate; media earns a flat bonus regardless of kind.
const (
	sensoryFieldWeight = 10
	contentDepthCap    = 20
	contentDepthDiv    = 50
	mediaBonus         = 15
)

// Score computes an entry's relevance rank:
//
//	sum(emotion intensities) + 10 per filled sensory field
//	+ min(len(content)/50, 20) + 15 if media is attached
//
// Pure and deterministic; always finite and >= 0. The store calls it once
// at save time and the result is frozen on the entry.
func Score(e Entry) float64 {
	emotionScore := 0
	for _, tag := range e.Emotions {
		emotionScore += tag.Intensity
	}

	sensoryScore := sensoryFieldWeight * e.Sensory.filledCount()

	contentDepth := float64(len(e.Content)) / contentDepthDiv
	if contentDepth > contentDepthCap {
		contentDepth = contentDepthCap
	}

	score := float64(emotionScore+sensoryScore) + contentDepth
	if e.Media != nil {
		score += mediaBonus
	}
	return score
}

// Ranked returns the entries sorted by RelevanceScore descending. The sort
// is stable so equal-score entries keep their incoming order across calls.
// Scores are finite by construction, so a plain > comparison is safe.
func Ranked(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}

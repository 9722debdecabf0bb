package match

// DefaultMinScore is the similarity below which Closest reports no match.
const DefaultMinScore = 0.6

// Closest returns the candidate most similar to target, provided its score
// reaches minScore. Ties go to the earlier candidate. Candidates equal to
// target are skipped.
func Closest(target string, candidates []string, minScore float64) (string, bool) {
	best := ""
	bestScore := -1.0

	for _, c := range candidates {
		if c == target {
			continue
		}

		if score := LevenshteinNormalized(target, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < minScore {
		return "", false
	}

	return best, true
}

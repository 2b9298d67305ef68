package match

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the alias key closest to any same-width word window
// of the normalized name, when the edit distance stays within
// distanceThreshold of the key's length. It is a reporting hint only;
// a suggestion never turns an unmatched file into a candidate.
func Suggest(normalized string, keys []string) (string, bool) {
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, key := range keys {
		width := len(strings.Fields(key))
		if width == 0 || width > len(words) {
			continue
		}
		thr := distanceThreshold(len(key))
		for i := 0; i+width <= len(words); i++ {
			window := strings.Join(words[i:i+width], " ")
			// Cheap length filter before the distance computation.
			if abs(len(window)-len(key)) > thr {
				continue
			}
			d := fuzzy.LevenshteinDistance(key, window)
			if d <= thr && (bestDist < 0 || d < bestDist) {
				best, bestDist = key, d
			}
		}
	}
	return best, bestDist >= 0
}

// distanceThreshold is the acceptable edit distance, roughly 20% of
// the alias length, clamped to [1, 3].
func distanceThreshold(n int) int {
	th := n / 5
	if th < 1 {
		return 1
	}
	if th > 3 {
		return 3
	}
	return th
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

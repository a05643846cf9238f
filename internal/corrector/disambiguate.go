package corrector

// Replacement records a word the disambiguator changed.
type Replacement struct {
	Position    int    `json:"position"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Count       int    `json:"count"`
}

// Policy tunes the trigram vote.
type Policy struct {
	// UnseenTrigramCount is used for a candidate trigram missing from the table.
	UnseenTrigramCount int
	// ReplaceFloor is the score of the original word. A candidate must beat it
	// strictly. With the floor below UnseenTrigramCount any candidate replaces
	// the word; with the floor equal to it, unseen trigrams leave the word alone.
	ReplaceFloor int
}

// DefaultPolicy keeps the classic floor of 0 against a neutral count of 1.
var DefaultPolicy = Policy{UnseenTrigramCount: 1, ReplaceFloor: 0}

// Disambiguate walks the overlapping three-word windows of words left to
// right. The third word of each window is the suspect; every candidate c from
// candidates[suspect] is scored by the count of (w[i], w[i+1], c) and the first
// candidate with the highest count above the floor replaces the suspect.
// Later windows see earlier replacements in their first two positions. Words
// without a candidate list, and the first two words, are never changed.
// words is not modified.
func Disambiguate(words []string, table *TrigramTable, candidates map[string][]string, policy Policy) ([]string, []Replacement) {
	out := make([]string, len(words))
	copy(out, words)

	var replaced []Replacement
	for i := 0; i+2 < len(out); i++ {
		suspect := out[i+2]
		list, ok := candidates[suspect]
		if !ok || len(list) == 0 {
			continue
		}

		best, bestCount := suspect, policy.ReplaceFloor
		for _, c := range list {
			count, seen := table.Count(TrigramKey(out[i], out[i+1], c))
			if !seen {
				count = policy.UnseenTrigramCount
			}
			if count > bestCount {
				best, bestCount = c, count
			}
		}

		out[i+2] = best
		if best != suspect {
			replaced = append(replaced, Replacement{
				Position:    i + 2,
				Original:    suspect,
				Replacement: best,
				Count:       bestCount,
			})
		}
	}
	return out, replaced
}

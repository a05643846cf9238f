package corrector

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultMaxCandidates bounds the candidate list of a single word.
const DefaultMaxCandidates = 10

type rankedCandidate struct {
	word  string
	dist  int
	delta int
}

// GenerateCandidates proposes corrections for word from the corpus words that
// share at least one bigram with it. Candidates are ordered by edit distance,
// then by difference in length, then alphabetically, and cut to limit
// (DefaultMaxCandidates when limit <= 0). A word that is itself in the corpus
// comes first with distance 0. An empty result is normal: the word is shorter
// than two runes or none of its bigrams is indexed.
func GenerateCandidates(word string, idx *BigramIndex, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxCandidates
	}

	seen := make(map[string]struct{})
	var pool []string
	for _, bg := range Bigrams(word) {
		for _, w := range idx.lookup(bg) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	n := runeLen(word)
	ranked := make([]rankedCandidate, len(pool))
	for i, w := range pool {
		ranked[i] = rankedCandidate{word: w, dist: EditDistance(word, w), delta: abs(n - runeLen(w))}
	}
	slices.SortFunc(ranked, func(a, b rankedCandidate) int {
		return cmp.Or(
			cmp.Compare(a.dist, b.dist),
			cmp.Compare(a.delta, b.delta),
			strings.Compare(a.word, b.word),
		)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.word
	}
	return out
}

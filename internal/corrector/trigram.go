package corrector

import (
	"maps"
	"slices"

	"ngramcorrector/internal/corpus"
)

// TrigramKey joins three words the way the trigram table stores them.
func TrigramKey(w1, w2, w3 string) string {
	return w1 + " " + w2 + " " + w3
}

// Trigrams returns the overlapping three-word keys of words: len(words)-2 of
// them, or none for fewer than three words.
func Trigrams(words []string) []string {
	if len(words) < 3 {
		return nil
	}
	out := make([]string, 0, len(words)-2)
	for i := 0; i+2 < len(words); i++ {
		out = append(out, TrigramKey(words[i], words[i+1], words[i+2]))
	}
	return out
}

// TrigramTable counts occurrences of word trigrams. Read-only once built.
type TrigramTable struct {
	counts map[string]int
}

// NewTrigramTable copies m into a table, dropping non-positive counts.
func NewTrigramTable(m map[string]int) *TrigramTable {
	counts := make(map[string]int, len(m))
	for k, v := range m {
		if v > 0 {
			counts[k] = v
		}
	}
	return &TrigramTable{counts: counts}
}

// Count reports how often key was seen.
func (t *TrigramTable) Count(key string) (int, bool) {
	if t == nil {
		return 0, false
	}
	n, ok := t.counts[key]
	return n, ok
}

func (t *TrigramTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Map returns a copy of the table contents.
func (t *TrigramTable) Map() map[string]int {
	if t == nil {
		return map[string]int{}
	}
	return maps.Clone(t.counts)
}

// Keys returns the trigram keys in lexicographic order.
func (t *TrigramTable) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.counts))
}

type trigramBuilder struct {
	counts map[string]int
}

func newTrigramBuilder() *trigramBuilder {
	return &trigramBuilder{counts: make(map[string]int)}
}

func (b *trigramBuilder) addWords(words []string) {
	for _, key := range Trigrams(words) {
		b.counts[key]++
	}
}

func (b *trigramBuilder) merge(other *trigramBuilder) {
	for k, v := range other.counts {
		b.counts[k] += v
	}
}

func (b *trigramBuilder) freeze() *TrigramTable {
	return &TrigramTable{counts: b.counts}
}

// BuildTrigramTable counts every overlapping word trigram in docs.
func BuildTrigramTable(docs []corpus.Document) (*TrigramTable, BuildStats) {
	var stats BuildStats
	b := newTrigramBuilder()
	for _, d := range docs {
		if words, ok := documentWords(d, &stats); ok {
			b.addWords(words)
		}
	}
	return b.freeze(), stats
}

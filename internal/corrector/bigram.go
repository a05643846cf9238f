package corrector

import (
	"slices"

	"ngramcorrector/internal/corpus"
)

// MinWordLength is the shortest word that is added to the bigram index.
const MinWordLength = 2

// Bigrams returns the overlapping two-rune substrings of word, in order.
func Bigrams(word string) []string {
	r := []rune(word)
	if len(r) < 2 {
		return nil
	}
	out := make([]string, 0, len(r)-1)
	for i := 1; i < len(r); i++ {
		out = append(out, string(r[i-1:i+1]))
	}
	return out
}

// BigramIndex maps a bigram to the distinct corpus words containing it.
// It is read-only once built and safe for concurrent readers.
type BigramIndex struct {
	words map[string][]string
}

// NewBigramIndex copies m into an index. Word lists are deduplicated and sorted.
func NewBigramIndex(m map[string][]string) *BigramIndex {
	b := newBigramBuilder()
	for bg, words := range m {
		for _, w := range words {
			b.add(bg, w)
		}
	}
	return b.freeze()
}

func (idx *BigramIndex) lookup(bigram string) []string {
	if idx == nil {
		return nil
	}
	return idx.words[bigram]
}

// Words returns the words indexed under bigram.
func (idx *BigramIndex) Words(bigram string) []string {
	return slices.Clone(idx.lookup(bigram))
}

// Len is the number of distinct bigrams.
func (idx *BigramIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.words)
}

// Map returns a deep copy of the index contents.
func (idx *BigramIndex) Map() map[string][]string {
	out := make(map[string][]string, idx.Len())
	if idx == nil {
		return out
	}
	for bg, words := range idx.words {
		out[bg] = slices.Clone(words)
	}
	return out
}

type bigramBuilder struct {
	sets map[string]map[string]struct{}
}

func newBigramBuilder() *bigramBuilder {
	return &bigramBuilder{sets: make(map[string]map[string]struct{})}
}

func (b *bigramBuilder) add(bigram, word string) {
	set, ok := b.sets[bigram]
	if !ok {
		set = make(map[string]struct{})
		b.sets[bigram] = set
	}
	set[word] = struct{}{}
}

func (b *bigramBuilder) addWords(words []string) {
	for _, w := range words {
		if runeLen(w) < MinWordLength {
			continue
		}
		for _, bg := range Bigrams(w) {
			b.add(bg, w)
		}
	}
}

func (b *bigramBuilder) merge(other *bigramBuilder) {
	for bg, set := range other.sets {
		for w := range set {
			b.add(bg, w)
		}
	}
}

func (b *bigramBuilder) freeze() *BigramIndex {
	words := make(map[string][]string, len(b.sets))
	for bg, set := range b.sets {
		list := make([]string, 0, len(set))
		for w := range set {
			list = append(list, w)
		}
		slices.Sort(list)
		words[bg] = list
	}
	return &BigramIndex{words: words}
}

// BuildBigramIndex indexes every word of two or more runes in docs under each
// of its bigrams. Malformed documents are skipped and counted in the stats.
func BuildBigramIndex(docs []corpus.Document) (*BigramIndex, BuildStats) {
	var stats BuildStats
	b := newBigramBuilder()
	for _, d := range docs {
		if words, ok := documentWords(d, &stats); ok {
			b.addWords(words)
		}
	}
	return b.freeze(), stats
}

package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngramcorrector/internal/corpus"
)

func TestBigrams(t *testing.T) {
	assert.Equal(t, []string{"ca", "at"}, Bigrams("cat"))
	assert.Equal(t, []string{"ca", "at", "tt"}, Bigrams("catt"))
	assert.Equal(t, []string{"ca", "af", "fé"}, Bigrams("café"))
	assert.Nil(t, Bigrams("a"))
	assert.Nil(t, Bigrams(""))
}

func TestBuildBigramIndex_Scenario(t *testing.T) {
	docs := []corpus.Document{corpus.NewDocument("1", "Cat sat", "The cat sat on the mat")}
	idx, stats := BuildBigramIndex(docs)

	assert.Equal(t, BuildStats{Documents: 1}, stats)
	assert.Contains(t, idx.Words("ca"), "cat")
	assert.Equal(t, []string{"cat", "mat", "sat"}, idx.Words("at"))
	assert.Equal(t, []string{"the"}, idx.Words("th"))
}

func TestBuildBigramIndex_SkipsShortWordsAndMalformedDocuments(t *testing.T) {
	idx, stats := BuildBigramIndex(sampleDocs())

	assert.Equal(t, 4, stats.Documents)
	assert.Equal(t, 1, stats.Skipped)
	for bg, words := range idx.Map() {
		for _, w := range words {
			assert.GreaterOrEqual(t, runeLen(w), MinWordLength, "bigram %q", bg)
		}
	}
	// "my" is the shortest indexable word; "a" never reaches the index.
	assert.Equal(t, []string{"my"}, idx.Words("my"))
}

func TestBigramIndex_WordsAreDistinctAndSorted(t *testing.T) {
	idx := NewBigramIndex(map[string][]string{"ca": {"cat", "cap", "cat"}})
	assert.Equal(t, []string{"cap", "cat"}, idx.Words("ca"))

	// Words returns a copy.
	words := idx.Words("ca")
	words[0] = "zzz"
	assert.Equal(t, []string{"cap", "cat"}, idx.Words("ca"))
}

func TestBigramIndex_NilAndEmpty(t *testing.T) {
	var idx *BigramIndex
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Words("ca"))
	require.NotNil(t, idx.Map())

	empty, stats := BuildBigramIndex(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, BuildStats{}, stats)
}

package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"the", "cat", "sat", "on", "mat_2", "3"}, Tokenize("The cat, sat -- on MAT_2! 3"))
	assert.Empty(t, Tokenize(" ,.;! "))
	assert.Equal(t, []string{"café", "über"}, Tokenize("Café Über"))
}

func TestSplitSentence_LinesUpWithTokenize(t *testing.T) {
	text := "The Big, DOC!"
	tokens := SplitSentence(text)
	assert.Equal(t, []Token{
		{Surface: "The", Norm: "the"},
		{Surface: "Big", Norm: "big"},
		{Surface: "DOC", Norm: "doc"},
	}, tokens)
	assert.Equal(t, Tokenize(text), norms(tokens))
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "dog", matchCase("doq", "dog"))
	assert.Equal(t, "Dog", matchCase("Doq", "dog"))
	assert.Equal(t, "DOG", matchCase("DOQ", "dog"))
	assert.Equal(t, "Dog", matchCase("D", "dog"))
	assert.Equal(t, "dog", matchCase("d0q", "dog"))
}

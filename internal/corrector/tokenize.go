package corrector

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize returns the lower-cased word runs of text. Punctuation and
// whitespace only separate words.
func Tokenize(text string) []string {
	words := wordRe.FindAllString(text, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// Token is a word as written in the input together with its normalised form.
type Token struct {
	Surface string
	Norm    string
}

// SplitSentence tokenizes text for correction. Positions line up with Tokenize.
func SplitSentence(text string) []Token {
	words := wordRe.FindAllString(text, -1)
	out := make([]Token, len(words))
	for i, w := range words {
		out[i] = Token{Surface: w, Norm: strings.ToLower(w)}
	}
	return out
}

func norms(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Norm
	}
	return out
}

package mistake

import (
	"math/rand"
	"strings"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultProbability is the chance that Inject alters a sample.
const DefaultProbability = 0.3

type Mode int

const (
	// ModeRandomLetter swaps one character for any ASCII letter.
	ModeRandomLetter Mode = iota
	// ModeKeyboard swaps one character for a neighbouring QWERTY key.
	ModeKeyboard
)

// Injector corrupts the last word of a word sequence. All randomness comes
// from the seeded source, so a run is reproducible.
type Injector struct {
	rng  *rand.Rand
	P    float64
	Mode Mode
}

func NewInjector(seed int64, p float64, mode Mode) *Injector {
	return &Injector{rng: rand.New(rand.NewSource(seed)), P: p, Mode: mode}
}

// Inject returns words joined by spaces, with the last word altered with
// probability P, and whether it was altered. A substitution may pick the
// character that was already there.
func (in *Injector) Inject(words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	out := make([]string, len(words))
	copy(out, words)

	last := []rune(out[len(out)-1])
	mutated := false
	if in.rng.Float64() <= in.P && len(last) > 0 {
		i := in.rng.Intn(len(last))
		last[i] = in.substitute(last[i])
		out[len(out)-1] = string(last)
		mutated = true
	}
	return strings.Join(out, " "), mutated
}

func (in *Injector) substitute(r rune) rune {
	if in.Mode == ModeKeyboard {
		if nb := neighbours(r); len(nb) > 0 {
			return nb[in.rng.Intn(len(nb))]
		}
	}
	return rune(asciiLetters[in.rng.Intn(len(asciiLetters))])
}

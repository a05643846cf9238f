package mistake

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbours(t *testing.T) {
	assert.Equal(t, []rune{'w', 'a', 'd', 'x'}, neighbours('s'))
	assert.Equal(t, []rune{'w', 'a', 'd', 'x'}, neighbours('S'))
	assert.Nil(t, neighbours('1'))
}

func TestInject_Reproducible(t *testing.T) {
	words := []string{"the", "big", "dog"}
	a := NewInjector(42, 0.5, ModeRandomLetter)
	b := NewInjector(42, 0.5, ModeRandomLetter)
	for i := 0; i < 50; i++ {
		outA, mutA := a.Inject(words)
		outB, mutB := b.Inject(words)
		assert.Equal(t, outA, outB)
		assert.Equal(t, mutA, mutB)
	}
}

func TestInject_ProbabilityBounds(t *testing.T) {
	words := []string{"the", "big", "dog"}

	never := NewInjector(1, 0, ModeRandomLetter)
	for i := 0; i < 20; i++ {
		out, mutated := never.Inject(words)
		assert.False(t, mutated)
		assert.Equal(t, "the big dog", out)
	}

	always := NewInjector(1, 1, ModeRandomLetter)
	for i := 0; i < 20; i++ {
		out, mutated := always.Inject(words)
		assert.True(t, mutated)
		parts := strings.Split(out, " ")
		assert.Equal(t, []string{"the", "big"}, parts[:2])
		assert.LessOrEqual(t, diffCount(parts[2], "dog"), 1)
	}
	assert.Equal(t, []string{"the", "big", "dog"}, words)
}

func TestInject_KeyboardMode(t *testing.T) {
	in := NewInjector(7, 1, ModeKeyboard)
	for i := 0; i < 30; i++ {
		out, _ := in.Inject([]string{"ab", "cd", "sss"})
		last := []rune(strings.Split(out, " ")[2])
		changed := 0
		for _, r := range last {
			if r != 's' {
				changed++
				assert.Contains(t, []rune{'w', 'a', 'd', 'x'}, r)
			}
		}
		assert.Equal(t, 1, changed)
	}
}

func TestInject_Empty(t *testing.T) {
	out, mutated := NewInjector(1, 1, ModeRandomLetter).Inject(nil)
	assert.Equal(t, "", out)
	assert.False(t, mutated)
}

type fixedCorrector func(string) string

func (f fixedCorrector) Correct(s string) string { return f(s) }

func TestEvaluate(t *testing.T) {
	samples := []string{"the big dog", "the cat sat", "on the mat"}
	ctx := context.Background()

	rep, err := Evaluate(ctx, fixedCorrector(func(s string) string { return s }), samples, NewInjector(1, 0, ModeRandomLetter), nil)
	assert.NoError(t, err)
	assert.Equal(t, Report{Total: 3}, rep)
	assert.Equal(t, 1.0, rep.Accuracy())

	rep, err = Evaluate(ctx, fixedCorrector(func(string) string { return "wrong" }), samples, NewInjector(1, 0, ModeRandomLetter), nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, rep.Errors)
	assert.Equal(t, 0.0, rep.Accuracy())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Evaluate(cancelled, fixedCorrector(func(s string) string { return s }), samples, NewInjector(1, 0, ModeRandomLetter), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func diffCount(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return len(ra) + len(rb)
	}
	n := 0
	for i := range ra {
		if ra[i] != rb[i] {
			n++
		}
	}
	return n
}

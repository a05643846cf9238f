package mistake

import (
	"math"
	"unicode"
)

var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range keyboardRows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

func keyDistance(a, b rune) float64 {
	pa, oka := keyPos[unicode.ToLower(a)]
	pb, okb := keyPos[unicode.ToLower(b)]
	if !oka || !okb {
		return math.Inf(1)
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// neighbours lists the keys within one row or column step of r, or nil when r
// is not a letter key.
func neighbours(r rune) []rune {
	if _, ok := keyPos[unicode.ToLower(r)]; !ok {
		return nil
	}
	var out []rune
	for _, row := range keyboardRows {
		for _, ch := range row {
			if d := keyDistance(r, ch); d > 0 && d <= 1.0 {
				out = append(out, ch)
			}
		}
	}
	return out
}

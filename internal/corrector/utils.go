package corrector

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EditDistance is the unit-cost Levenshtein distance between a and b, counted in runes.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := prev[j] + 1
			if y := curr[j-1] + 1; y < x {
				x = y
			}
			if z := prev[j-1] + cost; z < x {
				x = z
			}
			curr[j] = x
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func isTitle(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsUpper(r) {
		return false
	}
	rest := s[size:]
	return strings.ToLower(rest) == rest
}

func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// matchCase spells word the way surface is capitalised.
func matchCase(surface, word string) string {
	switch {
	case isUpper(surface) && runeLen(surface) > 1:
		return strings.ToUpper(word)
	case isTitle(surface):
		return title(word)
	default:
		return word
	}
}

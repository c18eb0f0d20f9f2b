package gen

import (
	"math"
	"unicode/utf8"
)

// Filter is the acceptance predicate applied to every composed candidate.
// It has no side effects and never reorders what it lets through.
type Filter struct {
	MinLength  int
	MaxLength  int
	MinEntropy float64
	Blacklist  map[string]struct{}
}

// Accept reports whether the candidate passes the length bounds, the
// Shannon entropy threshold, and the blacklist. Length is counted in runes.
func (f *Filter) Accept(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < f.MinLength || n > f.MaxLength {
		return false
	}
	if f.MinEntropy > 0 && Entropy(s) < f.MinEntropy {
		return false
	}
	if _, banned := f.Blacklist[s]; banned {
		return false
	}
	return true
}

// Entropy is the Shannon entropy in bits of the string's character
// frequency distribution. Empty and single-character strings have zero
// entropy, so they fail any positive threshold.
func Entropy(s string) float64 {
	counts := map[rune]int{}
	n := 0
	for _, r := range s {
		counts[r]++
		n++
	}
	if n == 0 {
		return 0
	}

	ent := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		ent -= p * math.Log2(p)
	}
	return ent
}

package gen

import (
	"strings"
	"unicode"
)

// Variants holds the placeholder value sets derived from one base string.
// Capitalized, Upper and Camel are single deterministic transforms of the
// untransformed base; Base ranges over case mode x leet expansion.
type Variants struct {
	Base        []string
	Capitalized string
	Upper       string
	Camel       string
}

// Expand produces all placeholder variants for one base string.
func Expand(base string, cases []CaseMode, leet LeetMap, leetMax int) Variants {
	return Variants{
		Base:        expandBase(base, cases, leet, leetMax),
		Capitalized: capitalizeFirst(base),
		Upper:       strings.ToUpper(base),
		Camel:       toCamel(base),
	}
}

// expandBase builds the {base} value set: each enabled case transform of
// the base string, each expanded through bounded leet substitution, with
// duplicates dropped while keeping first-seen order.
func expandBase(base string, cases []CaseMode, leet LeetMap, leetMax int) []string {
	if len(cases) == 0 {
		cases = []CaseMode{CaseOriginal}
	}

	out := []string{}
	seen := map[string]bool{}
	for _, mode := range cases {
		for _, v := range expandLeet(base, applyCase(base, mode), leet, leetMax) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func applyCase(s string, mode CaseMode) string {
	switch mode {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseTitle:
		return titleCase(s)
	case CaseInvert:
		return invertCase(s)
	}
	return s // original
}

// titleCase capitalizes each whitespace-delimited word.
func titleCase(s string) string {
	rs := []rune(s)
	start := true
	for i, r := range rs {
		if unicode.IsSpace(r) {
			start = true
			continue
		}
		if start {
			rs[i] = unicode.ToUpper(r)
			start = false
		} else {
			rs[i] = unicode.ToLower(r)
		}
	}
	return string(rs)
}

func invertCase(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case unicode.IsUpper(r):
			rs[i] = unicode.ToLower(r)
		case unicode.IsLower(r):
			rs[i] = unicode.ToUpper(r)
		}
	}
	return string(rs)
}

func capitalizeFirst(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// toCamel splits the string into runs of alphanumeric characters separated
// by runs of anything else; each alphanumeric run gets its first character
// uppercased and the rest lowercased, separators pass through verbatim.
func toCamel(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(rs) {
		if !isAlnum(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}

		j := i
		for j < len(rs) && isAlnum(rs[j]) {
			j++
		}
		b.WriteRune(unicode.ToUpper(rs[i]))
		for k := i + 1; k < j; k++ {
			b.WriteRune(unicode.ToLower(rs[k]))
		}
		i = j
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// expandLeet returns every variant of cased obtainable by substituting at
// most max positions at once. A position is eligible when the character of
// the *original* (pre-case-transform) string at that position is a leet map
// key, so case transforms don't silently disable the map. The identity
// variant always comes first; duplicates are dropped.
//
// The bound is enforced up front by enumerating position subsets of size
// 0..min(eligible, max) rather than generating the full product and
// truncating, which is the whole point of the cap.
func expandLeet(original, cased string, leet LeetMap, max int) []string {
	if len(leet) == 0 || max == 0 {
		return []string{cased}
	}

	orig := []rune(original)
	cs := []rune(cased)

	var eligible []int
	for i, r := range orig {
		if i >= len(cs) {
			break
		}
		if _, ok := leet[r]; ok {
			eligible = append(eligible, i)
		}
	}

	out := []string{cased}
	if len(eligible) == 0 {
		return out
	}
	seen := map[string]bool{cased: true}

	if max > len(eligible) {
		max = len(eligible)
	}

	for k := 1; k <= max; k++ {
		eachCombination(len(eligible), k, func(combo []int) {
			// positions being substituted for this subset, ascending
			pos := make([]int, k)
			repls := make([][]string, k)
			for i, c := range combo {
				pos[i] = eligible[c]
				repls[i] = leet[orig[pos[i]]]
			}

			choice := make([]int, k)
			for {
				var b strings.Builder
				ci := 0
				for i, r := range cs {
					if ci < k && pos[ci] == i {
						b.WriteString(repls[ci][choice[ci]])
						ci++
					} else {
						b.WriteRune(r)
					}
				}
				if s := b.String(); !seen[s] {
					seen[s] = true
					out = append(out, s)
				}

				j := k - 1
				for j >= 0 {
					choice[j]++
					if choice[j] < len(repls[j]) {
						break
					}
					choice[j] = 0
					j--
				}
				if j < 0 {
					break
				}
			}
		})
	}

	return out
}

// eachCombination visits every k-subset of [0,n) in lexicographic order.
// The slice passed to visit is reused between calls.
func eachCombination(n, k int, visit func(idx []int)) {
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		visit(idx)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

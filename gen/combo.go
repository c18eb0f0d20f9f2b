package gen

import (
	"iter"
	"strings"
)

// BaseStrings returns a lazy iterator over every base string: for each
// length l in 1..maxLen, every ordered permutation of l distinct word-list
// positions, joined with each configured joiner in turn. Emission order is
// by increasing length, then lexicographic over word-list indices, then
// joiner order. Duplicate words in the list are distinct positions and are
// not collapsed.
//
// A single-word permutation has nothing to join, so it is emitted exactly
// once no matter how many joiners are configured.
func BaseStrings(words []string, joiners []string, maxLen int) iter.Seq[string] {
	if len(joiners) == 0 {
		joiners = []string{""}
	}
	if maxLen > len(words) {
		maxLen = len(words)
	}

	return func(yield func(string) bool) {
		n := len(words)
		used := make([]bool, n)
		perm := make([]string, 0, maxLen)

		emit := func() bool {
			if len(perm) == 1 {
				return yield(perm[0])
			}
			for _, j := range joiners {
				if !yield(strings.Join(perm, j)) {
					return false
				}
			}
			return true
		}

		// Walk index permutations in lexicographic order, one slot at a time
		var walk func(l int) bool
		walk = func(l int) bool {
			for i := 0; i < n; i++ {
				if used[i] {
					continue
				}

				used[i] = true
				perm = append(perm, words[i])

				ok := true
				if len(perm) == l {
					ok = emit()
				} else {
					ok = walk(l)
				}

				perm = perm[:len(perm)-1]
				used[i] = false

				if !ok {
					return false
				}
			}
			return true
		}

		for l := 1; l <= maxLen; l++ {
			if !walk(l) {
				return
			}
		}
	}
}

package gen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseStringsTwoWordsEmptyJoiner(t *testing.T) {
	got := slices.Collect(BaseStrings([]string{"a", "b"}, []string{""}, 2))
	assert.Equal(t, []string{"a", "b", "ab", "ba"}, got)
}

func TestBaseStringsOrder(t *testing.T) {
	// increasing length, then permutation order over indices, then joiner order
	got := slices.Collect(BaseStrings([]string{"x", "y"}, []string{"-", "_"}, 2))
	assert.Equal(t, []string{"x", "y", "x-y", "x_y", "y-x", "y_x"}, got)
}

func TestBaseStringsSingleWordEmittedOncePerJoinerSet(t *testing.T) {
	// nothing to join, so the bare word shows up once no matter how many joiners
	got := slices.Collect(BaseStrings([]string{"solo"}, []string{"", "-", "_", "."}, 1))
	assert.Equal(t, []string{"solo"}, got)
}

func TestBaseStringsDuplicateWordsAreDistinctPositions(t *testing.T) {
	got := slices.Collect(BaseStrings([]string{"a", "a"}, []string{""}, 2))
	assert.Equal(t, []string{"a", "a", "aa", "aa"}, got)
}

func TestBaseStringsMaxLenClamped(t *testing.T) {
	got := slices.Collect(BaseStrings([]string{"a", "b"}, []string{""}, 99))
	assert.Len(t, got, 4)
}

func TestBaseStringsStopsEarly(t *testing.T) {
	var got []string
	for s := range BaseStrings([]string{"a", "b", "c"}, []string{""}, 3) {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

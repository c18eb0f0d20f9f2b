package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(""))
	assert.Equal(t, 0.0, Entropy("a"))
	assert.Equal(t, 0.0, Entropy("aaaa"))
	assert.InDelta(t, 1.0, Entropy("ab"), 1e-9)
	assert.InDelta(t, 2.0, Entropy("abcd"), 1e-9)
}

func TestFilterLength(t *testing.T) {
	f := Filter{MinLength: 2, MaxLength: 4}
	assert.False(t, f.Accept("a"))
	assert.True(t, f.Accept("ab"))
	assert.True(t, f.Accept("abcd"))
	assert.False(t, f.Accept("abcde"))
}

func TestFilterLengthCountsRunes(t *testing.T) {
	f := Filter{MinLength: 1, MaxLength: 2}
	assert.True(t, f.Accept("äö"))
}

func TestFilterEntropyThreshold(t *testing.T) {
	f := Filter{MaxLength: 64, MinEntropy: 1.5}
	assert.False(t, f.Accept("aaaa"))
	assert.False(t, f.Accept("abab")) // exactly 1.0 bit
	assert.True(t, f.Accept("abcd"))
}

func TestFilterEmptyStringFailsPositiveEntropy(t *testing.T) {
	f := Filter{MaxLength: 64, MinEntropy: 0.1}
	assert.False(t, f.Accept(""))
}

func TestFilterBlacklist(t *testing.T) {
	f := Filter{
		MaxLength: 64,
		Blacklist: map[string]struct{}{"hunter2": {}},
	}
	assert.False(t, f.Accept("hunter2"))
	assert.True(t, f.Accept("hunter3"))
}

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"foo_bar", "Foo_Bar"},
		{"hello-world", "Hello-World"},
		{"a", "A"},
		{"", ""},
		{"FOO bar", "Foo Bar"},
		{"red.fox2", "Red.Fox2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toCamel(tt.in), "toCamel(%q)", tt.in)
	}
}

func TestApplyCase(t *testing.T) {
	tests := []struct {
		mode CaseMode
		in   string
		want string
	}{
		{CaseOriginal, "HeLLo", "HeLLo"},
		{CaseLower, "HeLLo", "hello"},
		{CaseUpper, "HeLLo", "HELLO"},
		{CaseTitle, "hello world", "Hello World"},
		{CaseTitle, "hELLO wORLD", "Hello World"},
		{CaseInvert, "HeLLo1", "hEllO1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, applyCase(tt.in, tt.mode), "%s(%q)", tt.mode, tt.in)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Pass", capitalizeFirst("pass"))
	assert.Equal(t, "Pass word", capitalizeFirst("pass word"))
	assert.Equal(t, "", capitalizeFirst(""))
}

func TestExpandLeetBound(t *testing.T) {
	leet := LeetMap{'a': {"@"}}

	// 3 eligible positions, at most 1 substituted at once:
	// C(3,0) + C(3,1) = 4 variants, never the full 2^3 = 8
	got := expandLeet("banana", "banana", leet, 1)
	assert.Equal(t, []string{"banana", "b@nana", "ban@na", "banan@"}, got)

	got = expandLeet("banana", "banana", leet, 2)
	assert.Len(t, got, 7) // + C(3,2)

	got = expandLeet("banana", "banana", leet, 3)
	assert.Len(t, got, 8)
}

func TestExpandLeetIdentityAlwaysFirst(t *testing.T) {
	got := expandLeet("pass", "pass", LeetMap{'s': {"$", "5"}}, 2)
	assert.Equal(t, "pass", got[0])
	assert.Contains(t, got, "pa$$")
	assert.Contains(t, got, "pa5$")
	assert.NotContains(t, got, "p@ss", "only mapped characters substitute")
	assert.Len(t, got, 9)
}

func TestExpandLeetZeroCapDisables(t *testing.T) {
	assert.Equal(t, []string{"pass"}, expandLeet("pass", "pass", LeetMap{'s': {"$"}}, 0))
	assert.Equal(t, []string{"pass"}, expandLeet("pass", "pass", LeetMap{}, 4))
}

func TestExpandLeetEligibilityAgainstOriginal(t *testing.T) {
	// case transform uppercased the string, but eligibility is decided on
	// the original characters so the lowercase-keyed map still applies
	got := expandLeet("pass", "PASS", LeetMap{'a': {"@"}}, 1)
	assert.Equal(t, []string{"PASS", "P@SS"}, got)
}

func TestExpandBaseDedupes(t *testing.T) {
	// lower and original agree on an already-lowercase string
	got := expandBase("hi", []CaseMode{CaseOriginal, CaseLower, CaseUpper}, nil, 0)
	assert.Equal(t, []string{"hi", "HI"}, got)
}

func TestExpandVariantKinds(t *testing.T) {
	v := Expand("red_fox", []CaseMode{CaseOriginal}, nil, 0)
	assert.Equal(t, "Red_fox", v.Capitalized)
	assert.Equal(t, "RED_FOX", v.Upper)
	assert.Equal(t, "Red_Fox", v.Camel)
	assert.Equal(t, []string{"red_fox"}, v.Base)
}

func TestEachCombination(t *testing.T) {
	var got [][]int
	eachCombination(4, 2, func(idx []int) {
		got = append(got, append([]int(nil), idx...))
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	called := false
	eachCombination(2, 3, func([]int) { called = true })
	assert.False(t, called, "k > n visits nothing")
}

package gen

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alfarttusie/passmaker/util"
)

// CaseMode is one of the supported case transforms for {base} variants.
type CaseMode string

const (
	CaseOriginal CaseMode = "original"
	CaseLower    CaseMode = "lower"
	CaseUpper    CaseMode = "upper"
	CaseTitle    CaseMode = "title"
	CaseInvert   CaseMode = "invert"
)

// LeetMap maps a single character to its replacement strings, in the order
// they were configured.
type LeetMap map[rune][]string

// DefaultMasks is used when the caller supplies no --mask at all.
var DefaultMasks = []string{
	"{base}{num}{sym}",
	"{base}{year}{sym}",
	"{sym}{base}{num}",
	"{camel}{num}",
	"{Base}{year}",
	"{BASE}{sym}{num}",
}

// Config holds everything the pipeline needs for one run. It is built once
// before generation starts and never mutated afterwards.
type Config struct {
	Words   []string
	Joiners []string

	// MaxPermLength is the max number of words combined per base string.
	// Zero means "all words"; out-of-range values are clamped by Validate.
	MaxPermLength int

	Masks   []string
	Numbers []string
	Symbols []string
	Years   []string

	Cases   []CaseMode
	Leet    LeetMap
	LeetMax int // max simultaneously substituted positions per variant

	MinLength  int
	MaxLength  int
	MinEntropy float64
	Blacklist  map[string]struct{}

	// MaxCount caps total emitted lines across all workers, 0 = unlimited.
	MaxCount int

	Workers int

	// Isolated selects the isolated-memory sharing discipline: the cap is
	// pre-split into static per-worker quotas and workers hand buffered
	// chunks back to the coordinator instead of writing to a shared sink.
	Isolated bool
}

// Validate normalizes the config in place and reports the first problem
// found. It must pass before the pipeline is started.
func (c *Config) Validate() error {
	if len(c.Words) == 0 {
		return configErrorf("words", "no words provided")
	}
	for _, w := range c.Words {
		if w == "" {
			return configErrorf("words", "empty word in word list")
		}
	}

	if len(c.Joiners) == 0 {
		c.Joiners = []string{""}
	}

	if c.MaxPermLength <= 0 || c.MaxPermLength > len(c.Words) {
		c.MaxPermLength = len(c.Words)
	}

	if len(c.Masks) == 0 {
		c.Masks = DefaultMasks
	}
	for _, m := range c.Masks {
		if _, err := parseMask(m); err != nil {
			return &ConfigError{Field: "mask", Err: err}
		}
	}

	if len(c.Cases) == 0 {
		c.Cases = []CaseMode{CaseOriginal}
	}

	if c.LeetMax < 0 {
		return configErrorf("leet-max-expansions", "must be >= 0, got %d", c.LeetMax)
	}

	if c.MinLength > c.MaxLength {
		return configErrorf("length", "min-length %d > max-length %d", c.MinLength, c.MaxLength)
	}

	if c.MaxCount < 0 {
		return configErrorf("max-count", "must be positive, got %d", c.MaxCount)
	}

	if c.Workers < 1 {
		c.Workers = 1
	}

	return nil
}

// ParseCSVAllowEmpty splits a comma-separated value list, trimming each
// element but keeping explicit empty entries (an empty token means "omit
// this slot" for numbers/symbols, or "no joiner" for joiners).
func ParseCSVAllowEmpty(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

// ParseCases parses a CSV of case mode names, deduplicating while keeping
// the configured order.
func ParseCases(csv string) ([]CaseMode, error) {
	out := []CaseMode{}
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}

		mode := CaseMode(tok)
		switch mode {
		case CaseOriginal, CaseLower, CaseUpper, CaseTitle, CaseInvert:
		default:
			return nil, configErrorf("cases", "unknown case mode %q", tok)
		}

		known := false
		for _, m := range out {
			if m == mode {
				known = true
				break
			}
		}
		if !known {
			out = append(out, mode)
		}
	}

	if len(out) == 0 {
		out = []CaseMode{CaseOriginal}
	}
	return out, nil
}

// ParseYears expands a years spec into a token set. Each CSV item is a
// single year ("2020"), an inclusive range ("1990-1995"), or "last:N" for
// the N years ending at currentYear. The union is deduplicated and sorted
// descending so the most recent years come first.
func ParseYears(spec string, currentYear int) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return []string{""}, nil
	}

	seen := map[int]bool{}
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if after, ok := strings.CutPrefix(tok, "last:"); ok {
			n, err := strconv.Atoi(after)
			if err != nil || n <= 0 {
				return nil, configErrorf("years", "bad last:N item %q", tok)
			}
			for y := currentYear - n + 1; y <= currentYear; y++ {
				seen[y] = true
			}
			continue
		}

		min, max, err := util.ParseNumRange(tok)
		if err != nil {
			return nil, configErrorf("years", "bad year item %q: %s", tok, err)
		}
		if min > max {
			min, max = max, min
		}
		for y := min; y <= max; y++ {
			seen[y] = true
		}
	}

	if len(seen) == 0 {
		return []string{""}, nil
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	// descending, most recent first
	for i := 0; i < len(years); i++ {
		for j := i + 1; j < len(years); j++ {
			if years[j] > years[i] {
				years[i], years[j] = years[j], years[i]
			}
		}
	}

	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out, nil
}

// ParseLeet parses a leet spec like "a=@,4;s=$,5;e=3" into a LeetMap.
// An empty spec disables leet entirely.
func ParseLeet(spec string) (LeetMap, error) {
	mapping := LeetMap{}
	if strings.TrimSpace(spec) == "" {
		return mapping, nil
	}

	for _, chunk := range strings.Split(spec, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		key, vals, ok := strings.Cut(chunk, "=")
		if !ok {
			return nil, configErrorf("leet", "bad leet item %q, want char=repl[,repl...]", chunk)
		}

		key = strings.TrimSpace(key)
		if utf8.RuneCountInString(key) != 1 {
			return nil, configErrorf("leet", "leet key %q must be a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)

		repls := []string{}
		for _, v := range strings.Split(vals, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				repls = append(repls, v)
			}
		}
		if len(repls) == 0 {
			return nil, configErrorf("leet", "leet key %q has no replacements", key)
		}

		mapping[r] = repls
	}

	return mapping, nil
}

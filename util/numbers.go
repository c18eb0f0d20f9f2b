package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumRange parses "1990-1995" style inclusive ranges. A single number
// is the degenerate range min == max.
func ParseNumRange(rangeStr string) (min int, max int, err error) {
	first, second, isRange := strings.Cut(rangeStr, "-")

	min, err = strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("bad number %q: %w", first, err)
	}
	if !isRange {
		return min, min, nil
	}

	max, err = strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, fmt.Errorf("bad number %q: %w", second, err)
	}

	return min, max, nil
}

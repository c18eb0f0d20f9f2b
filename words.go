package main

// Word list and blacklist loading

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/norm"
)

// collectWords merges the -w words (or stdin when -w is "-") with the
// --word-file lines, NFKC-normalizes each entry and drops duplicates while
// preserving first-seen order.
func collectWords(wordArg, wordFile string) ([]string, error) {
	words := []string{}

	if wordArg == "-" {
		pterm.Info.Println("Reading words from STDIN...")
		ws, err := scanLines(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading words from stdin: %w", err)
		}
		words = append(words, ws...)
	} else if wordArg != "" {
		words = append(words, strings.Split(wordArg, ",")...)
	}

	if wordFile != "" {
		f, err := os.Open(wordFile)
		if err != nil {
			return nil, fmt.Errorf("opening word file: %w", err)
		}
		ws, err := scanLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading word file: %w", err)
		}
		words = append(words, ws...)
	}

	out := make([]string, 0, len(words))
	seen := map[string]bool{}
	for _, w := range words {
		w = norm.NFKC.String(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out, nil
}

// loadBlacklist reads the exclusion set, one entry per line. An unreadable
// blacklist is a warning rather than a fatal error.
func loadBlacklist(path string) map[string]struct{} {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		pterm.Warning.Printf("Could not load blacklist %q: %s\n", path, err)
		return nil
	}
	defer f.Close()

	lines, err := scanLines(f)
	if err != nil {
		pterm.Warning.Printf("Could not read blacklist %q: %s\n", path, err)
		return nil
	}

	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		set[line] = struct{}{}
	}
	return set
}

func scanLines(r io.Reader) ([]string, error) {
	var out []string

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out, scanner.Err()
}

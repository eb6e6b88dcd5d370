// Package ecd synthesizes sample data files for the cell-array capture path:
// it distributes named fragment value sequences across the cells of
// successive data frames, interleaves constant diagnostic frames, and
// reorders each frame's rows into LVDS transmission order.
package ecd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FragmentTable maps a fragment name to its ordered sequence of sample
// values, one value per data frame. Immutable after load.
type FragmentTable map[string][]byte

// ReadFragments loads the fragment definitions file. Each line is a fragment
// name followed by its comma separated sample values; a name defined twice
// keeps the later definition.
func ReadFragments(path string) (FragmentTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s not found", path)
	}
	defer f.Close()

	fragments := FragmentTable{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokens := splitLine(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		values := make([]byte, 0, len(tokens)-1)
		for _, tok := range tokens[1:] {
			n, _ := strconv.Atoi(tok) // non-numeric tokens read as 0
			values = append(values, byte(n))
		}
		fragments[tokens[0]] = values
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	return fragments, nil
}

// splitLine tokenizes one line of a definitions file. Tokens are separated
// by commas and/or whitespace. Blank lines and lines starting with '#' or
// "//" yield no tokens.
func splitLine(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
		return nil
	}
	return strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
}

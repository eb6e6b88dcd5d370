package ecd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DistributionSpec is one tokenized line of the distribution definitions
// file, before fragment names have been resolved. A zero First/Last/Step
// means the field was absent from the line.
type DistributionSpec struct {
	First, Last, Step int
	Fragments         []string
}

// Distribution assigns a value sequence to a range of cells in every data
// frame. First and Last are 1-based inclusive cell numbers; Values is the
// concatenation of the named fragments' sample values, one value per frame.
type Distribution struct {
	First, Last, Step int
	Values            []byte
}

// Resolve validates the cell range, applies the defaulting rules, and
// concatenates the value sequences of the named fragments, in listed order.
func (s DistributionSpec) Resolve(fragments FragmentTable, cellsPerFrame int) (Distribution, error) {
	if s.First < 1 || s.First > cellsPerFrame {
		return Distribution{}, fmt.Errorf("invalid cell number %d", s.First)
	}

	d := Distribution{First: s.First, Last: s.Last, Step: s.Step}

	// no "last cell" means the distribution is just for the first cell
	if d.Last == 0 {
		d.Last = d.First
	}

	// no step means every cell from 'first' to 'last'
	if d.Step == 0 {
		d.Step = 1
	}

	// the cell progression must move forward and stay inside the frame
	if d.Step < 0 {
		return Distribution{}, fmt.Errorf("invalid step %d", d.Step)
	}
	if d.Last > cellsPerFrame {
		return Distribution{}, fmt.Errorf("invalid cell number %d", d.Last)
	}

	for _, name := range s.Fragments {
		values, ok := fragments[name]
		if !ok {
			return Distribution{}, fmt.Errorf("undefined fragment name '%s'", name)
		}
		d.Values = append(d.Values, values...)
	}

	return d, nil
}

// ReadDistributions loads the distribution definitions file and resolves
// each line against the fragment table. Any resolution failure abandons the
// whole load; no partial list is returned.
func ReadDistributions(path string, fragments FragmentTable, cellsPerFrame int) ([]Distribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s not found", path)
	}
	defer f.Close()

	var list []Distribution
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		spec, ok := parseDistributionLine(scanner.Text())
		if !ok {
			continue
		}

		d, err := spec.Resolve(fragments, cellsPerFrame)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	return list, nil
}

// parseDistributionLine tokenizes a single distribution definition:
// "first, last, step $ fragmentName, fragmentName, ...". Lines without the
// '$' delimiter (including comments and blanks) are not definitions.
func parseDistributionLine(line string) (DistributionSpec, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
		return DistributionSpec{}, false
	}

	rangePart, fragPart, found := strings.Cut(trimmed, "$")
	if !found {
		return DistributionSpec{}, false
	}

	var spec DistributionSpec
	fields := [3]*int{&spec.First, &spec.Last, &spec.Step}
	for i, tok := range splitLine(rangePart) {
		if i == len(fields) {
			break
		}
		*fields[i], _ = strconv.Atoi(tok)
	}

	spec.Fragments = splitLine(fragPart)
	return spec, true
}

// Package input loads puzzle lines from the data directory.
//
// Files are named day<N><suffix>.txt, where the suffix selects the real
// puzzle input, the sample, or the alternate sample used by the second part.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadDay indicates a day outside 1..25.
var ErrBadDay = errors.New("input: day out of range")

// Kind selects which file of a day is loaded.
type Kind int

const (
	// Puzzle is the full puzzle input, day<N>.txt.
	Puzzle Kind = iota
	// Test is the sample input, day<N>_test.txt.
	Test
	// TestB is the second-part sample, day<N>_test_b.txt.
	TestB
)

// Suffix returns the file name suffix for k.
func (k Kind) Suffix() string {
	switch k {
	case Test:
		return "_test"
	case TestB:
		return "_test_b"
	default:
		return ""
	}
}

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Path returns the file that Load reads for (dir, day, kind).
func Path(dir string, day int, kind Kind) string {
	return filepath.Join(dir, fmt.Sprintf("day%d%s.txt", day, kind.Suffix()))
}

// Load reads every non-blank line of Path(dir, day, kind).
// A missing file is reported with an error that matches fs.ErrNotExist.
func Load(dir string, day int, kind Kind) ([]string, error) {
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("%w: %d", ErrBadDay, day)
	}

	return ReadFile(Path(dir, day, kind))
}

// ReadFile reads every non-blank line of the named file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	return lines, nil
}

// ReadLines returns the non-blank lines of r with surrounding whitespace
// trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

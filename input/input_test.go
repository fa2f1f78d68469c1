package input_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/togglepath/input"
)

func TestReadLines(t *testing.T) {
	lines, err := input.ReadLines(strings.NewReader("a\n\n  b  \r\n\t\nc"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, lines)

	lines, err = input.ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("day10.txt", "full\n")
	write("day10_test.txt", "s1\ns2\n\n")
	write("day10_test_b.txt", "b1\n")

	for kind, want := range map[input.Kind][]string{
		input.Puzzle: {"full"},
		input.Test:   {"s1", "s2"},
		input.TestB:  {"b1"},
	} {
		got, err := input.Load(dir, 10, kind)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := input.Load(dir, 11, input.Puzzle)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = input.Load(dir, 0, input.Puzzle)
	require.ErrorIs(t, err, input.ErrBadDay)
}

func TestPath(t *testing.T) {
	require.Equal(t, filepath.Join("data", "inputs", "day10_test_b.txt"),
		input.Path(filepath.Join("data", "inputs"), 10, input.TestB))
}

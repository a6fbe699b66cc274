package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestRunBothParts(t *testing.T) {
	path := writeInput(t, "(()))(\n")
	var out bytes.Buffer
	err := run(&out, []string{"-input", path, "2015", "1"})
	require.NoError(t, err)
	require.Equal(t, "Part 1: 0\nPart 2: 5\n", out.String())
}

func TestRunSinglePart(t *testing.T) {
	path := writeInput(t, "2x3x4\n")
	var out bytes.Buffer
	err := run(&out, []string{"-input", path, "-part", "2", "2015", "2"})
	require.NoError(t, err)
	require.Equal(t, "Part 2: 34\n", out.String())
}

func TestRunUnknownDay(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{"-input", "unused", "2015", "26"})
	require.ErrorContains(t, err, "no solution")
	require.Empty(t, out.String())
}

func TestRunBadArguments(t *testing.T) {
	cases := [][]string{
		{"2015"},
		{"twenty", "1"},
		{"2015", "one"},
		{"-part", "3", "2015", "1"},
	}
	for _, args := range cases {
		var out bytes.Buffer
		require.Error(t, run(&out, args))
	}
}

func TestRunSolverError(t *testing.T) {
	path := writeInput(t, "up and down\n")
	var out bytes.Buffer
	err := run(&out, []string{"-input", path, "2015", "1"})
	require.ErrorContains(t, err, "part 1")
}

func TestLookupYears(t *testing.T) {
	for _, year := range []int{2015, 2023} {
		p1, p2, ok := lookup(year, 17)
		require.True(t, ok)
		require.NotNil(t, p1)
		require.NotNil(t, p2)
	}
	_, _, ok := lookup(2021, 1)
	require.False(t, ok)
}

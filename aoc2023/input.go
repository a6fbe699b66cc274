package aoc2023

import "strings"

// splitLines trims the outer whitespace of raw puzzle input and returns its
// non-empty lines.
func splitLines(data string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

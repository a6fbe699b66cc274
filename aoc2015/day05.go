package aoc2015

import "strings"

// Day 5: Doesn't He Have Intern-Elves For This? Classify strings as naughty
// or nice under two rule sets.

// isNiceString reports whether s contains at least three vowels, a doubled
// letter, and none of the forbidden pairs.
func isNiceString(s string) bool {
	for _, bad := range []string{"ab", "cd", "pq", "xy"} {
		if strings.Contains(s, bad) {
			return false
		}
	}
	vowels := 0
	double := false
	for i, r := range s {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
		if i > 0 && s[i] == s[i-1] {
			double = true
		}
	}

	return vowels >= 3 && double
}

// isNicerString reports whether s contains a non-overlapping repeated pair
// and a letter that repeats with exactly one letter between.
func isNicerString(s string) bool {
	pairTwice := false
	for i := 0; i+2 <= len(s); i++ {
		if strings.Contains(s[i+2:], s[i:i+2]) {
			pairTwice = true
			break
		}
	}
	sandwich := false
	for i := 0; i+2 < len(s); i++ {
		if s[i] == s[i+2] {
			sandwich = true
			break
		}
	}

	return pairTwice && sandwich
}

// Day05Part1 counts nice strings under the original rules.
func Day05Part1(data string) (int, error) {
	nice := 0
	for _, line := range strings.Fields(strings.TrimSpace(data)) {
		if isNiceString(line) {
			nice++
		}
	}

	return nice, nil
}

// Day05Part2 counts nice strings under the revised rules.
func Day05Part2(data string) (int, error) {
	nice := 0
	for _, line := range strings.Fields(strings.TrimSpace(data)) {
		if isNicerString(line) {
			nice++
		}
	}

	return nice, nil
}

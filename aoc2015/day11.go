package aoc2015

import "strings"

// Day 11: Corporate Policy. Increment a lowercase password string until it
// satisfies the Security-Elf's rules.

// incrementPassword advances a lowercase password by one, carrying wrapped z
// letters leftward.
func incrementPassword(p string) string {
	b := []byte(p)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 'z' {
			b[i]++
			break
		}
		b[i] = 'a'
	}

	return string(b)
}

// isValidPassword reports whether p is exactly eight lowercase letters with
// an increasing straight of three, no confusing letters and two distinct
// pairs.
func isValidPassword(p string) bool {
	if len(p) != 8 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < 'a' || p[i] > 'z' {
			return false
		}
	}
	if strings.ContainsAny(p, "ilo") {
		return false
	}
	straight := false
	for i := 0; i+2 < len(p); i++ {
		if p[i]+1 == p[i+1] && p[i+1]+1 == p[i+2] {
			straight = true
			break
		}
	}
	if !straight {
		return false
	}
	pairs := make(map[byte]bool)
	for i := 0; i+1 < len(p); i++ {
		if p[i] == p[i+1] {
			pairs[p[i]] = true
		}
	}

	return len(pairs) >= 2
}

// nextValidPassword returns the next valid password strictly after p. When p
// contains a confusing letter, everything after its first occurrence is
// skipped in one step.
func nextValidPassword(p string) string {
	next := p
	if i := strings.IndexAny(p, "ilo"); i >= 0 {
		next = incrementPassword(p[:i+1]) + strings.Repeat("a", len(p)-i-1)
	} else {
		next = incrementPassword(next)
	}
	for !isValidPassword(next) {
		next = incrementPassword(next)
	}

	return next
}

// Day11Part1 returns Santa's next valid password.
func Day11Part1(data string) (string, error) {
	return nextValidPassword(strings.TrimSpace(data)), nil
}

// Day11Part2 returns the valid password after the next one.
func Day11Part2(data string) (string, error) {
	first, err := Day11Part1(data)
	if err != nil {
		return "", err
	}

	return nextValidPassword(first), nil
}

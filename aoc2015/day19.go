package aoc2015

import (
	"fmt"
	"sort"
	"strings"
)

// Day 19: Medicine for Rudolph. Count the distinct molecules reachable in one
// replacement, then greedily devolve the medicine molecule back to a single
// electron.

// parseReplacements splits the input into the replacement table and the
// target molecule.
func parseReplacements(data string) (map[string][]string, string, error) {
	head, molecule, ok := strings.Cut(strings.TrimSpace(data), "\n\n")
	if !ok {
		return nil, "", fmt.Errorf("%w: day 19: missing molecule", ErrBadInput)
	}
	replacements := make(map[string][]string)
	for _, line := range splitLines(head) {
		source, dest, ok := strings.Cut(line, " => ")
		if !ok {
			return nil, "", fmt.Errorf("%w: day 19: %q", ErrBadInput, line)
		}
		replacements[source] = append(replacements[source], dest)
	}

	return replacements, strings.TrimSpace(molecule), nil
}

// singleReplacements returns the set of molecules reachable from molecule by
// one replacement.
func singleReplacements(molecule string, replacements map[string][]string) map[string]bool {
	results := make(map[string]bool)
	for source, dests := range replacements {
		for at := 0; ; {
			i := strings.Index(molecule[at:], source)
			if i < 0 {
				break
			}
			at += i
			for _, dest := range dests {
				results[molecule[:at]+dest+molecule[at+len(source):]] = true
			}
			at++
		}
	}

	return results
}

// devolveSteps reduces the molecule to "e" by repeatedly undoing the longest
// applicable replacement, returning the number of steps taken.
func devolveSteps(molecule string, replacements map[string][]string) (int, error) {
	devolve := make(map[string]string)
	var products []string
	for source, dests := range replacements {
		for _, dest := range dests {
			if _, dup := devolve[dest]; dup {
				return 0, fmt.Errorf("%w: day 19: ambiguous product %q", ErrBadInput, dest)
			}
			devolve[dest] = source
			products = append(products, dest)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		if len(products[i]) != len(products[j]) {
			return len(products[i]) > len(products[j])
		}
		return products[i] < products[j]
	})

	steps := 0
	for molecule != "e" {
		applied := false
		for _, product := range products {
			if i := strings.Index(molecule, product); i >= 0 {
				molecule = molecule[:i] + devolve[product] + molecule[i+len(product):]
				steps++
				applied = true
				break
			}
		}
		if !applied {
			return 0, fmt.Errorf("%w: day 19: no devolution for %q", ErrBadInput, molecule)
		}
	}

	return steps, nil
}

// Day19Part1 counts distinct molecules one replacement away from the medicine
// molecule.
func Day19Part1(data string) (int, error) {
	replacements, molecule, err := parseReplacements(data)
	if err != nil {
		return 0, err
	}

	return len(singleReplacements(molecule, replacements)), nil
}

// Day19Part2 returns the fewest fabrication steps from e to the medicine
// molecule.
func Day19Part2(data string) (int, error) {
	replacements, molecule, err := parseReplacements(data)
	if err != nil {
		return 0, err
	}

	return devolveSteps(molecule, replacements)
}

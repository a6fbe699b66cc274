package aoc2023

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aockit/aoc/numtheory"
)

// Day 8: Haunted Wasteland. Follow left/right instructions through a node
// map; ghosts start on every __A node and the combined period is the least
// common multiple of their cycles.

var desertNodeRe = regexp.MustCompile(`(\w+) = \((\w+), (\w+)\)`)

func parseDesertMap(data string) (string, map[string][2]string, error) {
	lines := splitLines(data)
	if len(lines) < 2 {
		return "", nil, fmt.Errorf("%w: day 8: too short", ErrBadInput)
	}
	method := lines[0]
	nodes := make(map[string][2]string)
	for _, line := range lines[1:] {
		m := desertNodeRe.FindStringSubmatch(line)
		if m == nil {
			return "", nil, fmt.Errorf("%w: day 8: %q", ErrBadInput, line)
		}
		nodes[m[1]] = [2]string{m[2], m[3]}
	}

	return method, nodes, nil
}

// traverseSteps walks from start until done reports true, cycling through the
// instruction string.
func traverseSteps(start string, done func(string) bool, method string, nodes map[string][2]string) (int, error) {
	current := start
	for steps := 0; ; steps++ {
		if done(current) {
			return steps, nil
		}
		next, ok := nodes[current]
		if !ok {
			return 0, fmt.Errorf("%w: day 8: unknown node %q", ErrBadInput, current)
		}
		switch method[steps%len(method)] {
		case 'L':
			current = next[0]
		case 'R':
			current = next[1]
		default:
			return 0, fmt.Errorf("%w: day 8: bad instruction %q", ErrBadInput, method[steps%len(method)])
		}
	}
}

// Day08Part1 counts the steps from AAA to ZZZ.
func Day08Part1(data string) (int, error) {
	method, nodes, err := parseDesertMap(data)
	if err != nil {
		return 0, err
	}

	return traverseSteps("AAA", func(n string) bool { return n == "ZZZ" }, method, nodes)
}

// Day08Part2 starts a ghost on every node ending in A and returns the first
// step where all stand on nodes ending in Z, via the LCM of their cycles.
func Day08Part2(data string) (int, error) {
	method, nodes, err := parseDesertMap(data)
	if err != nil {
		return 0, err
	}
	var cycles []int
	for node := range nodes {
		if !strings.HasSuffix(node, "A") {
			continue
		}
		steps, err := traverseSteps(node, func(n string) bool { return strings.HasSuffix(n, "Z") }, method, nodes)
		if err != nil {
			return 0, err
		}
		cycles = append(cycles, steps)
	}
	if len(cycles) == 0 {
		return 0, fmt.Errorf("%w: day 8: no ghost start nodes", ErrBadInput)
	}

	return numtheory.LCM(cycles...), nil
}

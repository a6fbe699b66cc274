package aoc2023

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Day 19: Aplenty. Route machine parts through named workflows of threshold
// rules, then count the accepted rating combinations by range splitting.

// machinePart holds the four ratings of a part.
type machinePart map[byte]int

func (p machinePart) score() int {
	return p['x'] + p['m'] + p['a'] + p['s']
}

// workflowRule sends matching parts to result. A rule without an attribute
// always matches.
type workflowRule struct {
	attr   byte
	comp   byte
	value  int
	result string
}

func (r workflowRule) apply(p machinePart) (string, bool) {
	switch r.comp {
	case '<':
		if p[r.attr] < r.value {
			return r.result, true
		}
	case '>':
		if p[r.attr] > r.value {
			return r.result, true
		}
	default:
		return r.result, true
	}

	return "", false
}

var (
	workflowRuleRe = regexp.MustCompile(`^([xmas])([<>])(\d+):(\w+)$`)
	partRatingRe   = regexp.MustCompile(`([xmas])=(\d+)`)
)

func parseWorkflows(data string) (map[string][]workflowRule, []machinePart, error) {
	head, tail, ok := strings.Cut(strings.TrimSpace(data), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("%w: day 19: missing part list", ErrBadInput)
	}

	workflows := make(map[string][]workflowRule)
	for _, line := range splitLines(head) {
		open := strings.IndexByte(line, '{')
		if open < 0 || !strings.HasSuffix(line, "}") {
			return nil, nil, fmt.Errorf("%w: day 19: %q", ErrBadInput, line)
		}
		name := line[:open]
		var rules []workflowRule
		for _, raw := range strings.Split(line[open+1:len(line)-1], ",") {
			if m := workflowRuleRe.FindStringSubmatch(raw); m != nil {
				v, _ := strconv.Atoi(m[3])
				rules = append(rules, workflowRule{attr: m[1][0], comp: m[2][0], value: v, result: m[4]})
			} else {
				rules = append(rules, workflowRule{result: raw})
			}
		}
		workflows[name] = rules
	}

	var parts []machinePart
	for _, line := range splitLines(tail) {
		part := make(machinePart)
		for _, m := range partRatingRe.FindAllStringSubmatch(line, -1) {
			v, _ := strconv.Atoi(m[2])
			part[m[1][0]] = v
		}
		if len(part) != 4 {
			return nil, nil, fmt.Errorf("%w: day 19: %q", ErrBadInput, line)
		}
		parts = append(parts, part)
	}

	return workflows, parts, nil
}

// accepted runs the part through the workflows from "in" until A or R.
func accepted(workflows map[string][]workflowRule, p machinePart) (bool, error) {
	current := "in"
	for current != "A" && current != "R" {
		rules, ok := workflows[current]
		if !ok {
			return false, fmt.Errorf("%w: day 19: unknown workflow %q", ErrBadInput, current)
		}
		matched := false
		for _, r := range rules {
			if result, ok := r.apply(p); ok {
				current = result
				matched = true
				break
			}
		}
		if !matched {
			return false, fmt.Errorf("%w: day 19: workflow %q fell through", ErrBadInput, current)
		}
	}

	return current == "A", nil
}

// ratingRange is a half-open interval of rating values.
type ratingRange struct{ start, stop int }

func (r ratingRange) empty() bool { return r.start >= r.stop }
func (r ratingRange) size() int   { return r.stop - r.start }

type ratingSpace map[byte]ratingRange

func (s ratingSpace) clone() ratingSpace {
	out := make(ratingSpace, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// countAccepted sums the rating combinations from the space that reach A,
// splitting the space at every threshold.
func countAccepted(workflows map[string][]workflowRule, id string, space ratingSpace) int {
	if id == "R" {
		return 0
	}
	for _, r := range space {
		if r.empty() {
			return 0
		}
	}
	if id == "A" {
		product := 1
		for _, r := range space {
			product *= r.size()
		}
		return product
	}

	total := 0
	for _, rule := range workflows[id] {
		if rule.comp == 0 {
			total += countAccepted(workflows, rule.result, space)
			break
		}
		matched := space.clone()
		attr := space[rule.attr]
		if rule.comp == '<' {
			matched[rule.attr] = ratingRange{attr.start, min(attr.stop, rule.value)}
			space[rule.attr] = ratingRange{max(attr.start, rule.value), attr.stop}
		} else {
			matched[rule.attr] = ratingRange{max(attr.start, rule.value+1), attr.stop}
			space[rule.attr] = ratingRange{attr.start, min(attr.stop, rule.value+1)}
		}
		if !matched[rule.attr].empty() {
			total += countAccepted(workflows, rule.result, matched)
		}
		if space[rule.attr].empty() {
			break
		}
	}

	return total
}

// Day19Part1 sums the ratings of all accepted parts.
func Day19Part1(data string) (int, error) {
	workflows, parts, err := parseWorkflows(data)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range parts {
		ok, err := accepted(workflows, p)
		if err != nil {
			return 0, err
		}
		if ok {
			total += p.score()
		}
	}

	return total, nil
}

// Day19Part2 counts the distinct rating combinations from 1 to 4000 that the
// workflows accept.
func Day19Part2(data string) (int, error) {
	workflows, _, err := parseWorkflows(data)
	if err != nil {
		return 0, err
	}
	space := ratingSpace{
		'x': {1, 4001},
		'm': {1, 4001},
		'a': {1, 4001},
		's': {1, 4001},
	}

	return countAccepted(workflows, "in", space), nil
}

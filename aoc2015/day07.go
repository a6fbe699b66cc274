package aoc2015

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 7: Some Assembly Required. A circuit of 16-bit wires fed by constants
// and bitwise gates, evaluated lazily with memoisation.

// circuitBoard maps each wire to the instruction feeding it and caches
// resolved signals.
type circuitBoard struct {
	sources map[string][]string
	signals map[string]uint16
}

// parseCircuit builds a board from lines of the form "x AND y -> z".
func parseCircuit(data string) (*circuitBoard, error) {
	board := &circuitBoard{
		sources: make(map[string][]string),
		signals: make(map[string]uint16),
	}
	for _, line := range splitLines(data) {
		parts := strings.Split(line, "->")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: day 7: %q", ErrBadInput, line)
		}
		target := strings.TrimSpace(parts[1])
		board.sources[target] = strings.Fields(parts[0])
	}

	return board, nil
}

// signal resolves the value carried on a wire, evaluating its gate inputs
// recursively. Literal operands resolve to themselves.
func (b *circuitBoard) signal(wire string) (uint16, error) {
	if v, err := strconv.ParseUint(wire, 10, 16); err == nil {
		return uint16(v), nil
	}
	if v, ok := b.signals[wire]; ok {
		return v, nil
	}
	src, ok := b.sources[wire]
	if !ok {
		return 0, fmt.Errorf("%w: day 7: no source for wire %q", ErrBadInput, wire)
	}

	var value uint16
	switch len(src) {
	case 1:
		v, err := b.signal(src[0])
		if err != nil {
			return 0, err
		}
		value = v
	case 2:
		if src[0] != "NOT" {
			return 0, fmt.Errorf("%w: day 7: bad gate %q", ErrBadInput, strings.Join(src, " "))
		}
		v, err := b.signal(src[1])
		if err != nil {
			return 0, err
		}
		value = ^v
	case 3:
		left, err := b.signal(src[0])
		if err != nil {
			return 0, err
		}
		right, err := b.signal(src[2])
		if err != nil {
			return 0, err
		}
		switch src[1] {
		case "AND":
			value = left & right
		case "OR":
			value = left | right
		case "LSHIFT":
			value = left << right
		case "RSHIFT":
			value = left >> right
		default:
			return 0, fmt.Errorf("%w: day 7: bad gate %q", ErrBadInput, src[1])
		}
	default:
		return 0, fmt.Errorf("%w: day 7: bad gate %q", ErrBadInput, strings.Join(src, " "))
	}

	b.signals[wire] = value
	return value, nil
}

// Day07Part1 returns the signal ultimately provided to wire a.
func Day07Part1(data string) (int, error) {
	board, err := parseCircuit(data)
	if err != nil {
		return 0, err
	}
	a, err := board.signal("a")
	if err != nil {
		return 0, err
	}

	return int(a), nil
}

// Day07Part2 overrides wire b with part 1's answer, resets the circuit and
// re-evaluates wire a.
func Day07Part2(data string) (int, error) {
	first, err := Day07Part1(data)
	if err != nil {
		return 0, err
	}
	board, err := parseCircuit(data)
	if err != nil {
		return 0, err
	}
	board.sources["b"] = []string{strconv.Itoa(first)}
	a, err := board.signal("a")
	if err != nil {
		return 0, err
	}

	return int(a), nil
}

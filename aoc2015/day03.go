package aoc2015

import (
	"fmt"
	"strings"
)

// Day 3: Perfectly Spherical Houses in a Vacuum. Santa (and later a robot)
// delivers presents on an infinite grid, one house per move instruction.

type house struct{ x, y int }

// step moves a house position by one arrow instruction.
func (h house) step(r rune) (house, error) {
	switch r {
	case '^':
		h.y++
	case 'v':
		h.y--
	case '>':
		h.x++
	case '<':
		h.x--
	default:
		return h, fmt.Errorf("%w: day 3: unexpected %q", ErrBadInput, r)
	}

	return h, nil
}

// Day03Part1 returns the number of houses that receive at least one present.
func Day03Part1(data string) (int, error) {
	pos := house{}
	visited := map[house]bool{pos: true}
	for _, r := range strings.TrimSpace(data) {
		next, err := pos.step(r)
		if err != nil {
			return 0, err
		}
		pos = next
		visited[pos] = true
	}

	return len(visited), nil
}

// Day03Part2 returns the number of visited houses when Santa and Robo-Santa
// alternate instructions, both starting at the origin.
func Day03Part2(data string) (int, error) {
	santas := [2]house{}
	visited := map[house]bool{{}: true}
	for i, r := range strings.TrimSpace(data) {
		who := i % 2
		next, err := santas[who].step(r)
		if err != nil {
			return 0, err
		}
		santas[who] = next
		visited[next] = true
	}

	return len(visited), nil
}

package aoc2015

import (
	"strconv"
	"strings"
)

// Day 10: Elves Look, Elves Say. Repeatedly apply look-and-say expansion and
// report the resulting sequence length.

// elfSay produces the look-and-say reading of a digit sequence.
func elfSay(seq string) string {
	var b strings.Builder
	b.Grow(len(seq) * 2)
	for i := 0; i < len(seq); {
		j := i
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		b.WriteString(strconv.Itoa(j - i))
		b.WriteByte(seq[i])
		i = j
	}

	return b.String()
}

func elfSayRounds(seq string, rounds int) string {
	for i := 0; i < rounds; i++ {
		seq = elfSay(seq)
	}

	return seq
}

// Day10Part1 returns the sequence length after 40 rounds.
func Day10Part1(data string) (int, error) {
	return len(elfSayRounds(strings.TrimSpace(data), 40)), nil
}

// Day10Part2 returns the sequence length after 50 rounds.
func Day10Part2(data string) (int, error) {
	return len(elfSayRounds(strings.TrimSpace(data), 50)), nil
}

// Command aoc runs one Advent of Code puzzle day against its input and
// prints the answers.
//
// Usage:
//
//	aoc [-input file] [-part n] <year> <day>
//
// The input is read from the file named by -input, or from stdin when the
// flag is absent. By default both parts run; -part restricts the run to a
// single part.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aockit/aoc/aoc2015"
	"github.com/aockit/aoc/aoc2023"
)

// part is the common solver signature shared by every puzzle year.
type part func(data string) (string, error)

// lookup resolves a year and day to its two solvers.
func lookup(year, day int) (part, part, bool) {
	switch year {
	case 2015:
		if d, ok := aoc2015.Lookup(day); ok {
			return part(d.Part1), part(d.Part2), true
		}
	case 2023:
		if d, ok := aoc2023.Lookup(day); ok {
			return part(d.Part1), part(d.Part2), true
		}
	}

	return nil, nil, false
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	inputPath := fs.String("input", "", "puzzle input file (default stdin)")
	only := fs.Int("part", 0, "run a single part (1 or 2)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: aoc [-input file] [-part n] <year> <day>")
	}
	year, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid year %q", fs.Arg(0))
	}
	day, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid day %q", fs.Arg(1))
	}
	if *only < 0 || *only > 2 {
		return fmt.Errorf("invalid part %d", *only)
	}

	part1, part2, ok := lookup(year, day)
	if !ok {
		return fmt.Errorf("no solution for year %d day %d", year, day)
	}

	var data []byte
	if *inputPath != "" {
		data, err = os.ReadFile(*inputPath)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	return solve(w, string(data), *only, part1, part2)
}

// solve runs the requested parts in order and prints each answer.
func solve(w io.Writer, data string, only int, part1, part2 part) error {
	parts := []part{part1, part2}
	for i, p := range parts {
		n := i + 1
		if only != 0 && only != n {
			continue
		}
		answer, err := p(data)
		if err != nil {
			return fmt.Errorf("part %d: %w", n, err)
		}
		fmt.Fprintf(w, "Part %d: %s\n", n, answer)
	}

	return nil
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

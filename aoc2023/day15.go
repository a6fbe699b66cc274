package aoc2023

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 15: Lens Library. The HASH algorithm maps labels to 256 boxes; run the
// initialization sequence and sum the focusing power.

// holidayHash multiplies a running total by 17 per character, modulo 256.
func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}

type lens struct {
	label string
	focal int
}

// initializationSequence applies each step to the boxes. "label=n" inserts
// or replaces the lens, "label-" removes it.
func initializationSequence(steps []string) ([256][]lens, error) {
	var boxes [256][]lens
	for _, step := range steps {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			box := holidayHash(label)
			for i, l := range boxes[box] {
				if l.label == label {
					boxes[box] = append(boxes[box][:i], boxes[box][i+1:]...)
					break
				}
			}
			continue
		}
		label, rawFocal, ok := strings.Cut(step, "=")
		if !ok {
			return boxes, fmt.Errorf("%w: day 15: step %q", ErrBadInput, step)
		}
		focal, err := strconv.Atoi(rawFocal)
		if err != nil {
			return boxes, fmt.Errorf("%w: day 15: step %q", ErrBadInput, step)
		}
		box := holidayHash(label)
		replaced := false
		for i, l := range boxes[box] {
			if l.label == label {
				boxes[box][i].focal = focal
				replaced = true
				break
			}
		}
		if !replaced {
			boxes[box] = append(boxes[box], lens{label: label, focal: focal})
		}
	}

	return boxes, nil
}

// Day15Part1 sums the hash of each comma-separated step.
func Day15Part1(data string) (int, error) {
	total := 0
	for _, step := range strings.Split(strings.TrimSpace(data), ",") {
		total += holidayHash(step)
	}

	return total, nil
}

// Day15Part2 sums focusing power: box number + 1, times slot, times focal
// length.
func Day15Part2(data string) (int, error) {
	boxes, err := initializationSequence(strings.Split(strings.TrimSpace(data), ","))
	if err != nil {
		return 0, err
	}
	total := 0
	for box, lenses := range boxes {
		for slot, l := range lenses {
			total += (box + 1) * (slot + 1) * l.focal
		}
	}

	return total, nil
}

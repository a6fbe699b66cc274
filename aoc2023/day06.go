package aoc2023

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 6: Wait For It. Count the button-hold times that beat the record in
// each toy boat race.

// raceOutcomes counts hold times producing a distance beyond the record.
// Holding for h milliseconds of a t millisecond race travels h*(t-h).
func raceOutcomes(time, record int) int {
	wins := 0
	for h := 1; h < time; h++ {
		if h*(time-h) > record {
			wins++
		}
	}

	return wins
}

func parseRaceLine(line, label string) ([]int, error) {
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return nil, fmt.Errorf("%w: day 6: %q", ErrBadInput, line)
	}
	var values []int
	for _, f := range strings.Fields(rest) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: day 6: %q", ErrBadInput, line)
		}
		values = append(values, n)
	}

	return values, nil
}

func parseRaces(data string) ([]int, []int, error) {
	lines := splitLines(data)
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("%w: day 6: want two lines", ErrBadInput)
	}
	times, err := parseRaceLine(lines[0], "Time:")
	if err != nil {
		return nil, nil, err
	}
	records, err := parseRaceLine(lines[1], "Distance:")
	if err != nil {
		return nil, nil, err
	}
	if len(times) != len(records) {
		return nil, nil, fmt.Errorf("%w: day 6: mismatched columns", ErrBadInput)
	}

	return times, records, nil
}

// Day06Part1 multiplies the winning hold counts of each listed race.
func Day06Part1(data string) (int, error) {
	times, records, err := parseRaces(data)
	if err != nil {
		return 0, err
	}
	product := 1
	for i := range times {
		product *= raceOutcomes(times[i], records[i])
	}

	return product, nil
}

// Day06Part2 joins the columns into one long race with bad kerning.
func Day06Part2(data string) (int, error) {
	times, records, err := parseRaces(data)
	if err != nil {
		return 0, err
	}
	var timeStr, recordStr strings.Builder
	for i := range times {
		timeStr.WriteString(strconv.Itoa(times[i]))
		recordStr.WriteString(strconv.Itoa(records[i]))
	}
	time, err := strconv.Atoi(timeStr.String())
	if err != nil {
		return 0, fmt.Errorf("%w: day 6: %v", ErrBadInput, err)
	}
	record, err := strconv.Atoi(recordStr.String())
	if err != nil {
		return 0, fmt.Errorf("%w: day 6: %v", ErrBadInput, err)
	}

	return raceOutcomes(time, record), nil
}

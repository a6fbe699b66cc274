package aoc2015

import (
	"fmt"
	"regexp"
	"strconv"
)

// Day 14: Reindeer Olympics. Reindeer alternate between flying at top speed
// and resting; score the race by distance and by seconds in the lead.

const raceDuration = 2503

type reindeer struct {
	name     string
	speed    int
	duration int
	rest     int
}

func (r reindeer) cycleTime() int { return r.duration + r.rest }

// distanceAfter returns how far the reindeer has flown after t whole seconds.
func (r reindeer) distanceAfter(t int) int {
	fullCycles := t / r.cycleTime()
	dist := fullCycles * r.duration * r.speed
	remaining := t % r.cycleTime()
	if remaining > r.duration {
		remaining = r.duration
	}

	return dist + remaining*r.speed
}

var reindeerRe = regexp.MustCompile(
	`(\w+) can fly (\d+) km/s for (\d+) seconds, but then must rest for (\d+) seconds\.`)

func parseReindeer(line string) (reindeer, error) {
	m := reindeerRe.FindStringSubmatch(line)
	if m == nil {
		return reindeer{}, fmt.Errorf("%w: day 14: %q", ErrBadInput, line)
	}
	speed, _ := strconv.Atoi(m[2])
	duration, _ := strconv.Atoi(m[3])
	rest, _ := strconv.Atoi(m[4])

	return reindeer{name: m[1], speed: speed, duration: duration, rest: rest}, nil
}

func parseHerd(data string) ([]reindeer, error) {
	var herd []reindeer
	for _, line := range splitLines(data) {
		r, err := parseReindeer(line)
		if err != nil {
			return nil, err
		}
		herd = append(herd, r)
	}

	return herd, nil
}

// raceScores awards one point per second to every reindeer in the lead and
// returns the final scores by name.
func raceScores(herd []reindeer, duration int) map[string]int {
	positions := make(map[string]int, len(herd))
	scores := make(map[string]int, len(herd))
	for t := 0; t < duration; t++ {
		lead := 0
		for _, r := range herd {
			if t%r.cycleTime() < r.duration {
				positions[r.name] += r.speed
			}
			if positions[r.name] > lead {
				lead = positions[r.name]
			}
		}
		for _, r := range herd {
			if positions[r.name] == lead {
				scores[r.name]++
			}
		}
	}

	return scores
}

func day14Part1(data string, duration int) (int, error) {
	herd, err := parseHerd(data)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, r := range herd {
		if d := r.distanceAfter(duration); d > best {
			best = d
		}
	}

	return best, nil
}

func day14Part2(data string, duration int) (int, error) {
	herd, err := parseHerd(data)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, score := range raceScores(herd, duration) {
		if score > best {
			best = score
		}
	}

	return best, nil
}

// Day14Part1 returns the distance of the furthest reindeer after 2503 seconds.
func Day14Part1(data string) (int, error) {
	return day14Part1(data, raceDuration)
}

// Day14Part2 returns the winning score under lead-based scoring after 2503
// seconds.
func Day14Part2(data string) (int, error) {
	return day14Part2(data, raceDuration)
}

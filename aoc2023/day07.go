package aoc2023

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Day 7: Camel Cards. Rank five-card hands by type then card order and sum
// bid times rank, with jokers as wildcards in part two.

type camelHand struct {
	cards string
	bid   int
}

// handType classifies a hand: 6 five of a kind down to 0 high card. With
// jokers enabled, J cards join the largest group.
func handType(cards string, jokers bool) int {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return 6
	case groups[0] == 4:
		return 5
	case groups[0] == 3 && groups[1] == 2:
		return 4
	case groups[0] == 3:
		return 3
	case groups[0] == 2 && groups[1] == 2:
		return 2
	case groups[0] == 2:
		return 1
	default:
		return 0
	}
}

func cardStrength(c byte, jokers bool) int {
	order := "23456789TJQKA"
	if jokers {
		order = "J23456789TQKA"
	}

	return strings.IndexByte(order, c)
}

// lessHand orders hands weakest first by type, then card by card.
func lessHand(a, b camelHand, jokers bool) bool {
	ta, tb := handType(a.cards, jokers), handType(b.cards, jokers)
	if ta != tb {
		return ta < tb
	}
	for i := 0; i < len(a.cards) && i < len(b.cards); i++ {
		sa, sb := cardStrength(a.cards[i], jokers), cardStrength(b.cards[i], jokers)
		if sa != sb {
			return sa < sb
		}
	}

	return false
}

func parseHands(data string) ([]camelHand, error) {
	var hands []camelHand
	for _, line := range splitLines(data) {
		cards, rawBid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("%w: day 7: %q", ErrBadInput, line)
		}
		bid, err := strconv.Atoi(strings.TrimSpace(rawBid))
		if err != nil {
			return nil, fmt.Errorf("%w: day 7: %q", ErrBadInput, line)
		}
		hands = append(hands, camelHand{cards: cards, bid: bid})
	}

	return hands, nil
}

func totalWinnings(data string, jokers bool) (int, error) {
	hands, err := parseHands(data)
	if err != nil {
		return 0, err
	}
	sort.Slice(hands, func(i, j int) bool {
		return lessHand(hands[i], hands[j], jokers)
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}

	return total, nil
}

// Day07Part1 sums bid times rank under standard ordering.
func Day07Part1(data string) (int, error) {
	return totalWinnings(data, false)
}

// Day07Part2 sums bid times rank with J as the weakest, wildcard card.
func Day07Part2(data string) (int, error) {
	return totalWinnings(data, true)
}

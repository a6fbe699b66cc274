package aoc2015

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Day 15: Science for Hungry People. Split 100 teaspoons across the
// ingredients to maximise the cookie score, optionally at exactly 500
// calories.

const (
	teaspoonTotal = 100
	calorieTarget = 500
)

type ingredient struct {
	name       string
	capacity   int
	durability int
	flavor     int
	texture    int
	calories   int
}

var ingredientPropRe = regexp.MustCompile(
	`(capacity|durability|flavor|texture|calories) (-?\d+)`)

func parseIngredient(line string) (ingredient, error) {
	name, props, ok := strings.Cut(line, ":")
	if !ok {
		return ingredient{}, fmt.Errorf("%w: day 15: %q", ErrBadInput, line)
	}
	ing := ingredient{name: name}
	for _, m := range ingredientPropRe.FindAllStringSubmatch(props, -1) {
		v, _ := strconv.Atoi(m[2])
		switch m[1] {
		case "capacity":
			ing.capacity = v
		case "durability":
			ing.durability = v
		case "flavor":
			ing.flavor = v
		case "texture":
			ing.texture = v
		case "calories":
			ing.calories = v
		}
	}

	return ing, nil
}

// cookieScore multiplies the clamped property totals of a weighted recipe,
// ignoring calories.
func cookieScore(ingredients []ingredient, weights []int) int {
	var capacity, durability, flavor, texture int
	for i, ing := range ingredients {
		capacity += ing.capacity * weights[i]
		durability += ing.durability * weights[i]
		flavor += ing.flavor * weights[i]
		texture += ing.texture * weights[i]
	}
	score := 1
	for _, total := range []int{capacity, durability, flavor, texture} {
		if total < 0 {
			total = 0
		}
		score *= total
	}

	return score
}

func cookieCalories(ingredients []ingredient, weights []int) int {
	total := 0
	for i, ing := range ingredients {
		total += ing.calories * weights[i]
	}

	return total
}

// forEachPartition calls fn with every way of splitting total across parts
// non-negative integer slots.
func forEachPartition(total, parts int, fn func([]int)) {
	weights := make([]int, parts)
	var fill func(slot, remaining int)
	fill = func(slot, remaining int) {
		if slot == parts-1 {
			weights[slot] = remaining
			fn(weights)
			return
		}
		for w := 0; w <= remaining; w++ {
			weights[slot] = w
			fill(slot+1, remaining-w)
		}
	}
	fill(0, total)
}

func bestCookie(data string, calorieLimit int) (int, error) {
	var ingredients []ingredient
	for _, line := range splitLines(data) {
		ing, err := parseIngredient(line)
		if err != nil {
			return 0, err
		}
		ingredients = append(ingredients, ing)
	}
	best := 0
	forEachPartition(teaspoonTotal, len(ingredients), func(weights []int) {
		if calorieLimit > 0 && cookieCalories(ingredients, weights) != calorieLimit {
			return
		}
		if score := cookieScore(ingredients, weights); score > best {
			best = score
		}
	})

	return best, nil
}

// Day15Part1 returns the highest possible cookie score.
func Day15Part1(data string) (int, error) {
	return bestCookie(data, 0)
}

// Day15Part2 returns the highest cookie score at exactly 500 calories.
func Day15Part2(data string) (int, error) {
	return bestCookie(data, calorieTarget)
}

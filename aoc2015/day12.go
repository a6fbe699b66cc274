package aoc2015

import (
	"encoding/json"
	"fmt"
)

// Day 12: JSAbacusFramework.io. Sum every number in a JSON document, then
// again while ignoring objects carrying a "red" value.

// sumNumbers walks a decoded JSON document and sums its numbers. When filter
// is non-empty, any object with a matching string value contributes nothing.
func sumNumbers(doc interface{}, filter string) int {
	switch v := doc.(type) {
	case float64:
		return int(v)
	case []interface{}:
		total := 0
		for _, item := range v {
			total += sumNumbers(item, filter)
		}
		return total
	case map[string]interface{}:
		total := 0
		for _, item := range v {
			if filter != "" {
				if s, ok := item.(string); ok && s == filter {
					return 0
				}
			}
			total += sumNumbers(item, filter)
		}
		return total
	default:
		return 0
	}
}

func decodeDocument(data string) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: day 12: %v", ErrBadInput, err)
	}

	return doc, nil
}

// Day12Part1 sums all numbers in the document.
func Day12Part1(data string) (int, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return 0, err
	}

	return sumNumbers(doc, ""), nil
}

// Day12Part2 sums all numbers outside objects that contain a "red" value.
func Day12Part2(data string) (int, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return 0, err
	}

	return sumNumbers(doc, "red"), nil
}

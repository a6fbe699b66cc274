package aoc2015

import "fmt"

// Day 8: Matchsticks. Compare code representation lengths of string literals
// with their in-memory lengths, then with a re-encoded form.

// literalLengths returns the code length of a quoted literal and the length
// of the string it decodes to.
func literalLengths(code string) (int, int, error) {
	if len(code) < 2 || code[0] != '"' || code[len(code)-1] != '"' {
		return 0, 0, fmt.Errorf("%w: day 8: %q", ErrBadInput, code)
	}
	decoded := 0
	for i := 1; i < len(code)-1; i++ {
		if code[i] == '\\' {
			if i+1 >= len(code)-1 {
				return 0, 0, fmt.Errorf("%w: day 8: %q", ErrBadInput, code)
			}
			switch code[i+1] {
			case '\\', '"':
				i++
			case 'x':
				i += 3
			default:
				return 0, 0, fmt.Errorf("%w: day 8: %q", ErrBadInput, code)
			}
		}
		decoded++
	}

	return len(code), decoded, nil
}

// encodedLengths returns the code length of a literal and the length of the
// literal re-encoded with quotes and backslashes escaped.
func encodedLengths(code string) (int, int) {
	encoded := 2
	for i := 0; i < len(code); i++ {
		if code[i] == '"' || code[i] == '\\' {
			encoded++
		}
		encoded++
	}

	return len(code), encoded
}

// Day08Part1 sums code lengths minus decoded lengths across all literals.
func Day08Part1(data string) (int, error) {
	total := 0
	for _, line := range splitLines(data) {
		codeLen, strLen, err := literalLengths(line)
		if err != nil {
			return 0, err
		}
		total += codeLen - strLen
	}

	return total, nil
}

// Day08Part2 sums re-encoded lengths minus code lengths across all literals.
func Day08Part2(data string) (int, error) {
	total := 0
	for _, line := range splitLines(data) {
		codeLen, encLen := encodedLengths(line)
		total += encLen - codeLen
	}

	return total, nil
}

package aoc2023

// Day 3: Gear Ratios. Numbers adjacent to a symbol in the engine schematic
// are part numbers; a star adjacent to exactly two of them is a gear.

// schematicNumber is a number found in the schematic with its row and column
// extent.
type schematicNumber struct {
	value      int
	row        int
	start, end int
}

// scanSchematic extracts every number and the positions of symbols. Periods
// and digits are not symbols.
func scanSchematic(lines []string) ([]schematicNumber, map[[2]int]byte) {
	var numbers []schematicNumber
	symbols := make(map[[2]int]byte)
	for row, line := range lines {
		col := 0
		for col < len(line) {
			c := line[col]
			switch {
			case c >= '0' && c <= '9':
				start := col
				value := 0
				for col < len(line) && line[col] >= '0' && line[col] <= '9' {
					value = value*10 + int(line[col]-'0')
					col++
				}
				numbers = append(numbers, schematicNumber{value: value, row: row, start: start, end: col - 1})
			case c != '.':
				symbols[[2]int{row, col}] = c
				col++
			default:
				col++
			}
		}
	}

	return numbers, symbols
}

// adjacent reports whether the number touches the given cell, diagonals
// included.
func (n schematicNumber) adjacent(row, col int) bool {
	return row >= n.row-1 && row <= n.row+1 && col >= n.start-1 && col <= n.end+1
}

// Day03Part1 sums every number adjacent to a symbol.
func Day03Part1(data string) (int, error) {
	numbers, symbols := scanSchematic(splitLines(data))
	total := 0
	for _, n := range numbers {
		for pos := range symbols {
			if n.adjacent(pos[0], pos[1]) {
				total += n.value
				break
			}
		}
	}

	return total, nil
}

// Day03Part2 sums the gear ratios of stars adjacent to exactly two numbers.
func Day03Part2(data string) (int, error) {
	numbers, symbols := scanSchematic(splitLines(data))
	total := 0
	for pos, sym := range symbols {
		if sym != '*' {
			continue
		}
		ratio := 1
		count := 0
		for _, n := range numbers {
			if n.adjacent(pos[0], pos[1]) {
				ratio *= n.value
				count++
			}
		}
		if count == 2 {
			total += ratio
		}
	}

	return total, nil
}

package aoc2015

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
)

// Day 4: The Ideal Stocking Stuffer. Mine AdventCoins by finding the lowest
// positive number whose MD5 of secret+number starts with enough zero hex digits.

// mineAdventCoin returns the smallest positive suffix whose MD5 digest of
// secret+suffix begins with prefix.
func mineAdventCoin(secret, prefix string) int {
	for n := 1; ; n++ {
		sum := md5.Sum([]byte(secret + strconv.Itoa(n)))
		if strings.HasPrefix(fmt.Sprintf("%x", sum), prefix) {
			return n
		}
	}
}

// Day04Part1 finds the lowest number producing a hash with five leading zeros.
func Day04Part1(data string) (int, error) {
	return mineAdventCoin(strings.TrimSpace(data), "00000"), nil
}

// Day04Part2 finds the lowest number producing a hash with six leading zeros.
func Day04Part2(data string) (int, error) {
	return mineAdventCoin(strings.TrimSpace(data), "000000"), nil
}

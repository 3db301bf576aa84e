package days

import (
	"regexp"

	"github.com/maisem/aoc24"
)

type day03 struct{}

var instrRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

func (day03) Parse(input string) (string, error) {
	return input, nil
}

// mulSum adds up the products of the mul instructions in memory. With
// conditionals, don't() disables later muls until the next do().
func mulSum(memory string, conditionals bool) int {
	sum := 0
	enabled := true
	for _, m := range instrRx.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if conditionals && !enabled {
				continue
			}
			sum += aoc.MustGet(aoc.Int(m[1])) * aoc.MustGet(aoc.Int(m[2]))
		}
	}
	return sum
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (day03) Part1(memory string) (any, error) {
	return mulSum(memory, false), nil
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (day03) Part2(memory string) (any, error) {
	return mulSum(memory, true), nil
}

package days

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc24"
)

type day05 struct{}

type printQueue struct {
	rules   aoc.Digraph[int] // before -> after
	updates [][]int
}

func (day05) Parse(input string) (*printQueue, error) {
	rules, updates, ok := strings.Cut(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: missing blank line between rules and updates", aoc.ErrInvalidInput)
	}
	pq := &printQueue{}
	for _, line := range aoc.Lines(rules) {
		pages, err := aoc.Fields(line, "|")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", line, err)
		}
		if len(pages) != 2 {
			return nil, fmt.Errorf("%w: rule %q", aoc.ErrInvalidInput, line)
		}
		pq.rules.AddEdge(pages[0], pages[1])
	}
	for _, line := range aoc.Lines(updates) {
		pages, err := aoc.Fields(line, ",")
		if err != nil {
			return nil, fmt.Errorf("update %q: %w", line, err)
		}
		pq.updates = append(pq.updates, pages)
	}
	return pq, nil
}

func middle(pages []int) int {
	return pages[len(pages)/2]
}

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (day05) Part1(pq *printQueue) (any, error) {
	sum := 0
	for _, u := range pq.updates {
		if pq.rules.Ordered(u) {
			sum += middle(u)
		}
	}
	return sum, nil
}

// Part2 reorders the incorrectly-ordered updates.
// want=123
func (day05) Part2(pq *printQueue) (any, error) {
	sum := 0
	for _, u := range pq.updates {
		if pq.rules.Ordered(u) {
			continue
		}
		u = slices.Clone(u)
		pq.rules.SortFunc(u)
		sum += middle(u)
	}
	return sum, nil
}

package aoc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigraph(t *testing.T) {
	var g Digraph[int]
	for _, e := range [][2]int{{47, 53}, {97, 13}, {97, 61}, {97, 47}, {75, 29}, {61, 13}, {75, 53}, {29, 13}, {97, 29}, {53, 29}, {61, 53}, {97, 53}, {61, 29}, {47, 13}, {75, 47}, {97, 75}, {47, 61}, {75, 61}, {47, 29}, {75, 13}, {53, 13}} {
		g.AddEdge(e[0], e[1])
	}
	assert.True(t, g.HasEdge(47, 53))
	assert.False(t, g.HasEdge(53, 47))
	assert.Len(t, g.Nodes, 7)

	succ := g.Successors(61)
	slices.Sort(succ)
	assert.Equal(t, []int{13, 29, 53}, succ)
	assert.Empty(t, g.Successors(13))

	tests := []struct {
		seq  []int
		want []int
	}{
		{[]int{75, 47, 61, 53, 29}, []int{75, 47, 61, 53, 29}},
		{[]int{75, 97, 47, 61, 53}, []int{97, 75, 47, 61, 53}},
		{[]int{61, 13, 29}, []int{61, 29, 13}},
		{[]int{97, 13, 75, 29, 47}, []int{97, 75, 47, 29, 13}},
	}
	for _, tt := range tests {
		ordered := slices.Equal(tt.seq, tt.want)
		if got := g.Ordered(tt.seq); got != ordered {
			t.Errorf("Ordered(%v) = %v, want %v", tt.seq, got, ordered)
		}
		seq := slices.Clone(tt.seq)
		g.SortFunc(seq)
		if !slices.Equal(seq, tt.want) {
			t.Errorf("SortFunc(%v) = %v, want %v", tt.seq, seq, tt.want)
		}
		if !g.Ordered(seq) {
			t.Errorf("Ordered(%v) = false after sorting", seq)
		}
	}
}

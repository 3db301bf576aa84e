package aoc

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Digraph is a directed graph with unit edges.
type Digraph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]bool
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Digraph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds the edge a -> b.
func (g *Digraph[K]) AddEdge(a, b K) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]bool)
	}
	g.Edges[a][b] = true
	g.AddNode(a)
	g.AddNode(b)
}

func (g *Digraph[K]) HasEdge(a, b K) bool {
	return g.Edges[a][b]
}

// Successors returns the targets of edges leaving a, in no particular order.
func (g *Digraph[K]) Successors(a K) []K {
	return maps.Keys(g.Edges[a])
}

// Ordered reports whether every pair in seq respects the edges of g, that
// is no later element has an edge to an earlier one.
func (g *Digraph[K]) Ordered(seq []K) bool {
	for i, a := range seq {
		for _, b := range seq[i+1:] {
			if g.HasEdge(b, a) {
				return false
			}
		}
	}
	return true
}

// SortFunc sorts seq so that a precedes b whenever a -> b is an edge.
// It is only a total order when g's edges cover every pair in seq.
func (g *Digraph[K]) SortFunc(seq []K) {
	slices.SortFunc(seq, func(a, b K) int {
		switch {
		case g.HasEdge(a, b):
			return -1
		case g.HasEdge(b, a):
			return 1
		}
		return 0
	})
}

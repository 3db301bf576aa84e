package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustGet(t *testing.T) {
	g := MustGet(RuneGrid("ab\n"))
	assert.Equal(t, Pt{2, 1}, g.Size())
	assert.Equal(t, 42, MustGet(Int("42")))
	assert.Panics(t, func() { MustGet(RuneGrid("ab\nc\n")) })
}

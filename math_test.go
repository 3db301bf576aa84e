package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumDigits(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{2024, 4},
		{1<<64 - 1, 20},
	}
	for _, tt := range tests {
		if got := NumDigits(tt.n); got != tt.want {
			t.Errorf("NumDigits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
	assert.Equal(t, uint64(1000), Pow10(3))
	assert.Equal(t, uint64(1), Pow10(0))
}

func TestFields(t *testing.T) {
	got, err := Fields(" 7 6  4 ", "")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 4}, got)

	got, err = Fields("75,47,61\n", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, got)

	_, err = Fields("1,x", ",")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDigits(t *testing.T) {
	got, err := Digits("2333")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3, 3}, got)
	_, err = Digits("23a")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestArith(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 2.5, AbsDiff(1.0, 3.5))
	assert.Equal(t, -1, Sign(-4))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(0.5))
}

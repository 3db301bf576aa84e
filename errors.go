package aoc

import "errors"

var (
	// ErrInvalidInput reports malformed puzzle input. It is fatal for the
	// day being run.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound reports a search that never reached its goal.
	ErrNotFound = errors.New("not found")

	// ErrOverflow reports a value that no longer fits its integer type.
	ErrOverflow = errors.New("integer overflow")
)

// MustGet returns v as is. It panics if err is non-nil, for errors that
// the caller has already ruled out.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

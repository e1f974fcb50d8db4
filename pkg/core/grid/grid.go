package grid

import (
	"slices"

	"github.com/ortfo/gui/pkg/errors"
)

// Range returns the integers start, start+1, ..., end-1.
// An end lower than start yields an empty slice.
func Range(start, end int) []int {
	if end <= start {
		return []int{}
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// Repeat returns a slice holding n copies of v. A non-positive n yields an
// empty slice.
func Repeat[T any](n int, v T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// CompleteWith pads s with copies of v until it holds n elements.
// s is returned unchanged (as a copy) when it is already at least n long.
func CompleteWith[T any](n int, v T, s []T) []T {
	out := make([]T, len(s), max(n, len(s)))
	copy(out, s)
	return append(out, Repeat(n-len(s), v)...)
}

// Distance returns max(values) - min(values).
// An empty input has no extrema and is reported as an error.
func Distance(values []int) (int, error) {
	if len(values) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "distance of an empty set of values")
	}
	return slices.Max(values) - slices.Min(values), nil
}

// GCD returns the greatest common divisor of a and b, always non-negative.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least positive integer divisible by every value.
// LCM() is 0 and LCM(x) is x. A zero anywhere in values makes the result 0.
func LCM(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	result := abs(values[0])
	for _, v := range values[1:] {
		v = abs(v)
		if result == 0 || v == 0 {
			return 0
		}
		result = result / GCD(result, v) * v
	}
	return result
}

// Run is a maximal sequence of adjacent equal values.
type Run[T comparable] struct {
	Value  T
	Length int
}

// ConsecutiveRepeats groups row into maximal runs of adjacent equal values.
// Non-adjacent occurrences of the same value produce separate runs:
// [a a b a] yields (a,2) (b,1) (a,1).
func ConsecutiveRepeats[T comparable](row []T) []Run[T] {
	runs := make([]Run[T], 0, len(row))
	for _, v := range row {
		if n := len(runs); n > 0 && runs[n-1].Value == v {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run[T]{Value: v, Length: 1})
	}
	return runs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

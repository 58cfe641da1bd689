// Package vecx provides generic utilities over ordered slices ("vectors"):
// transformation, selection, and positional access with explicit error
// reporting for the strict accessors.
package vecx

import "github.com/stdx-go/stdx/pkg/errx"

// Errors is the error registry for vector operations.
var Errors = errx.NewRegistry("VEC")

var (
	// ErrEmptyCollection is returned by the strict accessors when the
	// collection has no elements.
	ErrEmptyCollection = Errors.Register("EMPTY", errx.TypeNotFound, "collection is empty")

	// ErrNegativeCount is returned when a count argument is negative.
	ErrNegativeCount = Errors.Register("NEGATIVE_COUNT", errx.TypeValidation, "count must be non-negative")
)

// Map applies fn to every element of vs and returns the transformed
// values as a new slice, in the same order.
func Map[T any, R any](vs []T, fn func(T) R) []R {
	out := make([]R, len(vs))
	for i, v := range vs {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of vs for which keep returns true,
// preserving their relative order.
func Filter[T any](vs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Flatten concatenates the given slices into a single slice.
func Flatten[T any](vss [][]T) []T {
	total := 0
	for _, vs := range vss {
		total += len(vs)
	}
	out := make([]T, 0, total)
	for _, vs := range vss {
		out = append(out, vs...)
	}
	return out
}

// Contains reports whether target occurs in vs.
func Contains[T comparable](vs []T, target T) bool {
	for _, v := range vs {
		if v == target {
			return true
		}
	}
	return false
}

// Some reports whether pred returns true for at least one element of vs.
func Some[T any](vs []T, pred func(T) bool) bool {
	for _, v := range vs {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether pred returns true for all elements of vs.
// Every of an empty slice is true.
func Every[T any](vs []T, pred func(T) bool) bool {
	for _, v := range vs {
		if !pred(v) {
			return false
		}
	}
	return true
}

// First returns the first element of vs. The boolean reports whether an
// element existed; an empty slice is not an error.
func First[T any](vs []T) (T, bool) {
	if len(vs) == 0 {
		var zero T
		return zero, false
	}
	return vs[0], true
}

// FirstX returns the first element of vs, or ErrEmptyCollection when vs
// has no elements.
func FirstX[T any](vs []T) (T, error) {
	if len(vs) == 0 {
		var zero T
		return zero, Errors.New(ErrEmptyCollection)
	}
	return vs[0], nil
}

// Take returns the first n elements of vs, or all of vs when it has
// fewer than n elements. n must be non-negative.
func Take[T any](vs []T, n int) ([]T, error) {
	if n < 0 {
		return nil, Errors.New(ErrNegativeCount).WithDetail("count", n)
	}
	if n > len(vs) {
		n = len(vs)
	}
	out := make([]T, n)
	copy(out, vs[:n])
	return out, nil
}

// Drop returns vs without its first n elements, or an empty slice when
// vs has fewer than n elements. n must be non-negative.
func Drop[T any](vs []T, n int) ([]T, error) {
	if n < 0 {
		return nil, Errors.New(ErrNegativeCount).WithDetail("count", n)
	}
	if n > len(vs) {
		n = len(vs)
	}
	out := make([]T, len(vs)-n)
	copy(out, vs[n:])
	return out, nil
}

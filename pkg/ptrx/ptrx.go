// Package ptrx provides pointer helpers for optional-value plumbing:
// taking addresses of values and dereferencing with zero-value or
// default fallbacks.
package ptrx

// To returns a pointer to the value passed in.
func To[T any](v T) *T {
	return &v
}

// ToSlice returns a slice of pointers from the values passed in.
func ToSlice[T any](vs []T) []*T {
	ps := make([]*T, len(vs))
	for i, v := range vs {
		ps[i] = To(v)
	}
	return ps
}

// ToMap returns a map of pointers from the values passed in.
func ToMap[K comparable, V any](vs map[K]V) map[K]*V {
	ps := make(map[K]*V, len(vs))
	for k, v := range vs {
		ps[k] = To(v)
	}
	return ps
}

// Value returns the value of the pointer passed in or the zero value if the pointer is nil.
func Value[T any](v *T) T {
	if v != nil {
		return *v
	}
	var zero T
	return zero
}

// ValueOr returns the value of the pointer passed in or the default value if the pointer is nil.
func ValueOr[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// ValueSlice returns a slice of values from the pointers passed in,
// substituting the zero value for nil pointers.
func ValueSlice[T any](ps []*T) []T {
	vs := make([]T, len(ps))
	for i, p := range ps {
		vs[i] = Value(p)
	}
	return vs
}

// IsNil checks if a pointer is nil.
func IsNil[T any](v *T) bool {
	return v == nil
}

// IsNotNil checks if a pointer is not nil.
func IsNotNil[T any](v *T) bool {
	return v != nil
}

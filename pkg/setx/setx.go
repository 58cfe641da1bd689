// Package setx provides a generic map-backed Set and keyset utilities
// over arbitrary maps, plus interop with github.com/deckarep/golang-set.
package setx

import mapset "github.com/deckarep/golang-set/v2"

// Set is an unordered collection of unique comparable elements.
type Set[T comparable] map[T]struct{}

// New creates a Set containing the given items.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// FromSlice creates a Set from the elements of vs, discarding duplicates.
func FromSlice[T comparable](vs []T) Set[T] {
	return New(vs...)
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Delete removes v from the set, if present.
func (s Set[T]) Delete(v T) {
	delete(s, v)
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Values returns the set's elements as a slice, in unspecified order.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Diff returns the elements of s that are not in other.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	out := make(Set[T])
	for v := range s {
		if !other.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Intersect returns the elements present in both s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(Set[T])
	for v := range small {
		if big.Has(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Union returns the elements present in s, other, or both.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := make(Set[T], len(s)+len(other))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// Keys extracts the keys of m into a slice with pre-allocated capacity.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values extracts the values of m into a slice with pre-allocated capacity.
func Values[K comparable, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// KeyBy builds a map from vs keyed by fn. Later elements overwrite
// earlier ones that map to the same key.
func KeyBy[T any, K comparable](vs []T, fn func(T) K) map[K]T {
	m := make(map[K]T, len(vs))
	for _, v := range vs {
		m[fn(v)] = v
	}
	return m
}

// KeySet returns the keys of m as a Set.
func KeySet[K comparable, V any](m map[K]V) Set[K] {
	s := make(Set[K], len(m))
	for k := range m {
		s[k] = struct{}{}
	}
	return s
}

// ToMapSet converts s into a thread-safe mapset.Set for callers already
// built on the golang-set library.
func ToMapSet[T comparable](s Set[T]) mapset.Set[T] {
	return mapset.NewSet(s.Values()...)
}

// FromMapSet converts a mapset.Set into a Set.
func FromMapSet[T comparable](ms mapset.Set[T]) Set[T] {
	return New(ms.ToSlice()...)
}

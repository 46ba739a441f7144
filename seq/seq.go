// Package seq provides small generic collection helpers.
//
// Helpers never mutate their input; transforms allocate fresh slices or maps.
// Squares returns a single-use iterator, the lazy counterpart of the eager
// helpers.
package seq

import (
	"cmp"
	"iter"
	"slices"
)

// Map applies fn to every element and returns the results in order.
func Map[T, R any](in []T, fn func(T) R) []R {
	if len(in) == 0 {
		return nil
	}
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// Filter returns the elements for which keep reports true, preserving order.
func Filter[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds the elements left to right, starting from init.
func Reduce[T, R any](in []T, init R, fn func(R, T) R) R {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Unique returns the distinct elements in first-seen order.
func Unique[T comparable](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Associate builds a map by projecting each element into a key/value pair.
//
// Later elements win on key collision.
func Associate[T any, K comparable, V any](in []T, fn func(T) (K, V)) map[K]V {
	out := make(map[K]V, len(in))
	for _, v := range in {
		k, val := fn(v)
		out[k] = val
	}
	return out
}

// SortBy returns a copy of in, stably sorted by the given key.
func SortBy[T any, K cmp.Ordered](in []T, key func(T) K) []T {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// Squares yields the square of each number, lazily.
//
// The returned sequence can be ranged over once per call to Squares.
func Squares(nums []int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, n := range nums {
			if !yield(n * n) {
				return
			}
		}
	}
}

// Package seqs implements the sequence-transform exercises: generic map and
// filter combinators and the comprehension-style builders based on them.
package seqs

// Map applies fn to every element of items and returns the results
func Map[T, U any](items []T, fn func(T) U) []U {
	if items == nil {
		return nil
	}

	result := make([]U, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

// Filter returns the elements of items for which keep returns true
func Filter[T any](items []T, keep func(T) bool) []T {
	if items == nil {
		return nil
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Range returns the integers from 1 to n inclusive
func Range(n int) []int {
	if n < 1 {
		return nil
	}

	result := make([]int, n)
	for i := range result {
		result[i] = i + 1
	}
	return result
}

// Squares returns the squares of 1..n
func Squares(n int) []int {
	return Map(Range(n), func(x int) int { return x * x })
}

// EvenSquares returns the squares of the even values in 1..n
func EvenSquares(n int) []int {
	evens := Filter(Range(n), func(x int) bool { return x%2 == 0 })
	return Map(evens, func(x int) int { return x * x })
}

// Lengths returns the length of each word
func Lengths(words []string) []int {
	return Map(words, func(w string) int { return len(w) })
}

// Doubled applies an inline doubling function over the values
func Doubled(values []int) []int {
	return Map(values, func(x int) int { return x * 2 })
}

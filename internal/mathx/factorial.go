// Package mathx implements the recursion exercise.
package mathx

import "fmt"

// MaxFactorialInput is the largest n whose factorial fits into uint64
const MaxFactorialInput = 20

// Factorial computes n! recursively. n must be in [0, MaxFactorialInput].
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial is undefined for negative input %d", n)
	}
	if n > MaxFactorialInput {
		return 0, fmt.Errorf("factorial of %d overflows uint64 (max input: %d)", n, MaxFactorialInput)
	}
	if n == 0 {
		return 1, nil
	}

	prev, err := Factorial(n - 1)
	if err != nil {
		return 0, err
	}
	return uint64(n) * prev, nil
}

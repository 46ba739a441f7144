// Package compute holds small pure functions with typed error taxonomies.
//
// Three failure kinds are modelled as distinct typed errors so callers can
// match the most specific kind first:
//   - invalid argument: NegativeInputError, NegativeAgeError
//   - conversion failure: ParseError (wraps the underlying strconv error)
//
// Error types avoid fmt.Errorf on construction so failure paths stay cheap.
package compute

import (
	"math"
	"strconv"
	"strings"
)

// NegativeInputError is returned by Factorial for negative input.
type NegativeInputError struct{ N int }

// Error implements the error interface.
func (e NegativeInputError) Error() string {
	// Example: compute: factorial requires a non-negative integer, got -1
	return "compute: factorial requires a non-negative integer, got " + strconv.Itoa(e.N)
}

// NegativeAgeError is returned by ClassifyAge for negative input.
type NegativeAgeError struct{ Age int }

// Error implements the error interface.
func (e NegativeAgeError) Error() string {
	return "compute: age cannot be negative, got " + strconv.Itoa(e.Age)
}

// ParseError is returned by ParseQuantity when the input is not numeric.
//
// It wraps the underlying conversion error, so errors.As still reaches the
// strconv detail when callers need it.
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	// Example: compute: cannot parse "abc" as a quantity
	return "compute: cannot parse " + strconv.Quote(e.Input) + " as a quantity"
}

// Unwrap exposes the underlying conversion error.
func (e ParseError) Unwrap() error { return e.Err }

// Factorial computes n! recursively.
//
// Negative input fails with NegativeInputError rather than returning a value.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, NegativeInputError{N: n}
	}
	return factorial(n), nil
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

// ParseQuantity converts trimmed text into an integer quantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ParseError{Input: s, Err: err}
	}
	return n, nil
}

// AgeGroup is the coarse classification produced by ClassifyAge.
type AgeGroup string

// Age groups. The boundary between minor and adult is 18.
const (
	AgeMinor AgeGroup = "minor"
	AgeAdult AgeGroup = "adult"
)

// ClassifyAge buckets an age into an AgeGroup.
//
// Negative ages fail with NegativeAgeError.
func ClassifyAge(age int) (AgeGroup, error) {
	if age < 0 {
		return "", NegativeAgeError{Age: age}
	}
	if age < 18 {
		return AgeMinor, nil
	}
	return AgeAdult, nil
}

// Greet returns a greeting for the given name.
func Greet(name string) string { return "Hello, " + name + "!" }

// Power raises base to the given exponent.
func Power(base, exponent float64) float64 { return math.Pow(base, exponent) }

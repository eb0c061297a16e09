// Package utils contains numeric and concurrency helpers shared across the controller.
package utils

import (
	"math"
)

// WrapToPi returns a given angle in the [-pi, pi) range.
func WrapToPi(theta float64) float64 {
	return theta - 2*math.Pi*math.Floor((theta+math.Pi)/(2*math.Pi))
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// AbsInt returns the absolute value of n.
func AbsInt(n int) int {
	if n < 0 {
		return -1 * n
	}
	return n
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// PowInt raises x to a non-negative integer power by repeated squaring.
func PowInt(x float64, n int) float64 {
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

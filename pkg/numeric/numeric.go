// Package numeric provides pure arithmetic helpers.
package numeric

import (
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Classification labels returned by Classify.
const (
	ClassZero           = "Zero"
	ClassSmallPositive  = "Small positive"
	ClassMediumPositive = "Medium positive"
	ClassLargePositive  = "Large positive"
	ClassNegative       = "Negative"
)

// SafeDivide returns a/b. A divisor exactly equal to zero is rejected with
// types.ErrInvalidInput.
func SafeDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("division by zero: %w", types.ErrInvalidInput)
	}
	return a / b, nil
}

// Sum returns a+b.
func Sum(a, b int) int {
	return a + b
}

// Classify buckets n into closed, contiguous ranges:
// 0, 1..10, 11..100, >100, and <0.
func Classify(n int) string {
	switch {
	case n < 0:
		return ClassNegative
	case n == 0:
		return ClassZero
	case n <= 10:
		return ClassSmallPositive
	case n <= 100:
		return ClassMediumPositive
	default:
		return ClassLargePositive
	}
}

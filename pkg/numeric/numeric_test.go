package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func TestSafeDivide(t *testing.T) {
	got, err := SafeDivide(10.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = SafeDivide(10.0, 0.0)
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = SafeDivide(10.0, math.Copysign(0, -1))
	assert.ErrorIs(t, err, types.ErrInvalidInput, "negative zero equals zero")

	got, err = SafeDivide(1.0, 1e-300)
	require.NoError(t, err, "tiny divisors are not zero")
	assert.InEpsilon(t, 1e300, got, 1e-9)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 30, Sum(10, 20))
	assert.Equal(t, -5, Sum(-10, 5))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{math.MinInt, ClassNegative},
		{-1, ClassNegative},
		{0, ClassZero},
		{1, ClassSmallPositive},
		{5, ClassSmallPositive},
		{10, ClassSmallPositive},
		{11, ClassMediumPositive},
		{50, ClassMediumPositive},
		{100, ClassMediumPositive},
		{101, ClassLargePositive},
		{500, ClassLargePositive},
		{math.MaxInt, ClassLargePositive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.n), "Classify(%d)", tt.n)
	}
}

func TestClassifyLabels(t *testing.T) {
	assert.Equal(t, "Zero", Classify(0))
	assert.Equal(t, "Small positive", Classify(5))
	assert.Equal(t, "Medium positive", Classify(50))
	assert.Equal(t, "Large positive", Classify(500))
	assert.Equal(t, "Negative", Classify(-1))
}

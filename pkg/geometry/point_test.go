package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"3-4-5 triangle", NewPoint(0, 0), NewPoint(3, 4), 5.0},
		{"reversed order", NewPoint(3, 4), NewPoint(0, 0), 5.0},
		{"same point", NewPoint(1.5, -2.5), NewPoint(1.5, -2.5), 0},
		{"negative coordinates", NewPoint(-1, -1), NewPoint(2, 3), 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, tt.a.DistanceTo(tt.b))
		})
	}
}

func TestDistanceFromOrigin(t *testing.T) {
	assert.Equal(t, 5.0, NewPoint(3, 4).DistanceFromOrigin())
	assert.Equal(t, 0.0, Origin.DistanceFromOrigin())
	assert.Equal(t, Distance(Origin, NewPoint(-6, 8)), NewPoint(-6, 8).DistanceFromOrigin())
}

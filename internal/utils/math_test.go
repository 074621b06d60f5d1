package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		expected int64
	}{
		{"exact", 10000, 200, 50},
		{"rounds up", 10001, 200, 51},
		{"below divisor", 1, 200, 1},
		{"zero numerator", 0, 200, 0},
		{"zero divisor", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CeilDiv(tt.a, tt.b))
		})
	}
}

func TestSafeMultiply(t *testing.T) {
	v, ok := SafeMultiply(250, 200)
	assert.True(t, ok)
	assert.Equal(t, int64(50000), v)

	_, ok = SafeMultiply(math.MaxInt64/2+1, 2)
	assert.False(t, ok)

	v, ok = SafeMultiply(0, math.MaxInt64)
	assert.True(t, ok)
	assert.Zero(t, v)
}

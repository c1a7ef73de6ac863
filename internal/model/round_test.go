package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound_ExactBinaryValue(t *testing.T) {
	// 1.0005 is stored as 1.000499999..., 1.0015 as 1.001500000...
	assert.Equal(t, 1.0, Round(1.0005, 3))
	assert.Equal(t, 1.002, Round(1.0015, 3))
	assert.Equal(t, 9.99, Round(10-0.05000000000000071*0.1, 2))
}

func TestRound_HalvesAwayFromZero(t *testing.T) {
	// 0.0625 is exact in binary.
	assert.Equal(t, 0.063, Round(0.0625, 3))
	assert.Equal(t, -0.063, Round(-0.0625, 3))
	assert.Equal(t, 3.0, Round(2.5, 0))
}

func TestRound_PassThrough(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 3)))
	assert.Equal(t, math.Inf(-1), Round(math.Inf(-1), 2))
	assert.Equal(t, 0.0, Round(0, 3))
	assert.Equal(t, 1234567.0, Round(1234567, 2))
	assert.Equal(t, 12.35, Round(12.345678, 2))
}

package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetweenStaysInRange(t *testing.T) {
	rng := NewRand(42)
	for i := 0; i < 2000; i++ {
		v := Between(rng, 50, 750)
		assert.GreaterOrEqual(t, v, 50)
		assert.LessOrEqual(t, v, 750)
	}
	assert.Equal(t, 7, Between(rng, 7, 7))
}

func TestFloatBetweenStaysInRange(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 2000; i++ {
		v := FloatBetween(rng, 0.2, 0.5)
		assert.GreaterOrEqual(t, v, 0.2)
		assert.Less(t, v, 0.5)
	}
	assert.Equal(t, 0.3, FloatBetween(rng, 0.3, 0.1))
}

func TestNewRandIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "key", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	NewLogger(&buf, "bogus").Info("fallback")
	assert.Contains(t, buf.String(), "fallback")
}

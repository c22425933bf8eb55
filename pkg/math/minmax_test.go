package math

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 3, Min(5, 3))
	assert.Equal(t, -5, Min(-5, -2))
	assert.Equal(t, uint64(0), Min(uint64(0), uint64(7)))
	assert.Equal(t, 1.5, Min(1.5, 2.5))
	assert.Equal(t, time.Second, Min(time.Minute, time.Second))

	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 5, Max(5, 3))
	assert.Equal(t, ^uint64(0), Max(^uint64(0), uint64(7)))
	assert.Equal(t, time.Minute, Max(time.Minute, time.Second))
}

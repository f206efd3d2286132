package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	from, size := Calculate(0, 0)
	assert.Equal(t, 0, from)
	assert.Equal(t, DefaultPageSize, size)

	from, size = Calculate(3, 25)
	assert.Equal(t, 50, from)
	assert.Equal(t, 25, size)

	from, size = Calculate(-1, 1000)
	assert.Equal(t, 0, from)
	assert.Equal(t, DefaultPageSize, size)
}

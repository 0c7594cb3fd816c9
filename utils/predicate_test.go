package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adapter-generator/utils"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsInRange(0, 0, 2))
	assert.True(t, utils.IsInRange(0, 2, 2))
	assert.True(t, utils.IsInRange(-5, -1, 5))
	assert.False(t, utils.IsInRange(0, 3, 2))
	assert.False(t, utils.IsInRange(0, -1, 2))

	assert.True(t, utils.IsInRange(int32(0), int32(1), int32(2)))
	assert.False(t, utils.IsInRange(1.0, 0.5, 2.0))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCounts(t *testing.T) {
	assert.NoError(t, validateCounts(10, 50, 200))
	assert.NoError(t, validateCounts(1, 1, 0))

	assert.ErrorContains(t, validateCounts(0, 50, 200), "-doctors")
	assert.ErrorContains(t, validateCounts(10, 0, 200), "-patients")
	assert.ErrorContains(t, validateCounts(10, -1, 200), "-patients")
	assert.ErrorContains(t, validateCounts(10, 50, -5), "-appointments")
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColoredBlock(t *testing.T) {
	assert.Equal(t, "\033[48;2;1;2;3m  \033[0m", ColoredBlock("  ", 1, 2, 3))
}

func TestBytesForBits(t *testing.T) {
	assert.Equal(t, uint64(0), BytesForBits(0))
	assert.Equal(t, uint64(1), BytesForBits(1))
	assert.Equal(t, uint64(1), BytesForBits(8))
	assert.Equal(t, uint64(2), BytesForBits(9))
}

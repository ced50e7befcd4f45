package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	_, err = uuid.Parse(second)
	require.NoError(t, err)
}

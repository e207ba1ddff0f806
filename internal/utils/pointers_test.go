package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrDefault(t *testing.T) {
	enabled := true

	assert.True(t, GetOrDefault(&enabled, false))
	assert.False(t, GetOrDefault(nil, false))
	assert.Equal(t, "fallback", GetOrDefault(nil, "fallback"))
}

func TestToPtr(t *testing.T) {
	ptr := ToPtr(42)

	assert.NotNil(t, ptr)
	assert.Equal(t, 42, *ptr)
}

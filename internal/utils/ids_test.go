package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNanoID(t *testing.T) {
	id := GenerateNanoID()

	assert.Len(t, id, 21)
	for _, r := range id {
		assert.Contains(t, nanoIdAlphabet, string(r))
	}
}

func TestGenerateNanoIdWithPrefix(t *testing.T) {
	id := GenerateNanoIdWithPrefix("fdbk", 16)

	assert.True(t, strings.HasPrefix(id, "fdbk-"))
	assert.Len(t, id, len("fdbk-")+16)
}

func TestGenerateNanoID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id := GenerateNanoID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

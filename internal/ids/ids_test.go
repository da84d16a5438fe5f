package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefixAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 1000; i++ {
		id := New("cargo")
		require.True(t, strings.HasPrefix(id, "cargo-"), id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestNewWithoutPrefix(t *testing.T) {
	id := New("")
	assert.Len(t, id, 26)
	assert.Equal(t, strings.ToLower(id), id)
}

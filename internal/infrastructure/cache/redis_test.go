package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, cacheKey("Buongiorno a tutti"), cacheKey("Buongiorno a tutti"))
	})

	t.Run("differs per input", func(t *testing.T) {
		assert.NotEqual(t, cacheKey("ciao"), cacheKey("hello"))
	})

	t.Run("is namespaced and fixed-length", func(t *testing.T) {
		key := cacheKey(strings.Repeat("x", 10_000))

		assert.True(t, strings.HasPrefix(key, "babel:pred:"))
		assert.Len(t, key, len("babel:pred:")+64)
	})
}

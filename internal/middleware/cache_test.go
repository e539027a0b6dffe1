package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheableSkipsOversizedBodies(t *testing.T) {
	// A body that outgrew the capture limit must not be stored: the
	// buffer only holds a prefix and a HIT would replay it as the whole
	// response.
	assert.True(t, cacheable(http.StatusOK, 100, 1024))
	assert.True(t, cacheable(http.StatusOK, 1024, 1024))
	assert.False(t, cacheable(http.StatusOK, 1025, 1024))
}

func TestCacheableUnlimitedWhenNoCap(t *testing.T) {
	assert.True(t, cacheable(http.StatusOK, 1<<30, 0))
}

func TestCacheableOnlyCaches200(t *testing.T) {
	assert.False(t, cacheable(http.StatusCreated, 10, 1024))
	assert.False(t, cacheable(http.StatusNotFound, 10, 1024))
	assert.False(t, cacheable(http.StatusInternalServerError, 10, 1024))
}

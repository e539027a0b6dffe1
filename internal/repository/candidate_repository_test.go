package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateAccessibleByScopeShortCircuits(t *testing.T) {
	// Admin and unbound-user scopes resolve without a database round
	// trip, so a nil handle is safe here.
	r := NewCandidateRepo(nil)

	ok, err := r.AccessibleBy(context.Background(), 1, AdminScope)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.AccessibleBy(context.Background(), 1, Scope{})
	require.NoError(t, err)
	assert.False(t, ok)
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeCanAccessRecruiter(t *testing.T) {
	assert.True(t, AdminScope.CanAccessRecruiter(5))

	own := Scope{RecruiterID: 5}
	assert.True(t, own.CanAccessRecruiter(5))
	assert.False(t, own.CanAccessRecruiter(6))

	unbound := Scope{}
	assert.False(t, unbound.CanAccessRecruiter(5))
}

func TestScopeEffectiveRecruiter(t *testing.T) {
	assert.Equal(t, uint64(9), AdminScope.EffectiveRecruiter(9))
	assert.Equal(t, uint64(0), AdminScope.EffectiveRecruiter(0))

	own := Scope{RecruiterID: 2}
	assert.Equal(t, uint64(2), own.EffectiveRecruiter(9))
	assert.Equal(t, uint64(2), own.EffectiveRecruiter(0))
}

func TestScopeEmpty(t *testing.T) {
	assert.False(t, AdminScope.Empty())
	assert.False(t, Scope{RecruiterID: 1}.Empty())
	assert.True(t, Scope{}.Empty())
}

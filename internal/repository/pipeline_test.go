package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPipelineWhereNoFilters(t *testing.T) {
	cond, args := buildPipelineWhere(PipelineQuery{}, AdminScope)
	assert.Equal(t, "1=1", cond)
	assert.Empty(t, args)
}

func TestBuildPipelineWhereAllFilters(t *testing.T) {
	q := PipelineQuery{ClientID: 3, RecruiterID: 7, Status: "hired", Search: "Acme"}
	cond, args := buildPipelineWhere(q, AdminScope)

	assert.Contains(t, cond, "r.id = ?")
	assert.Contains(t, cond, "cl.id = ?")
	assert.Contains(t, cond, "a.status = ?")
	assert.Contains(t, cond, "LOWER(c.full_name) LIKE ?")
	assert.Contains(t, cond, "LOWER(v.title) LIKE ?")
	assert.Contains(t, cond, "LOWER(cl.name) LIKE ?")
	assert.Contains(t, cond, "LOWER(r.name) LIKE ?")
	// recruiter, client, status, then four search placeholders
	assert.Equal(t, []any{uint64(7), uint64(3), "hired", "%acme%", "%acme%", "%acme%", "%acme%"}, args)
}

func TestBuildPipelineWhereScopeOverridesRecruiterFilter(t *testing.T) {
	// A non-admin asking for another recruiter's rows is forced back to
	// their own recruiter.
	scope := Scope{Admin: false, RecruiterID: 2}
	cond, args := buildPipelineWhere(PipelineQuery{RecruiterID: 9}, scope)

	assert.Contains(t, cond, "r.id = ?")
	assert.Equal(t, []any{uint64(2)}, args)
}

func TestBuildPipelineWhereAdminKeepsRequestedRecruiter(t *testing.T) {
	cond, args := buildPipelineWhere(PipelineQuery{RecruiterID: 9}, AdminScope)
	assert.Contains(t, cond, "r.id = ?")
	assert.Equal(t, []any{uint64(9)}, args)
}

func TestBuildPipelineWhereSearchIsTrimmedAndLowered(t *testing.T) {
	_, args := buildPipelineWhere(PipelineQuery{Search: "  KyIv  "}, AdminScope)
	assert.Equal(t, []any{"%kyiv%", "%kyiv%", "%kyiv%", "%kyiv%"}, args)
}

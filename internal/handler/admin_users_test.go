package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentflow/recruiting-crm/internal/model"
)

func uintPtr(n uint64) *uint64 { return &n }

func TestApplyUserUpdatePasswordOnlyKeepsBinding(t *testing.T) {
	u := model.User{Username: "julia", Role: model.RoleUser, RecruiterID: uintPtr(2)}

	msg := applyUserUpdate(&u, userReq{Password: "new-secret"})

	assert.Empty(t, msg)
	assert.Equal(t, "julia", u.Username)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.Equal(t, uint64(2), *u.RecruiterID)
}

func TestApplyUserUpdateChangesBindingWhenSupplied(t *testing.T) {
	u := model.User{Username: "julia", Role: model.RoleUser, RecruiterID: uintPtr(2)}

	msg := applyUserUpdate(&u, userReq{RecruiterID: uintPtr(5)})

	assert.Empty(t, msg)
	assert.Equal(t, uint64(5), *u.RecruiterID)
}

func TestApplyUserUpdatePromotionToAdminClearsBinding(t *testing.T) {
	u := model.User{Username: "julia", Role: model.RoleUser, RecruiterID: uintPtr(2)}

	msg := applyUserUpdate(&u, userReq{Role: "Admin"})

	assert.Empty(t, msg)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.Nil(t, u.RecruiterID)
}

func TestApplyUserUpdateDemotionToUserNeedsBinding(t *testing.T) {
	u := model.User{Username: "boss", Role: model.RoleAdmin}

	msg := applyUserUpdate(&u, userReq{Role: "user"})
	assert.Contains(t, msg, "recruiter_id")

	u = model.User{Username: "boss", Role: model.RoleAdmin}
	msg = applyUserUpdate(&u, userReq{Role: "user", RecruiterID: uintPtr(3)})
	assert.Empty(t, msg)
	assert.Equal(t, uint64(3), *u.RecruiterID)
}

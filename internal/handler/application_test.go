package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow/recruiting-crm/internal/model"
)

func strPtr(s string) *string { return &s }

func TestApplicationReqDefaultsStatusToNew(t *testing.T) {
	req := &applicationReq{CandidateID: 1, VacancyID: 2, RecruiterID: 3}
	app, msg := req.toModel()
	require.Empty(t, msg)
	assert.Equal(t, model.StatusNew, app.Status)
}

func TestApplicationReqStatusDateInvariants(t *testing.T) {
	tests := []struct {
		name    string
		req     applicationReq
		wantMsg string
	}{
		{
			name:    "rejected without rejection_date",
			req:     applicationReq{CandidateID: 1, VacancyID: 2, Status: model.StatusRejected},
			wantMsg: "rejection_date",
		},
		{
			name:    "hired without start_date",
			req:     applicationReq{CandidateID: 1, VacancyID: 2, Status: model.StatusHired},
			wantMsg: "start_date",
		},
		{
			name:    "unknown status",
			req:     applicationReq{CandidateID: 1, VacancyID: 2, Status: "paused"},
			wantMsg: "invalid status",
		},
		{
			name:    "malformed date",
			req:     applicationReq{CandidateID: 1, VacancyID: 2, DateContacted: strPtr("01.05.2024")},
			wantMsg: "invalid date_contacted",
		},
		{
			name:    "missing vacancy",
			req:     applicationReq{CandidateID: 1},
			wantMsg: "vacancy_id required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msg := tt.req.toModel()
			assert.Contains(t, msg, tt.wantMsg)
		})
	}
}

func TestApplicationReqValidTransitions(t *testing.T) {
	rejected := applicationReq{
		CandidateID:   1,
		VacancyID:     2,
		Status:        model.StatusRejected,
		RejectionDate: strPtr("2024-05-10"),
	}
	app, msg := rejected.toModel()
	require.Empty(t, msg)
	require.NotNil(t, app.RejectionDate)
	assert.Equal(t, "2024-05-10", app.RejectionDate.Format(dateOnly))

	hired := applicationReq{
		CandidateID: 1,
		VacancyID:   2,
		Status:      model.StatusHired,
		StartDate:   strPtr("2024-06-01"),
	}
	app, msg = hired.toModel()
	require.Empty(t, msg)
	require.NotNil(t, app.StartDate)
}

func TestApplicationReqReplacementConsistency(t *testing.T) {
	ref := uint64(7)
	req := applicationReq{CandidateID: 1, VacancyID: 2, ReplacementOfID: &ref}
	_, msg := req.toModel()
	assert.Contains(t, msg, "replacement_of_id")

	req.IsReplacement = true
	app, msg := req.toModel()
	require.Empty(t, msg)
	assert.True(t, app.IsReplacement)
	assert.Equal(t, ref, *app.ReplacementOfID)
}

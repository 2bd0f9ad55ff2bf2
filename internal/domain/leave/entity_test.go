package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualAllotment(t *testing.T) {
	assert.Equal(t, 24, AnnualAllotment(TypePaidTimeOff))
	assert.Equal(t, 7, AnnualAllotment(TypeSickLeave))
	assert.Equal(t, 0, AnnualAllotment(TypeUnpaidLeave))
	assert.Equal(t, 0, AnnualAllotment(LeaveType("sabbatical")))
}

func TestValidTransition(t *testing.T) {
	assert.True(t, ValidTransition(LeaveRequestStatusPending, LeaveRequestStatusApproved))
	assert.True(t, ValidTransition(LeaveRequestStatusPending, LeaveRequestStatusRejected))

	// Approved and rejected are terminal.
	assert.False(t, ValidTransition(LeaveRequestStatusApproved, LeaveRequestStatusRejected))
	assert.False(t, ValidTransition(LeaveRequestStatusApproved, LeaveRequestStatusPending))
	assert.False(t, ValidTransition(LeaveRequestStatusRejected, LeaveRequestStatusApproved))
	assert.False(t, ValidTransition(LeaveRequestStatusPending, LeaveRequestStatusPending))
}

package leave

import (
	"time"
)

type LeaveType string

const (
	TypePaidTimeOff LeaveType = "paid_time_off"
	TypeSickLeave   LeaveType = "sick_leave"
	TypeUnpaidLeave LeaveType = "unpaid_leave"
)

// AnnualAllotment returns the yearly quota for a leave type. Unpaid
// leave has no allotment and its balance always reports zero.
func AnnualAllotment(t LeaveType) int {
	switch t {
	case TypePaidTimeOff:
		return 24
	case TypeSickLeave:
		return 7
	default:
		return 0
	}
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// validTransitions lists the states each status may move to. Approved
// and rejected are terminal.
var validTransitions = map[LeaveRequestStatus][]LeaveRequestStatus{
	LeaveRequestStatusPending:  {LeaveRequestStatusApproved, LeaveRequestStatusRejected},
	LeaveRequestStatusApproved: {},
	LeaveRequestStatusRejected: {},
}

// ValidTransition reports whether a status change is allowed.
func ValidTransition(from, to LeaveRequestStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Allocation int
	Attachment *string
	Status     LeaveRequestStatus
	CreatedAt  time.Time

	// DTO
	EmployeeName string
}

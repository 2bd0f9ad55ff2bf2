package leave

import (
	"context"
)

type LeaveService interface {
	// CreateLeave submits a leave request (admin/hr for anyone, employees
	// for themselves). New requests always start pending
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveView, error)

	// ListLeaves retrieves leave requests, newest first. Non-privileged
	// callers only ever see their own
	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveView, error)

	// UpdateLeaveStatus approves or rejects a pending request (admin/hr
	// only). Approval also marks the employee on leave
	UpdateLeaveStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveView, error)

	// GetLeaveBalance reports remaining days per leave type (admin/hr or
	// the employee themselves)
	GetLeaveBalance(ctx context.Context, employeeID string) (LeaveBalanceView, error)
}

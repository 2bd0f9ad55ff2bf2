package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) error

	// ApprovedAllocationByType sums the approved days per leave type for
	// one employee, feeding the balance calculation.
	ApprovedAllocationByType(ctx context.Context, employeeID string) (map[LeaveType]int, error)
}

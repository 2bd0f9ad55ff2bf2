package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CreateAttendance records a day's attendance for an employee and
	// marks them present (admin/hr only)
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceView, error)

	// ListAttendance retrieves attendance records. Non-privileged callers
	// only ever see their own records
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceView, error)
}

package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// List retrieves attendance records, newest date first
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}

package attendance

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/policy"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	tx             database.TxRunner
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	tx database.TxRunner,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// CreateAttendance implements attendance.AttendanceService. The record
// insert and the employee status flip share one transaction, so a failed
// write never leaves the employee marked present without a record.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceView{}, err
	}

	if !policy.CanRecordAttendance(caller.Role) {
		return attendance.AttendanceView{}, employee.ErrNotAuthorized
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceView{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceView{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	record := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		CheckIn:    parseTimePtr(req.CheckIn),
		CheckOut:   parseTimePtr(req.CheckOut),
	}
	if record.CheckIn != nil && record.CheckOut != nil {
		record.WorkHours, record.ExtraHours = attendance.SplitHours(*record.CheckIn, *record.CheckOut)
	}

	var created attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.attendanceRepo.Create(txCtx, record)
		if err != nil {
			return err
		}
		return s.employeeRepo.UpdateStatus(txCtx, emp.ID, employee.StatusPresent)
	})
	if err != nil {
		return attendance.AttendanceView{}, err
	}

	created.EmployeeName = emp.FullName()
	return newAttendanceView(created), nil
}

// ListAttendance implements attendance.AttendanceService. Non-privileged
// callers get their own records regardless of the requested filter.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if !policy.IsPrivileged(caller.Role) {
		filter.EmployeeID = &caller.EmployeeID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]attendance.AttendanceView, 0, len(records))
	for _, rec := range records {
		views = append(views, newAttendanceView(rec))
	}

	return views, nil
}

func newAttendanceView(rec attendance.Attendance) attendance.AttendanceView {
	return attendance.AttendanceView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date.Format("2006-01-02"),
		CheckIn:      formatTimePtr(rec.CheckIn),
		CheckOut:     formatTimePtr(rec.CheckOut),
		WorkHours:    rec.WorkHours,
		ExtraHours:   rec.ExtraHours,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}
}

func parseTimePtr(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, ok := validator.IsValidDateTime(*value)
	if !ok {
		return nil
	}
	return &t
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

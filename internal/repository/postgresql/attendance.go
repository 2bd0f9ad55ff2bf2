package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	q database.Querier
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newRecord attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.q)

	if newRecord.ID == "" {
		newRecord.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, check_out, work_hours, extra_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newRecord.ID,
		newRecord.EmployeeID,
		newRecord.Date,
		newRecord.CheckIn,
		newRecord.CheckOut,
		newRecord.WorkHours,
		newRecord.ExtraHours,
	).Scan(&newRecord.ID, &newRecord.CreatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return newRecord, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.q)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	// Employee ID filter
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Month filter, e.g. 2025-07
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND to_char(a.date, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	selectQuery := fmt.Sprintf(`
		SELECT
			a.id, a.employee_id, a.date, a.check_in, a.check_out,
			a.work_hours, a.extra_hours, a.created_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.WorkHours, &rec.ExtraHours, &rec.CreatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func NewAttendanceRepository(q database.Querier) attendance.AttendanceRepository {
	return &attendanceRepository{q: q}
}

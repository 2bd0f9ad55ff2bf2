package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_Create_GeneratesID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 1, 19, 1, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO attendance_records").
		WithArgs(pgxmock.AnyArg(), "emp-1", date, &checkIn, &checkOut, 9.0, 1.0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("att-1", now))

	created, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		WorkHours:  9.0,
		ExtraHours: 1.0,
	})

	require.NoError(t, err)
	assert.Equal(t, "att-1", created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_List_FiltersByEmployeeAndMonth(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 7, 1, 17, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 1, 17, 1, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{
		"id", "employee_id", "date", "check_in", "check_out",
		"work_hours", "extra_hours", "created_at", "employee_name",
	}).AddRow("att-1", "emp-1", date, &checkIn, &checkOut, 8.0, 0.0, now, "John Doe")

	query := regexp.QuoteMeta("to_char(a.date, 'YYYY-MM') = $2")
	mock.ExpectQuery(query).WithArgs("emp-1", "2025-07").WillReturnRows(rows)

	records, err := repo.List(context.Background(), attendance.AttendanceFilter{
		EmployeeID: strPtr("emp-1"),
		Month:      strPtr("2025-07"),
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "att-1", records[0].ID)
	assert.Equal(t, "John Doe", records[0].EmployeeName)
	assert.Equal(t, 8.0, records[0].WorkHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_List_NoFilters(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	rows := pgxmock.NewRows([]string{
		"id", "employee_id", "date", "check_in", "check_out",
		"work_hours", "extra_hours", "created_at", "employee_name",
	})

	mock.ExpectQuery("FROM attendance_records").WillReturnRows(rows)

	records, err := repo.List(context.Background(), attendance.AttendanceFilter{})

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

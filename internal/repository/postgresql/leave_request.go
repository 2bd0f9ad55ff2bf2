package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	q database.Querier
}

func NewLeaveRequestRepository(q database.Querier) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{q: q}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.q)

	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			allocation, attachment, status
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.Allocation, request.Attachment, request.Status,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.q)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.allocation, lr.attachment, lr.status, lr.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Allocation, &req.Attachment, &req.Status, &req.CreatedAt,
		&req.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.q)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	// Employee ID filter
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	selectQuery := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.allocation, lr.attachment, lr.status, lr.created_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE %s
		ORDER BY lr.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
			&req.Allocation, &req.Attachment, &req.Status, &req.CreatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. The pending
// guard lives in the UPDATE itself: once a request is decided, a racing
// second decision matches no row instead of overwriting the outcome.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
	q := GetQuerier(ctx, r.q)

	query := `
		UPDATE leave_requests
		SET status = $1
		WHERE id = $2 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	// No pending row matched: the request is either gone or was decided
	// by a concurrent caller.
	var current leave.LeaveRequestStatus
	err = q.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1`, id).Scan(&current)
	if err == pgx.ErrNoRows {
		return leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read leave request status: %w", err)
	}

	return leave.ErrLeaveRequestAlreadyProcessed
}

// ApprovedAllocationByType implements leave.LeaveRequestRepository. Only
// approved requests consume an employee's allowance.
func (r *leaveRequestRepositoryImpl) ApprovedAllocationByType(ctx context.Context, employeeID string) (map[leave.LeaveType]int, error) {
	q := GetQuerier(ctx, r.q)

	query := `
		SELECT leave_type, COALESCE(SUM(allocation), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = $2
		GROUP BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveRequestStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to sum approved allocations: %w", err)
	}
	defer rows.Close()

	used := make(map[leave.LeaveType]int)
	for rows.Next() {
		var leaveType leave.LeaveType
		var total int
		if err := rows.Scan(&leaveType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan approved allocation: %w", err)
		}
		used[leaveType] = total
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return used, nil
}

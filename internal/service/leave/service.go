package leave

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/policy"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/metrics"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx               database.TxRunner
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
}

func NewLeaveService(
	tx database.TxRunner,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:               tx,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return leave.LeaveView{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveView{}, err
	}

	if !policy.CanSubmitLeave(caller.Role, caller.EmployeeID, req.EmployeeID) {
		return leave.LeaveView{}, employee.ErrNotAuthorized
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveView{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Allocation: req.Allocation,
		Attachment: req.Attachment,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveView{}, err
	}

	created.EmployeeName = emp.FullName()
	return newLeaveView(created), nil
}

// ListLeaves implements leave.LeaveService. Non-privileged callers get
// their own requests regardless of the requested filter.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !policy.IsPrivileged(caller.Role) {
		filter.EmployeeID = &caller.EmployeeID
	}

	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]leave.LeaveView, 0, len(requests))
	for _, req := range requests {
		views = append(views, newLeaveView(req))
	}

	return views, nil
}

// UpdateLeaveStatus implements leave.LeaveService. Approval flips the
// employee to on-leave in the same transaction as the status write.
// Nothing flips them back when the leave period ends; attendance entry
// is what marks them present again.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return leave.LeaveView{}, err
	}

	if !policy.CanDecideLeave(caller.Role) {
		return leave.LeaveView{}, employee.ErrNotAuthorized
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveView{}, err
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveView{}, err
	}

	newStatus := leave.LeaveRequestStatus(req.Status)
	if !leave.ValidTransition(request.Status, newStatus) {
		return leave.LeaveView{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.leaveRequestRepo.UpdateStatus(txCtx, request.ID, newStatus); err != nil {
			return err
		}
		if newStatus == leave.LeaveRequestStatusApproved {
			return s.employeeRepo.UpdateStatus(txCtx, request.EmployeeID, employee.StatusOnLeave)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveView{}, err
	}

	metrics.ObserveLeaveDecision(string(newStatus))

	request.Status = newStatus
	return newLeaveView(request), nil
}

// GetLeaveBalance implements leave.LeaveService. Only approved requests
// consume the allotment; the arithmetic does not clamp, so exceeding an
// allotment surfaces as a negative remaining balance.
func (s *LeaveServiceImpl) GetLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return leave.LeaveBalanceView{}, err
	}

	if !policy.CanViewLeaveBalance(caller.Role, caller.EmployeeID, employeeID) {
		return leave.LeaveBalanceView{}, employee.ErrNotAuthorized
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveBalanceView{}, err
	}

	used, err := s.leaveRequestRepo.ApprovedAllocationByType(ctx, employeeID)
	if err != nil {
		return leave.LeaveBalanceView{}, err
	}

	return leave.LeaveBalanceView{
		PaidTimeOff: leave.AnnualAllotment(leave.TypePaidTimeOff) - used[leave.TypePaidTimeOff],
		SickLeave:   leave.AnnualAllotment(leave.TypeSickLeave) - used[leave.TypeSickLeave],
		UnpaidLeave: 0,
	}, nil
}

func newLeaveView(req leave.LeaveRequest) leave.LeaveView {
	return leave.LeaveView{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Allocation:   req.Allocation,
		Attachment:   req.Attachment,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}

package leave

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// hookedTx runs a callback before the transaction body, to interleave a
// competing write between a service's read and its write.
type hookedTx struct {
	before func()
}

func (h hookedTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if h.before != nil {
		h.before()
	}
	return fn(ctx)
}

type fakeLeaveRepo struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	request.ID = fmt.Sprintf("lv-%d", f.nextID)
	request.CreatedAt = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.LeaveRequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	request.Status = status
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRepo) ApprovedAllocationByType(_ context.Context, employeeID string) (map[leave.LeaveType]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	used := make(map[leave.LeaveType]int)
	for _, request := range f.requests {
		if request.EmployeeID == employeeID && request.Status == leave.LeaveRequestStatusApproved {
			used[request.LeaveType] += request.Allocation
		}
	}
	return used, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{
			ID:        id,
			FirstName: "Bob",
			LastName:  "Johnson",
			Status:    employee.StatusAbsent,
		}
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByLoginID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ map[string]interface{}) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, id string, status employee.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) UpdateCredentials(_ context.Context, _ string, _ string, _ bool) error {
	return nil
}

func authedContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("test-secret-key", "24h")
	tokenString, _, err := svc.GenerateAccessToken(employeeID, role, false)
	require.NoError(t, err)
	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func paidTimeOffRequest(employeeID string, days int) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  string(leave.TypePaidTimeOff),
		StartDate:  "2025-01-20",
		EndDate:    "2025-01-22",
		Allocation: days,
	}
}

func TestCreateLeaveStartsPending(t *testing.T) {
	svc := NewLeaveService(passthroughTx{}, newFakeLeaveRepo(), newFakeEmployeeRepo("emp-1"))
	ctx := authedContext(t, "emp-1", employee.RoleEmployee)

	view, err := svc.CreateLeave(ctx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)

	assert.Equal(t, string(leave.LeaveRequestStatusPending), view.Status)
	assert.Equal(t, "Bob Johnson", view.EmployeeName)
}

func TestCreateLeaveSelfServiceOnlyForSelf(t *testing.T) {
	svc := NewLeaveService(passthroughTx{}, newFakeLeaveRepo(), newFakeEmployeeRepo("emp-1", "emp-2"))

	selfCtx := authedContext(t, "emp-1", employee.RoleEmployee)
	_, err := svc.CreateLeave(selfCtx, paidTimeOffRequest("emp-2", 3))
	assert.ErrorIs(t, err, employee.ErrNotAuthorized)

	hrCtx := authedContext(t, "hr-1", employee.RoleHR)
	_, err = svc.CreateLeave(hrCtx, paidTimeOffRequest("emp-2", 3))
	assert.NoError(t, err)
}

func TestCreateLeaveUnknownEmployee(t *testing.T) {
	svc := NewLeaveService(passthroughTx{}, newFakeLeaveRepo(), newFakeEmployeeRepo())
	ctx := authedContext(t, "admin-1", employee.RoleAdmin)

	_, err := svc.CreateLeave(ctx, paidTimeOffRequest("missing", 3))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateLeaveStatusApprovalMarksOnLeave(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	empRepo := newFakeEmployeeRepo("emp-1")
	svc := NewLeaveService(passthroughTx{}, leaveRepo, empRepo)
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	created, err := svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)

	view, err := svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusApproved), view.Status)

	emp, err := empRepo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, employee.StatusOnLeave, emp.Status)
}

func TestUpdateLeaveStatusRejectionKeepsStatus(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	empRepo := newFakeEmployeeRepo("emp-1")
	svc := NewLeaveService(passthroughTx{}, leaveRepo, empRepo)
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	created, err := svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)

	view, err := svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusRejected),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusRejected), view.Status)

	emp, err := empRepo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, employee.StatusAbsent, emp.Status)
}

func TestUpdateLeaveStatusPrivilegedOnly(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(passthroughTx{}, leaveRepo, newFakeEmployeeRepo("emp-1"))
	selfCtx := authedContext(t, "emp-1", employee.RoleEmployee)

	created, err := svc.CreateLeave(selfCtx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)

	_, err = svc.UpdateLeaveStatus(selfCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusApproved),
	})
	assert.ErrorIs(t, err, employee.ErrNotAuthorized)
}

func TestUpdateLeaveStatusTerminalStates(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(passthroughTx{}, leaveRepo, newFakeEmployeeRepo("emp-1"))
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	created, err := svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)

	_, err = svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)

	// Approved requests can never be rejected afterwards.
	_, err = svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestUpdateLeaveStatusConcurrentDecisionLoses(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	seedSvc := NewLeaveService(passthroughTx{}, leaveRepo, newFakeEmployeeRepo("emp-1"))
	created, err := seedSvc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)

	// Another decision lands after this caller's read but before its
	// write; the store-level pending guard makes the late write lose.
	raceTx := hookedTx{before: func() {
		leaveRepo.mu.Lock()
		defer leaveRepo.mu.Unlock()
		request := leaveRepo.requests[created.ID]
		request.Status = leave.LeaveRequestStatusApproved
		leaveRepo.requests[created.ID] = request
	}}
	svc := NewLeaveService(raceTx, leaveRepo, newFakeEmployeeRepo("emp-1"))

	_, err = svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: string(leave.LeaveRequestStatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	stored, err := leaveRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
}

func TestUpdateLeaveStatusNotFound(t *testing.T) {
	svc := NewLeaveService(passthroughTx{}, newFakeLeaveRepo(), newFakeEmployeeRepo())
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	_, err := svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     "missing",
		Status: string(leave.LeaveRequestStatusApproved),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestGetLeaveBalanceCountsOnlyApproved(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(passthroughTx{}, leaveRepo, newFakeEmployeeRepo("emp-1"))
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	approved, err := svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 3))
	require.NoError(t, err)
	_, err = svc.UpdateLeaveStatus(adminCtx, leave.UpdateLeaveStatusRequest{
		ID:     approved.ID,
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)

	// A pending request of the same category does not consume days.
	_, err = svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 5))
	require.NoError(t, err)

	balance, err := svc.GetLeaveBalance(adminCtx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 21, balance.PaidTimeOff)
	assert.Equal(t, 7, balance.SickLeave)
	assert.Equal(t, 0, balance.UnpaidLeave)
}

func TestGetLeaveBalanceSelfServiceScope(t *testing.T) {
	svc := NewLeaveService(passthroughTx{}, newFakeLeaveRepo(), newFakeEmployeeRepo("emp-1", "emp-2"))
	selfCtx := authedContext(t, "emp-1", employee.RoleEmployee)

	_, err := svc.GetLeaveBalance(selfCtx, "emp-1")
	assert.NoError(t, err)

	_, err = svc.GetLeaveBalance(selfCtx, "emp-2")
	assert.ErrorIs(t, err, employee.ErrNotAuthorized)
}

func TestListLeavesForcesSelfFilter(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(passthroughTx{}, leaveRepo, newFakeEmployeeRepo("emp-1", "emp-2"))
	adminCtx := authedContext(t, "admin-1", employee.RoleAdmin)

	_, err := svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-1", 2))
	require.NoError(t, err)
	_, err = svc.CreateLeave(adminCtx, paidTimeOffRequest("emp-2", 2))
	require.NoError(t, err)

	selfCtx := authedContext(t, "emp-1", employee.RoleEmployee)
	views, err := svc.ListLeaves(selfCtx, leave.LeaveFilter{EmployeeID: strPtr("emp-2")})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "emp-1", views[0].EmployeeID)

	views, err = svc.ListLeaves(adminCtx, leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

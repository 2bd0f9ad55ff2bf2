package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	loginResp auth.LoginResponse
	loginErr  error
	changeErr error
	meView    employee.EmployeeView
	meErr     error
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if s.loginErr != nil {
		return auth.LoginResponse{}, s.loginErr
	}
	return s.loginResp, nil
}

func (s *stubAuthService) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	return s.changeErr
}

func (s *stubAuthService) Me(ctx context.Context) (employee.EmployeeView, error) {
	if s.meErr != nil {
		return employee.EmployeeView{}, s.meErr
	}
	return s.meView, nil
}

type stubEmployeeService struct {
	createView employee.EmployeeView
	createErr  error
	listViews  []employee.EmployeeView
}

func (s *stubEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeView, error) {
	if s.createErr != nil {
		return employee.EmployeeView{}, s.createErr
	}
	return s.createView, nil
}

func (s *stubEmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeView, error) {
	return employee.EmployeeView{ID: id}, nil
}

func (s *stubEmployeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeView, error) {
	return s.listViews, nil
}

func (s *stubEmployeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeView, error) {
	return employee.EmployeeView{ID: req.ID}, nil
}

func (s *stubEmployeeService) PreviewLoginID(ctx context.Context, req employee.PreviewLoginIDRequest) (employee.LoginIDPreview, error) {
	return employee.LoginIDPreview{LoginID: "DFALSM20230001"}, nil
}

type stubAttendanceService struct{}

func (s *stubAttendanceService) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceView, error) {
	return attendance.AttendanceView{EmployeeID: req.EmployeeID}, nil
}

func (s *stubAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceView, error) {
	return nil, nil
}

type stubLeaveService struct{}

func (s *stubLeaveService) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveView, error) {
	return leave.LeaveView{EmployeeID: req.EmployeeID}, nil
}

func (s *stubLeaveService) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveView, error) {
	return nil, nil
}

func (s *stubLeaveService) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveView, error) {
	return leave.LeaveView{ID: req.ID}, nil
}

func (s *stubLeaveService) GetLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceView, error) {
	return leave.LeaveBalanceView{PaidTimeOff: 24, SickLeave: 7}, nil
}

type routerFixture struct {
	router     http.Handler
	jwtService jwt.Service
	authStub   *stubAuthService
	empStub    *stubEmployeeService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret-key", "24h")
	authStub := &stubAuthService{}
	empStub := &stubEmployeeService{}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(
		logger,
		jwtService,
		NewAuthHandler(authStub),
		NewEmployeeHandler(empStub),
		NewAttendanceHandler(&stubAttendanceService{}),
		NewLeaveHandler(&stubLeaveService{}),
		[]string{"http://localhost:3000"},
	)

	return &routerFixture{
		router:     router,
		jwtService: jwtService,
		authStub:   authStub,
		empStub:    empStub,
	}
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) tokenFor(t *testing.T, employeeID string, role employee.Role) string {
	t.Helper()
	token, _, err := f.jwtService.GenerateAccessToken(employeeID, role, false)
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginIsPublic(t *testing.T) {
	f := newRouterFixture(t)
	f.authStub.loginResp = auth.LoginResponse{
		Token:      "issued-token",
		EmployeeID: "emp-1",
		Role:       "employee",
	}

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"login_id": "DFALSM20230001",
		"password": "Dayflow@123",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "issued-token", data["token"])
}

func TestRouter_LoginFailureMapsToUnauthorized(t *testing.T) {
	f := newRouterFixture(t)
	f.authStub.loginErr = auth.ErrInvalidCredentials

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"login_id": "DFALSM20230001",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
}

func TestRouter_ProtectedRoutesRejectMissingToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{
		"/api/v1/employees",
		"/api/v1/attendance",
		"/api/v1/leaves",
		"/api/v1/auth/me",
	} {
		rec := f.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestRouter_ProtectedRoutesRejectGarbageToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/employees", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ExpiredTokenRejected(t *testing.T) {
	f := newRouterFixture(t)

	// Issued already expired, well past the validator's leeway.
	expiredService := jwt.NewJWTService("test-secret-key", "-1h")
	token, _, err := expiredService.GenerateAccessToken("emp-1", employee.RoleEmployee, false)
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/employees", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_TokenSignedWithOtherKeyRejected(t *testing.T) {
	f := newRouterFixture(t)

	otherService := jwt.NewJWTService("other-secret-key", "24h")
	token, _, err := otherService.GenerateAccessToken("emp-1", employee.RoleEmployee, false)
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/employees", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthenticatedEmployeeCanList(t *testing.T) {
	f := newRouterFixture(t)
	f.empStub.listViews = []employee.EmployeeView{{ID: "emp-1", LoginID: "DFALSM20230001"}}

	token := f.tokenFor(t, "emp-1", employee.RoleEmployee)
	rec := f.do(t, http.MethodGet, "/api/v1/employees", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
}

func TestRouter_OnboardingRequiresPrivilege(t *testing.T) {
	f := newRouterFixture(t)
	f.empStub.createView = employee.EmployeeView{ID: "emp-new", LoginID: "DFCAWI20240001"}

	body := map[string]any{
		"first_name":      "Carol",
		"last_name":       "Williams",
		"email":           "carol.williams@dayflow.com",
		"date_of_joining": "2024-01-15",
	}

	rec := f.do(t, http.MethodPost, "/api/v1/employees", f.tokenFor(t, "emp-1", employee.RoleEmployee), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/employees", f.tokenFor(t, "hr-1", employee.RoleHR), body)
	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "DFCAWI20240001", data["login_id"])
}

func TestRouter_AttendanceRecordingRequiresPrivilege(t *testing.T) {
	f := newRouterFixture(t)

	body := map[string]any{"employee_id": "emp-1", "date": "2025-01-15"}

	rec := f.do(t, http.MethodPost, "/api/v1/attendance", f.tokenFor(t, "emp-1", employee.RoleEmployee), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/attendance", f.tokenFor(t, "admin-1", employee.RoleAdmin), body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_LeaveDecisionRequiresPrivilege(t *testing.T) {
	f := newRouterFixture(t)

	body := map[string]any{"status": "approved"}

	rec := f.do(t, http.MethodPut, "/api/v1/leaves/lv-1/status", f.tokenFor(t, "emp-1", employee.RoleEmployee), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/leaves/lv-1/status", f.tokenFor(t, "hr-1", employee.RoleHR), body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LeaveBalanceReachable(t *testing.T) {
	f := newRouterFixture(t)

	token := f.tokenFor(t, "emp-1", employee.RoleEmployee)
	rec := f.do(t, http.MethodGet, "/api/v1/leaves/balance/emp-1", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(24), data["paid_time_off"])
	assert.Equal(t, float64(7), data["sick_leave"])
}

func TestRouter_MalformedBodyIsBadRequest(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

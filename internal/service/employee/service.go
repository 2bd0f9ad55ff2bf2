package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/identifier"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/policy"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/vault"
	"github.com/shopspring/decimal"
)

// maxIssueAttempts bounds the login-ID collision retry loop. The unique
// index on employees.login_id is the second line of defense behind the
// atomic counter; hitting it more than a couple of times means something
// is genuinely wrong, so the conflict is surfaced instead.
const maxIssueAttempts = 3

var monthsPerYear = decimal.NewFromInt(12)

type EmployeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	generator       identifier.Generator
	vault           vault.Vault
	defaultPassword string
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	generator identifier.Generator,
	credentialVault vault.Vault,
	defaultPassword string,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:    employeeRepo,
		generator:       generator,
		vault:           credentialVault,
		defaultPassword: defaultPassword,
	}
}

// CreateEmployee implements employee.EmployeeService. The new record
// gets a generated login ID and the default initial password with the
// rotation flag set, so first login forces a password change.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	if !policy.IsPrivileged(caller.Role) {
		return employee.EmployeeView{}, employee.ErrNotAuthorized
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeView{}, err
	}

	dateOfJoining, _ := validator.IsValidDate(req.DateOfJoining)

	passwordHash, err := s.vault.Hash(s.defaultPassword)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	newEmployee := employee.Employee{
		PasswordHash:       passwordHash,
		MustChangePassword: true,
		IsActive:           true,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Mobile:             req.Mobile,
		JobPosition:        req.JobPosition,
		Department:         req.Department,
		Manager:            req.Manager,
		Location:           req.Location,
		DateOfBirth:        parseDatePtr(req.DateOfBirth),
		Address:            req.Address,
		Nationality:        req.Nationality,
		PersonalEmail:      req.PersonalEmail,
		Gender:             req.Gender,
		MaritalStatus:      req.MaritalStatus,
		DateOfJoining:      dateOfJoining,
		Role:               employee.RoleEmployee,
		Status:             employee.StatusAbsent,
		MonthlyWage:        derefDecimal(req.MonthlyWage),
		BaseSalary:         derefDecimal(req.BaseSalary),
		HRA:                derefDecimal(req.HRA),
		StandardAllowance:  derefDecimal(req.StandardAllowance),
		PerformanceBonus:   derefDecimal(req.PerformanceBonus),
		TravelAllowance:    derefDecimal(req.TravelAllowance),
		PFEmployeePercent:  derefDecimal(req.PFEmployeePercent),
		PFEmployerPercent:  derefDecimal(req.PFEmployerPercent),
		TaxDeductions:      derefDecimal(req.TaxDeductions),
	}

	if req.Role != "" {
		newEmployee.Role = employee.Role(req.Role)
	}

	// Derived totals are computed at creation time, not on read.
	newEmployee.YearlyWage = newEmployee.MonthlyWage.Mul(monthsPerYear)

	// A duplicate login ID means a concurrent creation claimed the same
	// serial through a non-atomic path; issue a fresh one and try again.
	// Email conflicts are caller mistakes and are never retried.
	var created employee.Employee
	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		loginID, err := s.generator.Issue(ctx, req.FirstName, req.LastName, dateOfJoining.Year())
		if err != nil {
			return employee.EmployeeView{}, err
		}
		newEmployee.LoginID = loginID

		created, err = s.employeeRepo.Create(ctx, newEmployee)
		if err == nil {
			break
		}
		if errors.Is(err, employee.ErrLoginIDExists) {
			slog.Warn("login ID collision, reissuing",
				slog.String("login_id", loginID),
				slog.Int("attempt", attempt),
			)
			if attempt == maxIssueAttempts {
				return employee.EmployeeView{}, employee.ErrLoginIDExists
			}
			continue
		}
		return employee.EmployeeView{}, err
	}

	return employee.NewEmployeeView(created, true), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	includeCompensation := policy.CanViewCompensation(caller.Role, caller.EmployeeID, emp.ID)
	return employee.NewEmployeeView(emp, includeCompensation), nil
}

// ListEmployees implements employee.EmployeeService. Everyone sees the
// whole directory; compensation is filtered per row.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]employee.EmployeeView, 0, len(employees))
	for _, emp := range employees {
		includeCompensation := policy.CanViewCompensation(caller.Role, caller.EmployeeID, emp.ID)
		views = append(views, employee.NewEmployeeView(emp, includeCompensation))
	}

	return views, nil
}

// UpdateEmployee implements employee.EmployeeService. A request touching
// any field outside the caller's allow-list is rejected whole, never
// silently filtered down to the permitted subset.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	if !policy.CanUpdateEmployee(caller.Role, caller.EmployeeID, req.ID) {
		return employee.EmployeeView{}, employee.ErrNotAuthorized
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeView{}, err
	}

	if denied := policy.DisallowedUpdateFields(caller.Role, req.ProvidedFields()); len(denied) > 0 {
		return employee.EmployeeView{}, fmt.Errorf("%w: %v", employee.ErrFieldNotAllowed, denied)
	}

	fields := buildUpdateFields(req)
	if len(fields) > 0 {
		if err := s.employeeRepo.Update(ctx, req.ID, fields); err != nil {
			return employee.EmployeeView{}, err
		}
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	includeCompensation := policy.CanViewCompensation(caller.Role, caller.EmployeeID, updated.ID)
	return employee.NewEmployeeView(updated, includeCompensation), nil
}

// PreviewLoginID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) PreviewLoginID(ctx context.Context, req employee.PreviewLoginIDRequest) (employee.LoginIDPreview, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return employee.LoginIDPreview{}, err
	}

	if !policy.IsPrivileged(caller.Role) {
		return employee.LoginIDPreview{}, employee.ErrNotAuthorized
	}

	if err := req.Validate(); err != nil {
		return employee.LoginIDPreview{}, err
	}

	loginID, err := s.generator.Preview(ctx, req.FirstName, req.LastName, req.Year)
	if err != nil {
		return employee.LoginIDPreview{}, err
	}

	return employee.LoginIDPreview{LoginID: loginID}, nil
}

// buildUpdateFields maps the provided request fields onto table columns.
// A monthly wage change carries the recomputed yearly wage in the same
// map, so both land in one UPDATE statement.
func buildUpdateFields(req employee.UpdateEmployeeRequest) map[string]interface{} {
	fields := make(map[string]interface{})

	setString := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setDecimal := func(col string, v *decimal.Decimal) {
		if v != nil {
			fields[col] = *v
		}
	}

	setString("first_name", req.FirstName)
	setString("last_name", req.LastName)
	setString("email", req.Email)
	setString("mobile", req.Mobile)
	setString("job_position", req.JobPosition)
	setString("department", req.Department)
	setString("manager", req.Manager)
	setString("location", req.Location)
	setString("address", req.Address)
	setString("nationality", req.Nationality)
	setString("personal_email", req.PersonalEmail)
	setString("gender", req.Gender)
	setString("marital_status", req.MaritalStatus)
	setString("role", req.Role)
	setString("profile_image", req.ProfileImage)

	if req.DateOfBirth != nil {
		if date, ok := validator.IsValidDate(*req.DateOfBirth); ok {
			fields["date_of_birth"] = date
		}
	}
	if req.DateOfJoining != nil {
		if date, ok := validator.IsValidDate(*req.DateOfJoining); ok {
			fields["date_of_joining"] = date
		}
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if req.MonthlyWage != nil {
		fields["monthly_wage"] = *req.MonthlyWage
		fields["yearly_wage"] = req.MonthlyWage.Mul(monthsPerYear)
	}
	setDecimal("base_salary", req.BaseSalary)
	setDecimal("hra", req.HRA)
	setDecimal("standard_allowance", req.StandardAllowance)
	setDecimal("performance_bonus", req.PerformanceBonus)
	setDecimal("travel_allowance", req.TravelAllowance)
	setDecimal("pf_employee_percent", req.PFEmployeePercent)
	setDecimal("pf_employer_percent", req.PFEmployerPercent)
	setDecimal("tax_deductions", req.TaxDeductions)

	return fields
}

func parseDatePtr(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	date, ok := validator.IsValidDate(*value)
	if !ok {
		return nil
	}
	return &date
}

func derefDecimal(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

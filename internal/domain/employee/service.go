package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee onboards a new employee with a generated login ID
	// and the default initial password (admin/hr only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeView, error)

	// GetEmployee retrieves a single employee (compensation scoped by role)
	GetEmployee(ctx context.Context, id string) (EmployeeView, error)

	// ListEmployees lists all employees (compensation scoped by role)
	ListEmployees(ctx context.Context) ([]EmployeeView, error)

	// UpdateEmployee updates an employee (admin/hr OR same employee,
	// limited to the self-service fields)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeView, error)

	// PreviewLoginID computes the login ID the next onboarding would get,
	// without consuming a serial (admin/hr only)
	PreviewLoginID(ctx context.Context, req PreviewLoginIDRequest) (LoginIDPreview, error)
}

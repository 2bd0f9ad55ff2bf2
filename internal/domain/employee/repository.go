package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByLoginID(ctx context.Context, loginID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateCredentials(ctx context.Context, id string, passwordHash string, mustChangePassword bool) error
}

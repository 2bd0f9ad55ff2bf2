package auth

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	Me(ctx context.Context) (employee.EmployeeView, error)
}

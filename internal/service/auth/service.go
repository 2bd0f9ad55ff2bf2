package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/metrics"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/vault"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
	vault vault.Vault
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service, credentialVault vault.Vault) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		vault:              credentialVault,
	}
}

// Login implements auth.AuthService. A missing login ID and a wrong
// password produce the same error, so callers cannot probe which login
// IDs exist.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			metrics.ObserveLoginAttempt("invalid_credentials")
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by login ID: %w", err)
	}

	if !a.vault.Verify(emp.PasswordHash, req.Password) {
		metrics.ObserveLoginAttempt("invalid_credentials")
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		metrics.ObserveLoginAttempt("inactive")
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.Role, emp.MustChangePassword)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	metrics.ObserveLoginAttempt("success")

	return auth.LoginResponse{
		Token:              token,
		EmployeeID:         emp.ID,
		Role:               string(emp.Role),
		Name:               emp.FullName(),
		MustChangePassword: emp.MustChangePassword,
		ExpiresAt:          expiresAt,
	}, nil
}

// ChangePassword implements auth.AuthService. The new hash and the
// cleared rotation flag are written in one statement, so the flag can
// never survive a successful password change.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if !a.vault.Verify(emp.PasswordHash, req.OldPassword) {
		return auth.ErrInvalidOldPassword
	}

	newHash, err := a.vault.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := a.EmployeeRepository.UpdateCredentials(ctx, emp.ID, newHash, false); err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}

	return nil
}

// Me implements auth.AuthService. Callers always see their own full
// record, compensation included.
func (a *AuthServiceImpl) Me(ctx context.Context) (employee.EmployeeView, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return employee.EmployeeView{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return employee.EmployeeView{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.NewEmployeeView(emp, true), nil
}

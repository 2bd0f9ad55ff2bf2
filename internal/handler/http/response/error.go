package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/identifier"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every error leaving
// a service resolves to a stable status here; anything unrecognized is a
// 500 with no detail leaked to the caller.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid login credentials")
	case errors.Is(err, auth.ErrInvalidOldPassword):
		Unauthorized(w, "Invalid old password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrLoginIDExists):
		Conflict(w, "Login ID already exists")
	case errors.Is(err, employee.ErrNotAuthorized):
		Forbidden(w, "Not authorized for this operation")
	case errors.Is(err, employee.ErrFieldNotAllowed):
		Forbidden(w, "Field not allowed for self-service update")

	// Identifier domain errors
	case errors.Is(err, identifier.ErrNameTooShort):
		ValidationError(w, map[string]string{
			"name": "first and last names must be at least 2 characters",
		})

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package auth

import (
	"strings"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{LoginID: "DFALSM20230001", Password: "Dayflow@123"}
	assert.NoError(t, req.Validate())

	empty := LoginRequest{}
	err := empty.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestChangePasswordRequestValidate(t *testing.T) {
	valid := ChangePasswordRequest{OldPassword: "Dayflow@123", NewPassword: "NewSecret1"}
	assert.NoError(t, valid.Validate())

	short := ChangePasswordRequest{OldPassword: "Dayflow@123", NewPassword: "short"}
	assert.Error(t, short.Validate())
}

func TestChangePasswordRequestValidateBcryptBound(t *testing.T) {
	// bcrypt refuses inputs over 72 bytes, so validation has to stop
	// them before they reach the hasher as an internal error.
	tooLong := ChangePasswordRequest{
		OldPassword: "Dayflow@123",
		NewPassword: strings.Repeat("a", 100),
	}
	err := tooLong.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "new_password", errs[0].Field)

	atBound := ChangePasswordRequest{
		OldPassword: "Dayflow@123",
		NewPassword: strings.Repeat("a", 72),
	}
	assert.NoError(t, atBound.Validate())
}

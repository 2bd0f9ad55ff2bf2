package jwt

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(employeeID string, role employee.Role, mustChangePassword bool) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey     string
	tokenDuration string
	tokenAuth     *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, tokenDuration string) Service {
	return &JWTService{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
		tokenAuth:     jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string, role employee.Role, mustChangePassword bool) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.tokenDuration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":                  employeeID,
		"role":                 string(role),
		"must_change_password": mustChangePassword,
		"type":                 "access",
		"exp":                  expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// Caller identifies the authenticated employee behind a request.
type Caller struct {
	EmployeeID         string
	Role               employee.Role
	MustChangePassword bool
}

// CallerFromContext extracts the authenticated caller from the verified
// token claims placed on the context by the jwtauth middleware.
func CallerFromContext(ctx context.Context) (Caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Caller{}, auth.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Caller{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Caller{}, auth.ErrInvalidToken
	}

	mustChange, _ := claims["must_change_password"].(bool)

	return Caller{
		EmployeeID:         sub,
		Role:               employee.Role(role),
		MustChangePassword: mustChange,
	}, nil
}

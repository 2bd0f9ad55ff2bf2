package middleware

import (
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/policy"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// PrivilegedOnly requires an admin or hr role. Services re-check the
// policy themselves; this just rejects obviously unauthorized requests
// before they reach one.
func PrivilegedOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, employee.ErrNotAuthorized)
			return
		}

		if !policy.IsPrivileged(employee.Role(roleStr)) {
			response.HandleError(w, employee.ErrNotAuthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

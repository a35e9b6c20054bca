package middleware

import (
	"context"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

// CallerFromContext resolves the verified token claims into the explicit
// auth.Caller every service operation takes. This is the only place identity
// crosses from the transport into the business core.
func CallerFromContext(ctx context.Context) (auth.Caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !auth.ValidRole(roleStr) {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	return auth.Caller{
		EmployeeID: employeeID,
		Role:       auth.Role(roleStr),
	}, nil
}

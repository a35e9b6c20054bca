package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, string, employee.UpdateEmployeeRequest, *string) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (f *fakeEmployeeRepo) ExistsByID(context.Context, string) (bool, error)    { return false, nil }

func (f *fakeEmployeeRepo) ListAll(context.Context) ([]employee.Employee, error)    { return nil, nil }
func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListActiveByManager(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) GetManagerChain(context.Context, string) ([]string, error) {
	return nil, nil
}

func testService(t *testing.T, active bool) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"dev@acme.test": {
			ID:           "emp-1",
			Email:        "dev@acme.test",
			PasswordHash: string(hash),
			FullName:     "Dev",
			Role:         auth.RoleEmployee,
			IsActive:     active,
		},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "12h"))
}

func TestLogin(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		svc := testService(t, true)

		resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "dev@acme.test", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "employee", resp.Role)
		assert.Equal(t, "emp-1", resp.Employee.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := testService(t, true)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "dev@acme.test", Password: "nope"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		svc := testService(t, true)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ghost@acme.test", Password: "secret1"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc := testService(t, false)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "dev@acme.test", Password: "secret1"})
		assert.ErrorIs(t, err, auth.ErrAccountInactive)
	})

	t.Run("malformed request", func(t *testing.T) {
		svc := testService(t, true)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "secret1"})
		assert.Error(t, err)
	})
}

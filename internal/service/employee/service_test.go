package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
	nextID    int
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
	for i := range employees {
		e := employees[i]
		f.employees[e.ID] = &e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return *e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return *e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.nextID++
	e.ID = fmt.Sprintf("emp-%d", f.nextID)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.employees[e.ID] = &e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, req employee.UpdateEmployeeRequest, passwordHash *string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Role != nil {
		e.Role = auth.Role(*req.Role)
	}
	if req.ManagerID.Set {
		e.ManagerID = req.ManagerID.Value
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	if passwordHash != nil {
		e.PasswordHash = *passwordHash
	}
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) ListAll(context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActiveByManager(_ context.Context, managerID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive && e.ManagerID != nil && *e.ManagerID == managerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetManagerChain(_ context.Context, employeeID string) ([]string, error) {
	var chain []string
	visited := map[string]bool{employeeID: true}
	current, ok := f.employees[employeeID]
	for ok && current.ManagerID != nil {
		id := *current.ManagerID
		if visited[id] {
			break
		}
		visited[id] = true
		chain = append(chain, id)
		current, ok = f.employees[id]
	}
	return chain, nil
}

func strPtr(s string) *string { return &s }

func testOrg() *fakeEmployeeRepo {
	joined := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return newFakeEmployeeRepo(
		employee.Employee{ID: "ceo", Email: "ceo@acme.test", FullName: "CEO", Role: auth.RoleManager, JoinedOn: joined, IsActive: true},
		employee.Employee{ID: "lead", Email: "lead@acme.test", FullName: "Lead", Role: auth.RoleManager, ManagerID: strPtr("ceo"), JoinedOn: joined, IsActive: true},
		employee.Employee{ID: "dev", Email: "dev@acme.test", FullName: "Dev", Role: auth.RoleEmployee, ManagerID: strPtr("lead"), JoinedOn: joined, IsActive: true},
		employee.Employee{ID: "gone", Email: "gone@acme.test", FullName: "Gone", Role: auth.RoleEmployee, JoinedOn: joined, IsActive: false},
	)
}

func TestList(t *testing.T) {
	svc := NewEmployeeService(testOrg())

	t.Run("any role sees active employees only", func(t *testing.T) {
		labels, err := svc.List(context.Background(), auth.Caller{EmployeeID: "dev", Role: auth.RoleEmployee})
		require.NoError(t, err)
		assert.Len(t, labels, 3)
	})

	t.Run("unknown role is forbidden", func(t *testing.T) {
		_, err := svc.List(context.Background(), auth.Caller{EmployeeID: "x", Role: auth.Role("guest")})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestTeam(t *testing.T) {
	svc := NewEmployeeService(testOrg())

	t.Run("manager sees direct reports", func(t *testing.T) {
		members, err := svc.Team(context.Background(), auth.Caller{EmployeeID: "lead", Role: auth.RoleManager})
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "dev", members[0].ID)
	})

	t.Run("admin sees everyone active", func(t *testing.T) {
		members, err := svc.Team(context.Background(), auth.Caller{EmployeeID: "ceo", Role: auth.RoleAdmin})
		require.NoError(t, err)
		assert.Len(t, members, 3)
	})

	t.Run("employees are forbidden", func(t *testing.T) {
		_, err := svc.Team(context.Background(), auth.Caller{EmployeeID: "dev", Role: auth.RoleEmployee})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestProfile(t *testing.T) {
	svc := NewEmployeeService(testOrg())

	t.Run("joins the manager name", func(t *testing.T) {
		profile, err := svc.Profile(context.Background(), auth.Caller{EmployeeID: "dev", Role: auth.RoleEmployee})
		require.NoError(t, err)
		require.NotNil(t, profile.Manager)
		assert.Equal(t, "Lead", *profile.Manager)
		assert.Equal(t, "2024-06-01", profile.JoinedOn)
	})

	t.Run("no manager means nil", func(t *testing.T) {
		profile, err := svc.Profile(context.Background(), auth.Caller{EmployeeID: "ceo", Role: auth.RoleManager})
		require.NoError(t, err)
		assert.Nil(t, profile.Manager)
	})
}

func TestAdminCreate(t *testing.T) {
	admin := auth.Caller{EmployeeID: "ceo", Role: auth.RoleAdmin}

	valid := employee.CreateEmployeeRequest{
		Email:    "new@acme.test",
		Password: "secret1",
		FullName: "New Hire",
	}

	t.Run("creates with defaults", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		resp, err := svc.AdminCreate(context.Background(), admin, valid)
		require.NoError(t, err)
		assert.Equal(t, "employee", resp.Role)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		dup := valid
		dup.Email = "dev@acme.test"
		_, err := svc.AdminCreate(context.Background(), admin, dup)
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("unknown manager is rejected", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		req := valid
		req.ManagerID = strPtr("ghost")
		_, err := svc.AdminCreate(context.Background(), admin, req)
		assert.ErrorIs(t, err, employee.ErrManagerNotFound)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		req := valid
		req.Password = "abc"
		_, err := svc.AdminCreate(context.Background(), admin, req)
		assert.Error(t, err)
	})

	t.Run("non-admins are forbidden", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		_, err := svc.AdminCreate(context.Background(), auth.Caller{EmployeeID: "lead", Role: auth.RoleManager}, valid)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestAdminUpdate(t *testing.T) {
	admin := auth.Caller{EmployeeID: "ceo", Role: auth.RoleAdmin}

	t.Run("reassigns the manager", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		resp, err := svc.AdminUpdate(context.Background(), admin, "dev", employee.UpdateEmployeeRequest{ManagerID: employee.OptionalString{Set: true, Value: strPtr("ceo")}})
		require.NoError(t, err)
		require.NotNil(t, resp.ManagerID)
		assert.Equal(t, "ceo", *resp.ManagerID)
	})

	t.Run("clears the manager with an explicit null", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		resp, err := svc.AdminUpdate(context.Background(), admin, "dev", employee.UpdateEmployeeRequest{ManagerID: employee.OptionalString{Set: true}})
		require.NoError(t, err)
		assert.Nil(t, resp.ManagerID)
	})

	t.Run("self-management is rejected", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		_, err := svc.AdminUpdate(context.Background(), admin, "dev", employee.UpdateEmployeeRequest{ManagerID: employee.OptionalString{Set: true, Value: strPtr("dev")}})
		assert.ErrorIs(t, err, employee.ErrOwnManager)
	})

	t.Run("a reporting cycle is rejected", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		// dev reports to lead reports to ceo; pointing ceo at dev would close
		// the loop.
		_, err := svc.AdminUpdate(context.Background(), admin, "ceo", employee.UpdateEmployeeRequest{ManagerID: employee.OptionalString{Set: true, Value: strPtr("dev")}})
		assert.ErrorIs(t, err, employee.ErrInvalidHierarchy)
	})

	t.Run("unknown manager is rejected", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		_, err := svc.AdminUpdate(context.Background(), admin, "dev", employee.UpdateEmployeeRequest{ManagerID: employee.OptionalString{Set: true, Value: strPtr("ghost")}})
		assert.ErrorIs(t, err, employee.ErrManagerNotFound)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		name := strPtr("Nobody")
		_, err := svc.AdminUpdate(context.Background(), admin, "ghost", employee.UpdateEmployeeRequest{FullName: name})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("deactivation keeps the record", func(t *testing.T) {
		svc := NewEmployeeService(testOrg())

		inactive := false
		resp, err := svc.AdminUpdate(context.Background(), admin, "dev", employee.UpdateEmployeeRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)

		labels, err := svc.List(context.Background(), auth.Caller{EmployeeID: "lead", Role: auth.RoleManager})
		require.NoError(t, err)
		for _, l := range labels {
			assert.NotEqual(t, "dev", l.ID)
		}
	})
}

func TestInReportSubtree(t *testing.T) {
	svc := NewEmployeeService(testOrg())

	cases := []struct {
		manager  string
		employee string
		want     bool
	}{
		{"lead", "dev", true},
		{"ceo", "dev", true},
		{"ceo", "lead", true},
		{"lead", "ceo", false},
		{"dev", "lead", false},
		{"lead", "gone", false},
	}
	for _, tc := range cases {
		got, err := svc.InReportSubtree(context.Background(), tc.manager, tc.employee)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.manager, tc.employee)
	}
}

// Package fixtures seeds a development database with a small demo
// organization so the API is explorable right after first boot.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/domain/holiday"
	"github.com/nimbushr/ems-backend-go/internal/domain/project"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
	"github.com/nimbushr/ems-backend-go/internal/repository/postgresql"
)

type Repositories struct {
	Employees   employee.EmployeeRepository
	Holidays    holiday.HolidayRepository
	Projects    project.ProjectRepository
	Memberships project.MembershipRepository
}

type demoEmployee struct {
	email      string
	password   string
	fullName   string
	title      string
	department string
	role       auth.Role
	joinedDays int
}

var demoEmployees = []demoEmployee{
	{"admin@company.com", "admin123", "Admin User", "HR Manager", "HR", auth.RoleAdmin, 730},
	{"lead@company.com", "lead123", "Team Lead", "Engineering Manager", "Engineering", auth.RoleManager, 900},
	{"employee@company.com", "employee123", "Demo Employee", "Software Engineer", "Engineering", auth.RoleEmployee, 400},
	{"analyst@company.com", "analyst123", "Business Analyst", "Analyst", "Operations", auth.RoleEmployee, 500},
}

// SeedDemoData populates an empty database with a demo org: an admin, a
// manager with two reports, two projects with allocations and a couple of
// upcoming holidays. A non-empty employees table disables it, so it is safe
// to run on every boot. Everything lands in one transaction.
func SeedDemoData(ctx context.Context, db *database.DB, repos Repositories) error {
	existing, err := repos.Employees.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect employees: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		created := make(map[string]employee.Employee, len(demoEmployees))
		for _, d := range demoEmployees {
			hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}
			e, err := repos.Employees.Create(txCtx, employee.Employee{
				Email:        d.email,
				PasswordHash: string(hash),
				FullName:     d.fullName,
				Title:        d.title,
				Department:   d.department,
				Role:         d.role,
				JoinedOn:     today.AddDate(0, 0, -d.joinedDays),
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", d.email, err)
			}
			created[d.email] = e
		}

		// Both reports hang off the team lead.
		lead := created["lead@company.com"]
		for _, email := range []string{"employee@company.com", "analyst@company.com"} {
			report := created[email]
			err := repos.Employees.Update(txCtx, report.ID, employee.UpdateEmployeeRequest{
				ManagerID: employee.OptionalString{Set: true, Value: &lead.ID},
			}, nil)
			if err != nil {
				return fmt.Errorf("failed to link %s to manager: %w", email, err)
			}
		}

		platform, err := repos.Projects.Create(txCtx, project.Project{
			Code:        "EMS-PLATFORM",
			Name:        "Employee Management Platform",
			Description: "Core platform modernization and automations",
			Status:      project.ProjectStatusActive,
			StartDate:   today.AddDate(0, 0, -120),
		})
		if err != nil {
			return fmt.Errorf("failed to seed project: %w", err)
		}
		mobile, err := repos.Projects.Create(txCtx, project.Project{
			Code:        "MOB-APP",
			Name:        "Mobile Self Service",
			Description: "Self-service app for attendance and leave",
			Status:      project.ProjectStatusActive,
			StartDate:   today.AddDate(0, 0, -60),
		})
		if err != nil {
			return fmt.Errorf("failed to seed project: %w", err)
		}

		memberships := []project.Membership{
			{ProjectID: platform.ID, EmployeeID: lead.ID, AllocationPercent: 40},
			{ProjectID: platform.ID, EmployeeID: created["employee@company.com"].ID, AllocationPercent: 80},
			{ProjectID: mobile.ID, EmployeeID: created["analyst@company.com"].ID, AllocationPercent: 70},
		}
		for _, m := range memberships {
			if _, err := repos.Memberships.Upsert(txCtx, m); err != nil {
				return fmt.Errorf("failed to seed project member: %w", err)
			}
		}

		holidays := []holiday.Holiday{
			{Name: "Spring Festival", HolidayDate: today.AddDate(0, 0, 10), Description: "Company-wide holiday"},
			{Name: "Founders Day", HolidayDate: today.AddDate(0, 0, 35), Description: "Annual celebration"},
		}
		for _, h := range holidays {
			if _, _, err := repos.Holidays.Create(txCtx, h); err != nil {
				return fmt.Errorf("failed to seed holiday: %w", err)
			}
		}

		return nil
	})
}

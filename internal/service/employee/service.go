package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, caller auth.Caller) ([]employee.Label, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionDirectoryView) {
		return nil, auth.ErrForbidden
	}

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	labels := make([]employee.Label, 0, len(employees))
	for _, e := range employees {
		labels = append(labels, employee.ToLabel(e))
	}
	return labels, nil
}

// Team implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Team(ctx context.Context, caller auth.Caller) ([]employee.TeamMember, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionTeamView) {
		return nil, auth.ErrForbidden
	}

	var (
		employees []employee.Employee
		err       error
	)
	if caller.IsAdmin() {
		employees, err = s.EmployeeRepository.ListActive(ctx)
	} else {
		employees, err = s.EmployeeRepository.ListActiveByManager(ctx, caller.EmployeeID)
	}
	if err != nil {
		return nil, err
	}

	members := make([]employee.TeamMember, 0, len(employees))
	for _, e := range employees {
		members = append(members, employee.TeamMember{
			Label:   employee.ToLabel(e),
			Manager: e.ManagerName,
		})
	}
	return members, nil
}

// Profile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Profile(ctx context.Context, caller auth.Caller) (employee.ProfileResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	var managerName *string
	if emp.ManagerID != nil {
		manager, err := s.EmployeeRepository.GetByID(ctx, *emp.ManagerID)
		if err == nil {
			managerName = &manager.FullName
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ProfileResponse{}, err
		}
	}

	return employee.ProfileResponse{
		ID:         emp.ID,
		Email:      emp.Email,
		FullName:   emp.FullName,
		Title:      emp.Title,
		Department: emp.Department,
		Role:       string(emp.Role),
		JoinedOn:   emp.JoinedOn.Format("2006-01-02"),
		Manager:    managerName,
	}, nil
}

// AdminList implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AdminList(ctx context.Context, caller auth.Caller) ([]employee.AdminEmployeeResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionEmployeeManage) {
		return nil, auth.ErrForbidden
	}

	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.AdminEmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToAdminResponse(e))
	}
	return responses, nil
}

// AdminCreate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AdminCreate(ctx context.Context, caller auth.Caller, req employee.CreateEmployeeRequest) (employee.AdminEmployeeResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionEmployeeManage) {
		return employee.AdminEmployeeResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return employee.AdminEmployeeResponse{}, err
	}

	emailTaken, err := s.EmployeeRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.AdminEmployeeResponse{}, err
	}
	if emailTaken {
		return employee.AdminEmployeeResponse{}, employee.ErrEmailExists
	}

	if req.ManagerID != nil {
		managerExists, err := s.EmployeeRepository.ExistsByID(ctx, *req.ManagerID)
		if err != nil {
			return employee.AdminEmployeeResponse{}, err
		}
		if !managerExists {
			return employee.AdminEmployeeResponse{}, employee.ErrManagerNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.AdminEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := auth.RoleEmployee
	if req.Role != "" {
		role = auth.Role(req.Role)
	}

	joinedOn := time.Now().UTC()
	if req.JoinedOn != "" {
		joinedOn, err = time.Parse("2006-01-02", req.JoinedOn)
		if err != nil {
			return employee.AdminEmployeeResponse{}, fmt.Errorf("failed to parse joined on date: %w", err)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Title:        req.Title,
		Department:   req.Department,
		Role:         role,
		ManagerID:    req.ManagerID,
		JoinedOn:     joinedOn,
		IsActive:     isActive,
	})
	if err != nil {
		return employee.AdminEmployeeResponse{}, err
	}

	return employee.ToAdminResponse(created), nil
}

// AdminUpdate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AdminUpdate(ctx context.Context, caller auth.Caller, id string, req employee.UpdateEmployeeRequest) (employee.AdminEmployeeResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionEmployeeManage) {
		return employee.AdminEmployeeResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return employee.AdminEmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return employee.AdminEmployeeResponse{}, err
	}

	if req.ManagerID.Set && req.ManagerID.Value != nil {
		if err := s.checkManagerAssignment(ctx, id, *req.ManagerID.Value); err != nil {
			return employee.AdminEmployeeResponse{}, err
		}
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.AdminEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		passwordHash = &hashed
	}

	if err := s.EmployeeRepository.Update(ctx, id, req, passwordHash); err != nil {
		return employee.AdminEmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.AdminEmployeeResponse{}, err
	}
	return employee.ToAdminResponse(updated), nil
}

// checkManagerAssignment rejects manager links that would break the
// reporting tree: unknown managers, self-management, and cycles. A cycle
// would appear exactly when the employee already sits somewhere in the new
// manager's own chain.
func (s *EmployeeServiceImpl) checkManagerAssignment(ctx context.Context, employeeID, managerID string) error {
	if managerID == employeeID {
		return employee.ErrOwnManager
	}

	managerExists, err := s.EmployeeRepository.ExistsByID(ctx, managerID)
	if err != nil {
		return err
	}
	if !managerExists {
		return employee.ErrManagerNotFound
	}

	chain, err := s.EmployeeRepository.GetManagerChain(ctx, managerID)
	if err != nil {
		return err
	}
	for _, id := range chain {
		if id == employeeID {
			return employee.ErrInvalidHierarchy
		}
	}
	return nil
}

// InReportSubtree implements employee.EmployeeService.
func (s *EmployeeServiceImpl) InReportSubtree(ctx context.Context, managerID, employeeID string) (bool, error) {
	chain, err := s.EmployeeRepository.GetManagerChain(ctx, employeeID)
	if err != nil {
		return false, err
	}
	for _, id := range chain {
		if id == managerID {
			return true, nil
		}
	}
	return false, nil
}

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/domain/project"
)

// timeLogLimit caps the personal time log screen.
const timeLogLimit = 50

type ProjectServiceImpl struct {
	project.ProjectRepository
	project.MembershipRepository
	project.TimeLogRepository
	employee.EmployeeRepository
}

func NewProjectService(
	projectRepository project.ProjectRepository,
	membershipRepository project.MembershipRepository,
	timeLogRepository project.TimeLogRepository,
	employeeRepository employee.EmployeeRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		ProjectRepository:    projectRepository,
		MembershipRepository: membershipRepository,
		TimeLogRepository:    timeLogRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, caller auth.Caller, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionProjectManage) {
		return project.ProjectResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	codeTaken, err := s.ProjectRepository.ExistsByCode(ctx, req.Code)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if codeTaken {
		return project.ProjectResponse{}, project.ErrProjectCodeExists
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		endDate = &parsed
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Status:      project.ProjectStatusActive,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToProjectResponse(created, nil), nil
}

// AddMember implements project.ProjectService.
func (s *ProjectServiceImpl) AddMember(ctx context.Context, caller auth.Caller, projectID string, req project.AddMemberRequest) (project.MemberResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionProjectManage) {
		return project.MemberResponse{}, auth.ErrForbidden
	}
	if req.AllocationPercent < 1 || req.AllocationPercent > 100 {
		return project.MemberResponse{}, project.ErrInvalidAllocation
	}

	projectExists, err := s.ProjectRepository.ExistsByID(ctx, projectID)
	if err != nil {
		return project.MemberResponse{}, err
	}
	if !projectExists {
		return project.MemberResponse{}, project.ErrProjectNotFound
	}

	employeeExists, err := s.EmployeeRepository.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return project.MemberResponse{}, err
	}
	if !employeeExists {
		return project.MemberResponse{}, employee.ErrEmployeeNotFound
	}

	member, err := s.MembershipRepository.Upsert(ctx, project.Membership{
		ProjectID:         projectID,
		EmployeeID:        req.EmployeeID,
		AllocationPercent: req.AllocationPercent,
	})
	if err != nil {
		return project.MemberResponse{}, err
	}

	return project.MemberResponse{
		EmployeeID:        member.EmployeeID,
		EmployeeName:      member.EmployeeName,
		AllocationPercent: member.AllocationPercent,
	}, nil
}

// LogTime implements project.ProjectService.
// Membership is deliberately not required: anyone may log hours against any
// existing project.
func (s *ProjectServiceImpl) LogTime(ctx context.Context, caller auth.Caller, req project.LogTimeRequest) (project.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return project.TimeLogResponse{}, err
	}
	if req.Hours <= 0 || req.Hours > 24 {
		return project.TimeLogResponse{}, project.ErrInvalidHours
	}

	projectExists, err := s.ProjectRepository.ExistsByID(ctx, req.ProjectID)
	if err != nil {
		return project.TimeLogResponse{}, err
	}
	if !projectExists {
		return project.TimeLogResponse{}, project.ErrProjectNotFound
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return project.TimeLogResponse{}, fmt.Errorf("failed to parse work date: %w", err)
	}

	created, err := s.TimeLogRepository.Create(ctx, project.TimeLog{
		EmployeeID:  caller.EmployeeID,
		ProjectID:   req.ProjectID,
		WorkDate:    workDate,
		Hours:       req.Hours,
		Description: req.Description,
	})
	if err != nil {
		return project.TimeLogResponse{}, err
	}

	return project.ToTimeLogResponse(created), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, caller auth.Caller) ([]project.ProjectResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionProjectView) {
		return nil, auth.ErrForbidden
	}

	projects, err := s.ProjectRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		members, err := s.MembershipRepository.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, project.ToProjectResponse(p, members))
	}
	return responses, nil
}

// ListTimeLogs implements project.ProjectService.
func (s *ProjectServiceImpl) ListTimeLogs(ctx context.Context, caller auth.Caller) ([]project.TimeLogResponse, error) {
	logs, err := s.TimeLogRepository.ListByEmployee(ctx, caller.EmployeeID, timeLogLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]project.TimeLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, project.ToTimeLogResponse(l))
	}
	return responses, nil
}

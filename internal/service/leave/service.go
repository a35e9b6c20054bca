package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		EmployeeRepository:     employeeRepository,
	}
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, leave.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, caller auth.Caller, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: caller.EmployeeID,
		Reason:     req.Reason,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// AdminCreate implements leave.LeaveService.
func (s *LeaveServiceImpl) AdminCreate(ctx context.Context, caller auth.Caller, req leave.AdminCreateLeaveRequest) (leave.LeaveResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionLeaveCreateAny) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	status := leave.StatusPending
	if req.Status != "" {
		if !leave.ValidStatus(req.Status) {
			return leave.LeaveResponse{}, leave.ErrInvalidStatus
		}
		status = leave.Status(req.Status)
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	exists, err := s.EmployeeRepository.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !exists {
		return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Reason:     req.Reason,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Review implements leave.LeaveService.
func (s *LeaveServiceImpl) Review(ctx context.Context, caller auth.Caller, leaveID string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionLeaveReview) {
		return leave.LeaveResponse{}, auth.ErrForbidden
	}

	decision := leave.Status(req.Status)
	if decision != leave.StatusApproved && decision != leave.StatusRejected {
		return leave.LeaveResponse{}, leave.ErrInvalidDecision
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !caller.IsAdmin() {
		inSubtree, err := s.inReportSubtree(ctx, caller.EmployeeID, request.EmployeeID)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		if !inSubtree {
			return leave.LeaveResponse{}, auth.ErrForbidden
		}
	}

	ok, err := s.LeaveRequestRepository.DecideIfPending(ctx, leaveID, decision)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !ok {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = decision
	return leave.ToResponse(request), nil
}

// ListOwn implements leave.LeaveService.
func (s *LeaveServiceImpl) ListOwn(ctx context.Context, caller auth.Caller) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, caller auth.Caller) ([]leave.LeaveResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionLeaveViewAll) {
		return nil, auth.ErrForbidden
	}

	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListForReview implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForReview(ctx context.Context, caller auth.Caller) ([]leave.LeaveResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionLeaveReview) {
		return nil, auth.ErrForbidden
	}

	if caller.IsAdmin() {
		requests, err := s.LeaveRequestRepository.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toResponses(requests), nil
	}

	reportIDs, err := s.reportSubtree(ctx, caller.EmployeeID)
	if err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployees(ctx, reportIDs)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// inReportSubtree walks manager links upward from the employee and reports
// whether managerID sits anywhere in the chain.
func (s *LeaveServiceImpl) inReportSubtree(ctx context.Context, managerID, employeeID string) (bool, error) {
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

// reportSubtree collects every transitive report of the manager by a
// breadth-first walk over the directory's manager links.
func (s *LeaveServiceImpl) reportSubtree(ctx context.Context, managerID string) ([]string, error) {
	all, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	reports := make(map[string][]string, len(all))
	for _, e := range all {
		if e.ManagerID != nil {
			reports[*e.ManagerID] = append(reports[*e.ManagerID], e.ID)
		}
	}

	var subtree []string
	visited := map[string]bool{managerID: true}
	queue := []string{managerID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, id := range reports[current] {
			if visited[id] {
				continue
			}
			visited[id] = true
			subtree = append(subtree, id)
			queue = append(queue, id)
		}
	}
	return subtree, nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses
}

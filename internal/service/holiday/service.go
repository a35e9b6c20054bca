package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepository,
	}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, caller auth.Caller) ([]holiday.HolidayResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionHolidayView) {
		return nil, auth.ErrForbidden
	}

	holidays, err := s.HolidayRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, caller auth.Caller, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionHolidayManage) {
		return holiday.HolidayResponse{}, auth.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.HolidayDate)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	created, ok, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		HolidayDate: date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	if !ok {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	}

	return holiday.ToResponse(created), nil
}

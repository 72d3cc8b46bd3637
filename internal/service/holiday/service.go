package holiday

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/domain/holiday"
)

const (
	ActionAddHoliday    = "ADD_HOLIDAY"
	ActionDeleteHoliday = "DELETE_HOLIDAY"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	auditSink audit.Sink
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := holiday.Holiday{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Date:          req.Date,
		Description:   req.Description,
		CreatedByName: req.ActorName,
	}
	if req.ActorID != "" {
		h.CreatedBy = &req.ActorID
	}

	created, err := s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	s.auditSink.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		ActorName:  req.ActorName,
		Action:     ActionAddHoliday,
		TargetType: audit.TargetSystem,
		TargetID:   &created.ID,
		Details:    fmt.Sprintf("Added holiday: %s on %s", created.Description, created.Date),
		AfterData:  snapshot(created),
	})

	return holiday.ToResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, filter holiday.ListFilter) ([]holiday.HolidayResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	holidays, err := s.HolidayRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, req holiday.DeleteHolidayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	deleted, err := s.HolidayRepository.Delete(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	s.auditSink.Record(ctx, audit.Entry{
		ActorID:    req.ActorID,
		ActorName:  req.ActorName,
		Action:     ActionDeleteHoliday,
		TargetType: audit.TargetSystem,
		TargetID:   &deleted.ID,
		Details:    fmt.Sprintf("Deleted holiday: %s", deleted.Description),
		BeforeData: snapshot(deleted),
	})

	return nil
}

func snapshot(h holiday.Holiday) *string {
	b, err := json.Marshal(struct {
		Date        string `json:"date"`
		Description string `json:"description"`
	}{h.Date, h.Description})
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, auditSink audit.Sink) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
		auditSink:         auditSink,
	}
}

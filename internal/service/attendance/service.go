package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	leave.HalfDayChecker
	auditSink audit.Sink

	loc   *time.Location
	now   func() time.Time
	newID func() string
}

type Option func(*AttendanceServiceImpl)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) {
		s.now = now
	}
}

// WithIDGenerator replaces the record ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *AttendanceServiceImpl) {
		s.newID = newID
	}
}

// today returns the calendar date of now in the service location.
func (s *AttendanceServiceImpl) today(now time.Time) string {
	return now.In(s.loc).Format("2006-01-02")
}

// actor identifies who triggered an audited transition.
type actor struct {
	id   string
	name string
}

// apply executes the effects of a transition in order. Persistence errors abort,
// audit effects are handed to the sink and never fail the call.
func (s *AttendanceServiceImpl) apply(ctx context.Context, tr attendance.Transition, by actor) (attendance.AttendanceRecord, error) {
	record := tr.Record
	for _, effect := range tr.Effects {
		switch effect.Kind {
		case attendance.EffectCreate:
			created, err := s.AttendanceRepository.Create(ctx, record)
			if err != nil {
				return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance: %w", err)
			}
			record = created
		case attendance.EffectUpdate:
			updated, err := s.AttendanceRepository.Update(ctx, record)
			if err != nil {
				return attendance.AttendanceRecord{}, fmt.Errorf("failed to update attendance: %w", err)
			}
			record = updated
		case attendance.EffectAudit:
			targetID := record.ID
			s.auditSink.Record(ctx, audit.Entry{
				ActorID:    by.id,
				ActorName:  by.name,
				Action:     effect.Action,
				TargetType: audit.TargetAttendance,
				TargetID:   &targetID,
				Details:    effect.Details,
			})
		}
	}
	return record, nil
}

func (s *AttendanceServiceImpl) getToday(ctx context.Context, userID string, now time.Time) (*attendance.AttendanceRecord, error) {
	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, s.today(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return record, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := s.now().UTC()

	existing, err := s.getToday(ctx, req.UserID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	tr, err := attendance.ClockIn(existing, attendance.ClockInCommand{
		ID:       s.newID(),
		UserID:   req.UserID,
		Date:     s.today(now),
		Location: req.Location,
		Now:      now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.apply(ctx, tr, actor{id: req.UserID, name: req.ActorName})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := s.now().UTC()

	existing, err := s.getToday(ctx, req.UserID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Reject early so the leave lookup only runs for a clock-out that can succeed
	if err := attendance.ValidateClockOut(existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	halfDay, err := s.HalfDayChecker.IsHalfDayApproved(ctx, existing.UserID, existing.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check half day leave: %w", err)
	}

	tr, err := attendance.ClockOut(existing, now, halfDay)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.apply(ctx, tr, actor{id: req.UserID, name: req.ActorName})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// StartBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.StartBreakRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := s.now().UTC()

	existing, err := s.getToday(ctx, req.UserID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	tr, err := attendance.StartBreak(existing, req.Type, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.apply(ctx, tr, actor{id: req.UserID})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, req attendance.EndBreakRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := s.now().UTC()

	existing, err := s.getToday(ctx, req.UserID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	tr, err := attendance.EndBreak(existing, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.apply(ctx, tr, actor{id: req.UserID})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	existing, err := s.getToday(ctx, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*existing)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.RecordFilter{
		UserID:    &filter.UserID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Limit:     attendance.HistoryLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return s.toResponses(s.reclassifyAll(ctx, records)), nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.RecordFilter{
		UserID:    filter.UserID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Limit:     attendance.ListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return s.toResponses(s.reclassifyAll(ctx, records)), nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	date := s.today(s.now().UTC())

	records, err := s.AttendanceRepository.List(ctx, attendance.RecordFilter{
		Date:          &date,
		SortByCheckIn: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	return s.toResponses(s.reclassifyAll(ctx, records)), nil
}

// Backfill implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Backfill(ctx context.Context, req attendance.BackfillRequest) (attendance.BackfillResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.BackfillResult{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, attendance.RecordFilter{
		UserID:    req.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Unflagged: true,
	})
	if err != nil {
		return attendance.BackfillResult{}, fmt.Errorf("failed to list unflagged attendance: %w", err)
	}

	var result attendance.BackfillResult
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Scanned++
		_, updated, err := s.reclassify(ctx, record)
		switch {
		case err != nil:
			result.Failed++
			slog.Warn("Failed to reclassify attendance", "attendance_id", record.ID, "error", err)
		case updated:
			result.Updated++
		}
	}

	slog.Info("Attendance backfill finished", "scanned", result.Scanned, "updated", result.Updated, "failed", result.Failed)
	return result, nil
}

// reclassify fills in totals and flags of a closed record that is missing them.
// Records that need nothing are returned unchanged with updated=false.
func (s *AttendanceServiceImpl) reclassify(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, bool, error) {
	if !attendance.NeedsReclassification(&record) {
		return record, false, nil
	}

	halfDay, err := s.HalfDayChecker.IsHalfDayApproved(ctx, record.UserID, record.Date)
	if err != nil {
		return record, false, fmt.Errorf("failed to check half day leave: %w", err)
	}

	tr, ok := attendance.Reclassify(&record, halfDay)
	if !ok {
		return record, false, nil
	}

	updated, err := s.apply(ctx, tr, actor{})
	if err != nil {
		return record, false, err
	}

	// Keep join columns the update does not return
	updated.UserName = record.UserName
	updated.UserDepartment = record.UserDepartment
	return updated, true, nil
}

// reclassifyAll runs reclassify over a listing. A row that fails is returned as stored.
func (s *AttendanceServiceImpl) reclassifyAll(ctx context.Context, records []attendance.AttendanceRecord) []attendance.AttendanceRecord {
	for i, record := range records {
		updated, _, err := s.reclassify(ctx, record)
		if err != nil {
			slog.Warn("Failed to reclassify attendance", "attendance_id", record.ID, "error", err)
			continue
		}
		records[i] = updated
	}
	return records
}

func (s *AttendanceServiceImpl) toResponses(records []attendance.AttendanceRecord) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	halfDayChecker leave.HalfDayChecker,
	auditSink audit.Sink,
	loc *time.Location,
	opts ...Option,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	s := &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		HalfDayChecker:       halfDayChecker,
		auditSink:            auditSink,
		loc:                  loc,
		now:                  time.Now,
		newID: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

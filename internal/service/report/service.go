package report

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	records, err := s.attendanceRepo.List(ctx, attendance.RecordFilter{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Department: req.Department,
	})
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	rows := make([]report.AttendanceReportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, toRow(r))
	}

	return report.AttendanceReport{
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Department:  req.Department,
		Rows:        rows,
	}, nil
}

func toRow(r attendance.AttendanceRecord) report.AttendanceReportRow {
	return report.AttendanceReportRow{
		Date:          r.Date,
		EmployeeID:    r.UserID,
		Name:          valueOr(r.UserName, "Unknown"),
		Department:    valueOr(r.UserDepartment, ""),
		Location:      valueOr(r.Location, ""),
		CheckIn:       formatTime(r.CheckIn),
		CheckOut:      formatTime(r.CheckOut),
		BreakCount:    len(r.Breaks),
		WorkedSeconds: r.TotalWorkedSeconds,
		LowTime:       report.YesNo(r.LowTimeFlag != nil && *r.LowTimeFlag),
		ExtraTime:     report.YesNo(r.ExtraTimeFlag != nil && *r.ExtraTimeFlag),
		Notes:         valueOr(r.Notes, ""),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

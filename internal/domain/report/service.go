package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate Attendance Report, one row per attendance record, newest date first
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}

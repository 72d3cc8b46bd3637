package report

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/report"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records    []attendance.AttendanceRecord
	lastFilter attendance.RecordFilter
}

func (s *stubAttendanceRepo) List(ctx context.Context, f attendance.RecordFilter) ([]attendance.AttendanceRecord, error) {
	s.lastFilter = f
	return s.records, nil
}

func strPtr(s string) *string { return &s }

func TestGenerateAttendanceReport(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	extra, low := true, false

	repo := &stubAttendanceRepo{records: []attendance.AttendanceRecord{
		{
			UserID:             "u1",
			Date:               "2025-03-10",
			CheckIn:            &in,
			CheckOut:           &out,
			Location:           strPtr("Office"),
			Breaks:             attendance.Breaks{{Start: in.Add(3 * time.Hour)}},
			TotalWorkedSeconds: 32400,
			LowTimeFlag:        &low,
			ExtraTimeFlag:      &extra,
			UserName:           strPtr("Jane Doe"),
			UserDepartment:     strPtr("Engineering"),
		},
		{
			UserID:  "u2",
			Date:    "2025-03-09",
			CheckIn: &in,
		},
	}}
	svc := &ReportServiceImpl{
		attendanceRepo: repo,
		now:            func() time.Time { return time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC) },
	}

	dept := "Engineering"
	got, err := svc.GenerateAttendanceReport(context.Background(), report.AttendanceReportRequest{Department: &dept})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-11T00:00:00Z", got.GeneratedAt)
	assert.Equal(t, &dept, repo.lastFilter.Department)
	require.Len(t, got.Rows, 2)

	assert.Equal(t, report.AttendanceReportRow{
		Date:          "2025-03-10",
		EmployeeID:    "u1",
		Name:          "Jane Doe",
		Department:    "Engineering",
		Location:      "Office",
		CheckIn:       "2025-03-10T09:00:00Z",
		CheckOut:      "2025-03-10T18:00:00Z",
		BreakCount:    1,
		WorkedSeconds: 32400,
		LowTime:       "No",
		ExtraTime:     "Yes",
	}, got.Rows[0])

	assert.Equal(t, "Unknown", got.Rows[1].Name)
	assert.Equal(t, "", got.Rows[1].CheckOut)
	assert.Equal(t, "No", got.Rows[1].LowTime)
	assert.Equal(t, "No", got.Rows[1].ExtraTime)
}

func TestGenerateAttendanceReport_InvalidRange(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{})
	start, end := "2025-03-10", "2025-02-01"

	_, err := svc.GenerateAttendanceReport(context.Background(), report.AttendanceReportRequest{StartDate: &start, EndDate: &end})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

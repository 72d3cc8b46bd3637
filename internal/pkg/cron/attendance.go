package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
)

const JobReclassifyAttendance = "reclassify_attendance"

// AttendanceJobs keeps stored attendance consistent in the background
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	interval          time.Duration
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, interval time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		interval:          interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(JobReclassifyAttendance, j.interval, j.ReclassifyLegacyRecords)
}

// ReclassifyLegacyRecords computes totals and flags for closed records stored without them.
func (j *AttendanceJobs) ReclassifyLegacyRecords(ctx context.Context) error {
	result, err := j.attendanceService.Backfill(ctx, attendance.BackfillRequest{})
	if err != nil {
		return fmt.Errorf("failed to backfill attendance: %w", err)
	}

	if result.Scanned > 0 {
		slog.Info("Cron: Reclassified legacy attendance",
			"scanned", result.Scanned,
			"updated", result.Updated,
			"failed", result.Failed,
		)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d attendance records could not be reclassified", result.Failed, result.Scanned)
	}

	return nil
}

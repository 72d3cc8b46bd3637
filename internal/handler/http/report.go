package http

import (
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/report"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance Report
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceReportRequest{
		StartDate:  optionalQuery(r, "start_date"),
		EndDate:    optionalQuery(r, "end_date"),
		Department: optionalQuery(r, "department"),
	}

	result, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

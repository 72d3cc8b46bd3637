package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	Backfill(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// decodeOptionalJSON decodes the body into v, treating an empty body as "{}".
func decodeOptionalJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req attendance.ClockInRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("Failed to decode clock in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = caller.ID
	req.ActorName = caller.Name

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), attendance.ClockOutRequest{
		UserID:    caller.ID,
		ActorName: caller.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// StartBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req attendance.StartBreakRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("Failed to decode start break request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = caller.ID

	result, err := h.attendanceService.StartBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", result)
}

// EndBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	result, err := h.attendanceService.EndBreak(r.Context(), attendance.EndBreakRequest{UserID: caller.ID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}

// GetToday implements AttendanceHandler.
// Responds with null data when the caller has not clocked in yet.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), caller.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.SuccessWithMessage(w, "Not clocked in today", nil)
		return
	}

	response.Success(w, result)
}

// GetHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	filter := attendance.HistoryFilter{
		UserID:    caller.ID,
		StartDate: optionalQuery(r, "start_date"),
		EndDate:   optionalQuery(r, "end_date"),
	}

	results, err := h.attendanceService.GetHistory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Limit:      attendance.HistoryLimit,
		TotalItems: int64(len(results)),
	})
}

// ListAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		UserID:    optionalQuery(r, "user_id"),
		StartDate: optionalQuery(r, "start_date"),
		EndDate:   optionalQuery(r, "end_date"),
	}

	results, err := h.attendanceService.ListAll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Limit:      attendance.ListLimit,
		TotalItems: int64(len(results)),
	})
}

// ListToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	results, err := h.attendanceService.ListToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Backfill implements AttendanceHandler.
func (h *attendanceHandlerImpl) Backfill(w http.ResponseWriter, r *http.Request) {
	var req attendance.BackfillRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("Failed to decode backfill request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Backfill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backfill completed", result)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := holiday.ListFilter{
		StartDate: optionalQuery(r, "start_date"),
		EndDate:   optionalQuery(r, "end_date"),
	}

	holidays, err := h.holidayService.ListHolidays(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ActorID = caller.ID
	req.ActorName = caller.Name

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added successfully", created)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := actorFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	err := h.holidayService.DeleteHoliday(r.Context(), holiday.DeleteHolidayRequest{
		ID:        chi.URLParam(r, "id"),
		ActorID:   caller.ID,
		ActorName: caller.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{
		holidayService: holidayService,
	}
}

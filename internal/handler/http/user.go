package http

import (
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByRole(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, user.ListFilter{})
}

// ListByRole implements UserHandler.
func (h *UserHandlerImpl) ListByRole(w http.ResponseWriter, r *http.Request) {
	role := user.Role(chi.URLParam(r, "role"))
	h.list(w, r, user.ListFilter{Role: &role})
}

func (h *UserHandlerImpl) list(w http.ResponseWriter, r *http.Request, filter user.ListFilter) {
	users, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// EmployeeStats implements UserHandler.
func (h *UserHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.userService.GetEmployeeStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}

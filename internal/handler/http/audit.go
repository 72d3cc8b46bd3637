package http

import (
	"net/http"
	"strconv"

	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{auditService: auditService}
}

// List handles GET /audit-logs, newest first.
func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter audit.ListFilter
	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil {
			response.BadRequest(w, "invalid limit parameter", nil)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := filter.Limit
	if limit == 0 {
		limit = audit.DefaultListLimit
	}

	response.SuccessWithMeta(w, entries, &response.Meta{
		Limit:      limit,
		TotalItems: int64(len(entries)),
	})
}

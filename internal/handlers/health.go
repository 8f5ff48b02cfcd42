package handlers

import (
	"net/http"

	"github.com/salesboard/salesboard/internal/response"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	status := h.DashboardSvc.Health(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, status)
}

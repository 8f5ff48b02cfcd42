package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/response"
)

type DashboardService interface {
	GetBootstrap(ctx context.Context) dto.DashboardBootstrap
	GetMetrics(ctx context.Context, params dto.FilterParams) (dto.SummaryMetrics, error)
	GetChart(ctx context.Context, mode string, params dto.FilterParams) (dto.ChartData, error)
	GetOrders(ctx context.Context, params dto.FilterParams) (dto.OrdersResult, error)
	Health(ctx context.Context) dto.HealthStatus
}

type ExportService interface {
	ExportOrders(ctx context.Context, params dto.FilterParams) (dto.ExportResult, error)
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
	ExportSvc       ExportService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
		ExportSvc:       deps.ExportSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/metrics", h.GetMetrics)
	r.Get("/charts/{mode}", h.GetChart)
	r.Get("/orders", h.GetOrders)
	r.Get("/orders/export", h.ExportOrders)
	return r
}

// filterParams pulls the shared filter query parameters off the request.
// Validation happens in the service against the current snapshot.
func filterParams(r *http.Request) dto.FilterParams {
	qs := r.URL.Query()
	return dto.FilterParams{
		Start:    qs.Get("start"),
		End:      qs.Get("end"),
		Category: qs.Get("category"),
	}
}

func (h *dashboardHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	boot := h.DashboardSvc.GetBootstrap(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, boot)
}

func (h *dashboardHandlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.DashboardSvc.GetMetrics(r.Context(), filterParams(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, metrics)
}

func (h *dashboardHandlers) GetChart(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	chart, err := h.DashboardSvc.GetChart(r.Context(), mode, filterParams(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, chart)
}

func (h *dashboardHandlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.DashboardSvc.GetOrders(r.Context(), filterParams(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, orders)
}

func (h *dashboardHandlers) ExportOrders(w http.ResponseWriter, r *http.Request) {
	export, err := h.ExportSvc.ExportOrders(r.Context(), filterParams(r))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Content)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/salesboard/salesboard/internal/dto"
)

// --- Stub services ---

type stubDashboardService struct {
	bootstrap  dto.DashboardBootstrap
	metrics    dto.SummaryMetrics
	metricsErr error
	chart      dto.ChartData
	chartErr   error
	orders     dto.OrdersResult
	ordersErr  error
	health     dto.HealthStatus

	lastMode   string
	lastParams dto.FilterParams
}

func (s *stubDashboardService) GetBootstrap(_ context.Context) dto.DashboardBootstrap {
	return s.bootstrap
}

func (s *stubDashboardService) GetMetrics(_ context.Context, params dto.FilterParams) (dto.SummaryMetrics, error) {
	s.lastParams = params
	return s.metrics, s.metricsErr
}

func (s *stubDashboardService) GetChart(_ context.Context, mode string, params dto.FilterParams) (dto.ChartData, error) {
	s.lastMode = mode
	s.lastParams = params
	return s.chart, s.chartErr
}

func (s *stubDashboardService) GetOrders(_ context.Context, params dto.FilterParams) (dto.OrdersResult, error) {
	s.lastParams = params
	return s.orders, s.ordersErr
}

func (s *stubDashboardService) Health(_ context.Context) dto.HealthStatus {
	return s.health
}

type stubExportService struct {
	result     dto.ExportResult
	err        error
	lastParams dto.FilterParams
}

func (s *stubExportService) ExportOrders(_ context.Context, params dto.FilterParams) (dto.ExportResult, error) {
	s.lastParams = params
	return s.result, s.err
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	errorWriteCalled bool
	errorWriteStatus int
	errorWriteCode   string
	errorWriteMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.errorWriteCalled = true
	s.errorWriteStatus = status
	s.errorWriteCode = code
	s.errorWriteMsg = message

	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err

	w.WriteHeader(http.StatusInternalServerError)
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// --- Tests ---

func TestGetDashboard_OK(t *testing.T) {
	svc := &stubDashboardService{bootstrap: dto.DashboardBootstrap{State: "ready"}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()
	h.GetDashboard(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	boot, ok := resp.writeSuccessData.(dto.DashboardBootstrap)
	if !ok || boot.State != "ready" {
		t.Fatalf("bootstrap payload mismatch: %+v", resp.writeSuccessData)
	}
}

func TestGetMetrics_PassesFilterParams(t *testing.T) {
	svc := &stubDashboardService{metrics: dto.SummaryMetrics{TotalRevenue: "$200.00"}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/metrics?start=2024-01-01&end=2024-01-31&category=Books", nil)
	rr := httptest.NewRecorder()
	h.GetMetrics(rr, req)

	want := dto.FilterParams{Start: "2024-01-01", End: "2024-01-31", Category: "Books"}
	if svc.lastParams != want {
		t.Fatalf("params mismatch: %+v", svc.lastParams)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
}

func TestGetMetrics_ServiceError(t *testing.T) {
	svc := &stubDashboardService{metricsErr: errors.New("boom")}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	h.GetMetrics(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestGetChart_PassesMode(t *testing.T) {
	svc := &stubDashboardService{chart: dto.ChartData{Mode: dto.ChartModeTopProducts}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/charts/topProducts", nil)
	req = withChiParam(req, "mode", "topProducts")
	rr := httptest.NewRecorder()
	h.GetChart(rr, req)

	if svc.lastMode != "topProducts" {
		t.Fatalf("mode mismatch: %q", svc.lastMode)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess to be called")
	}
}

func TestGetChart_ServiceError(t *testing.T) {
	svc := &stubDashboardService{chartErr: errors.New("unknown mode")}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/charts/nope", nil)
	req = withChiParam(req, "mode", "nope")
	rr := httptest.NewRecorder()
	h.GetChart(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestGetOrders_OK(t *testing.T) {
	svc := &stubDashboardService{orders: dto.OrdersResult{Count: 2}}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/orders?category=all", nil)
	rr := httptest.NewRecorder()
	h.GetOrders(rr, req)

	if svc.lastParams.Category != "all" {
		t.Fatalf("category param mismatch: %q", svc.lastParams.Category)
	}
	result, ok := resp.writeSuccessData.(dto.OrdersResult)
	if !ok || result.Count != 2 {
		t.Fatalf("orders payload mismatch: %+v", resp.writeSuccessData)
	}
}

func TestExportOrders_StreamsAttachment(t *testing.T) {
	export := &stubExportService{result: dto.ExportResult{
		Filename: "orders_2024-01-01_2024-01-31.xlsx",
		Content:  []byte("workbook-bytes"),
	}}
	h := NewDashboardHandlers(&Deps{ResponseHandler: &stubResponseHandler{}, ExportSvc: export})

	req := httptest.NewRequest(http.MethodGet, "/orders/export?start=2024-01-01&end=2024-01-31", nil)
	rr := httptest.NewRecorder()
	h.ExportOrders(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status mismatch: %d", rr.Code)
	}
	disposition := rr.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "orders_2024-01-01_2024-01-31.xlsx") {
		t.Fatalf("disposition mismatch: %q", disposition)
	}
	if rr.Body.String() != "workbook-bytes" {
		t.Fatalf("body mismatch: %q", rr.Body.String())
	}
}

func TestExportOrders_ServiceError(t *testing.T) {
	export := &stubExportService{err: errors.New("no workbook")}
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, ExportSvc: export})

	req := httptest.NewRequest(http.MethodGet, "/orders/export", nil)
	rr := httptest.NewRecorder()
	h.ExportOrders(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestHealth_OK(t *testing.T) {
	svc := &stubDashboardService{health: dto.HealthStatus{Status: "ok", DatasetState: "ready", Orders: 3}}
	resp := &stubResponseHandler{}
	h := NewHealthHandlers(&Deps{ResponseHandler: resp, DashboardSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	status, ok := resp.writeSuccessData.(dto.HealthStatus)
	if !ok || status.DatasetState != "ready" || status.Orders != 3 {
		t.Fatalf("health payload mismatch: %+v", resp.writeSuccessData)
	}
}

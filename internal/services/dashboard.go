package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/errs"
	"github.com/salesboard/salesboard/internal/models"
	"github.com/salesboard/salesboard/pkg/helpers"
)

// snapshotReader is the store interface used to resolve filter parameters
// against the current dataset.
type snapshotReader interface {
	Snapshot() *models.Snapshot
}

// dashboardAnalytics is the analytics interface used by dashboardService.
type dashboardAnalytics interface {
	Summary(ctx context.Context, q dto.OrderQuery) (dto.SummaryResult, error)
	CategoryTotals(ctx context.Context, q dto.OrderQuery) ([]dto.CategoryTotal, error)
	TopProducts(ctx context.Context, q dto.OrderQuery, limit int) ([]dto.ProductTotal, error)
	TimeSeries(ctx context.Context, q dto.OrderQuery) ([]dto.SeriesPoint, error)
	Orders(ctx context.Context, q dto.OrderQuery) ([]models.Order, error)
}

type dashboardService struct {
	store     snapshotReader
	analytics dashboardAnalytics
}

func NewDashboardService(store snapshotReader, analytics dashboardAnalytics) *dashboardService {
	return &dashboardService{store: store, analytics: analytics}
}

// chartCatalog lists the selectable chart modes with their presentation
// hints. It is served in the bootstrap payload and stamped onto each chart
// response.
var chartCatalog = []dto.ChartTypeEntry{
	{
		Mode:          dto.ChartModeRevenueOverTime,
		Visualization: dto.VisLine,
		Title:         "Revenue Over Time",
		XAxisLabel:    "Order Date",
		YAxisLabel:    "Revenue",
	},
	{
		Mode:          dto.ChartModeRevenueByCategory,
		Visualization: dto.VisBar,
		Title:         "Revenue by Category",
		XAxisLabel:    "Category",
		YAxisLabel:    "Revenue",
	},
	{
		Mode:          dto.ChartModeTopProducts,
		Visualization: dto.VisHorizontalBar,
		Title:         "Top 10 Products by Revenue",
		XAxisLabel:    "Revenue",
		YAxisLabel:    "Product",
	},
}

func chartEntry(mode string) (dto.ChartTypeEntry, bool) {
	for _, e := range chartCatalog {
		if e.Mode == mode {
			return e, true
		}
	}
	return dto.ChartTypeEntry{}, false
}

// GetBootstrap returns everything the dashboard page needs to set itself
// up: load state, selectable date bounds, category options, and the chart
// catalog. The options are rebuilt from the snapshot on every call, so
// repeated invocations always yield the same set.
func (s *dashboardService) GetBootstrap(ctx context.Context) dto.DashboardBootstrap {
	snap := s.store.Snapshot()
	if snap == nil {
		return dto.DashboardBootstrap{
			State:      string(models.LoadStateFailed),
			Message:    "order data has not been loaded",
			ChartTypes: chartCatalog,
		}
	}

	boot := dto.DashboardBootstrap{
		SnapshotID:     snap.ID,
		State:          string(snap.State),
		Message:        snap.Message,
		ChartTypes:     chartCatalog,
		SkippedRecords: snap.Skipped,
	}

	if snap.Ready() {
		boot.DateRange = helpers.Ptr(dto.DateBounds{
			Min: snap.MinDate.Format(dto.DateParamLayout),
			Max: snap.MaxDate.Format(dto.DateParamLayout),
		})
		boot.Categories = categoryOptions(snap.Categories)
	}

	return boot
}

// categoryOptions maps distinct categories into select-control entries with
// the fixed "All Categories" entry first.
func categoryOptions(categories []string) []dto.CategoryOption {
	options := make([]dto.CategoryOption, 0, len(categories)+1)
	options = append(options, dto.CategoryOption{Value: dto.CategoryAll, Label: "All Categories"})
	for _, c := range categories {
		options = append(options, dto.CategoryOption{Value: c, Label: c})
	}
	return options
}

// GetMetrics computes the four metric cards over the filtered set, with
// display formatting applied: "$0.00" averages on empty sets and the
// literal "None" when no category can be ranked.
func (s *dashboardService) GetMetrics(ctx context.Context, params dto.FilterParams) (dto.SummaryMetrics, error) {
	q, err := resolveQuery(s.store.Snapshot(), params)
	if err != nil {
		return dto.SummaryMetrics{}, err
	}

	sum, err := s.analytics.Summary(ctx, q)
	if err != nil {
		return dto.SummaryMetrics{}, err
	}

	topCategory := sum.TopCategory
	if topCategory == "" {
		topCategory = "None"
	}

	return dto.SummaryMetrics{
		TotalRevenue:      formatUSD(sum.Revenue),
		OrderCount:        strconv.Itoa(sum.Count),
		AverageOrderValue: formatUSD(sum.Average),
		TopCategory:       topCategory,
		From:              formatBound(q.Start),
		To:                formatBound(q.End),
		Category:          q.Category,
	}, nil
}

// GetChart builds the render-ready payload for one chart mode over the
// filtered set. Unknown modes are a validation error.
func (s *dashboardService) GetChart(ctx context.Context, mode string, params dto.FilterParams) (dto.ChartData, error) {
	entry, ok := chartEntry(mode)
	if !ok {
		return dto.ChartData{}, errs.NewValidationError(fmt.Sprintf("unknown chart mode %q", mode))
	}

	q, err := resolveQuery(s.store.Snapshot(), params)
	if err != nil {
		return dto.ChartData{}, err
	}

	labels := []string{}
	data := []float64{}

	switch mode {
	case dto.ChartModeRevenueOverTime:
		points, err := s.analytics.TimeSeries(ctx, q)
		if err != nil {
			return dto.ChartData{}, err
		}
		for _, p := range points {
			labels = append(labels, p.Date)
			data = append(data, p.Revenue.InexactFloat64())
		}

	case dto.ChartModeRevenueByCategory:
		totals, err := s.analytics.CategoryTotals(ctx, q)
		if err != nil {
			return dto.ChartData{}, err
		}
		for _, t := range totals {
			labels = append(labels, t.Category)
			data = append(data, t.Revenue.InexactFloat64())
		}

	case dto.ChartModeTopProducts:
		totals, err := s.analytics.TopProducts(ctx, q, dto.TopProductsLimit)
		if err != nil {
			return dto.ChartData{}, err
		}
		for _, t := range totals {
			labels = append(labels, t.Product)
			data = append(data, t.Revenue.InexactFloat64())
		}
	}

	return dto.ChartData{
		Mode:          entry.Mode,
		Visualization: entry.Visualization,
		Title:         entry.Title,
		XAxisLabel:    entry.XAxisLabel,
		YAxisLabel:    entry.YAxisLabel,
		Labels:        labels,
		Datasets: []dto.ChartDataset{
			{Label: "Revenue", Data: data},
		},
		From:     formatBound(q.Start),
		To:       formatBound(q.End),
		Category: q.Category,
	}, nil
}

// GetOrders returns the table rows for the filtered set in collection
// order. The order date passes through exactly as the upstream sent it.
func (s *dashboardService) GetOrders(ctx context.Context, params dto.FilterParams) (dto.OrdersResult, error) {
	q, err := resolveQuery(s.store.Snapshot(), params)
	if err != nil {
		return dto.OrdersResult{}, err
	}

	orders, err := s.analytics.Orders(ctx, q)
	if err != nil {
		return dto.OrdersResult{}, err
	}

	rows := make([]dto.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow(o))
	}

	return dto.OrdersResult{
		Rows:     rows,
		Count:    len(rows),
		From:     formatBound(q.Start),
		To:       formatBound(q.End),
		Category: q.Category,
	}, nil
}

// Health reports liveness plus the dataset state for probes.
func (s *dashboardService) Health(ctx context.Context) dto.HealthStatus {
	status := dto.HealthStatus{Status: "ok"}
	snap := s.store.Snapshot()
	if snap == nil {
		status.DatasetState = "loading"
		return status
	}
	status.DatasetState = string(snap.State)
	status.SnapshotID = snap.ID
	status.Orders = len(snap.Orders)
	return status
}

func orderRow(o models.Order) dto.OrderRow {
	return dto.OrderRow{
		OrderID:      o.OrderID,
		OrderDate:    o.RawDate,
		CustomerID:   o.CustomerID,
		ProductNames: o.ProductNames,
		Category:     o.Category,
		Total:        formatUSD(o.Total),
	}
}

// resolveQuery validates raw filter parameters and fills missing date
// bounds from the snapshot. Category defaults to the all-matching value;
// an unknown category is not an error, it just filters to nothing.
func resolveQuery(snap *models.Snapshot, params dto.FilterParams) (dto.OrderQuery, error) {
	q := dto.OrderQuery{Category: params.Category}
	if q.Category == "" {
		q.Category = dto.CategoryAll
	}

	var err error
	if q.Start, err = parseBound("start", params.Start); err != nil {
		return q, err
	}
	if q.End, err = parseBound("end", params.End); err != nil {
		return q, err
	}

	if snap.Ready() {
		if q.Start.IsZero() {
			q.Start = snap.MinDate
		}
		if q.End.IsZero() {
			q.End = snap.MaxDate
		}
	}

	if !q.Start.IsZero() && !q.End.IsZero() && q.End.Before(q.Start) {
		return q, errs.NewValidationError("end date precedes start date")
	}

	return q, nil
}

func parseBound(name, raw string) (t time.Time, err error) {
	if raw == "" {
		return t, nil
	}
	t, err = time.Parse(dto.DateParamLayout, raw)
	if err != nil {
		return t, errs.NewValidationError(fmt.Sprintf("%s date %q is not YYYY-MM-DD", name, raw))
	}
	return t, nil
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateParamLayout)
}

func formatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

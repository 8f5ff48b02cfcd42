package dto

// Chart mode constants
const (
	ChartModeRevenueOverTime   = "revenueOverTime"
	ChartModeRevenueByCategory = "revenueByCategory"
	ChartModeTopProducts       = "topProducts"
)

// Visualization constants
const (
	VisLine          = "line"
	VisBar           = "bar"
	VisHorizontalBar = "horizontalBar"
)

// CategoryAll is the category filter value that matches every order.
const CategoryAll = "all"

// TopProductsLimit caps the product revenue ranking.
const TopProductsLimit = 10

// DateParamLayout is the format of start/end query parameters.
const DateParamLayout = "2006-01-02"

// --- Bootstrap types ---

// DashboardBootstrap is everything a client needs to set up the dashboard:
// load state, the selectable date bounds and categories, and the chart
// catalog. DateRange and Categories are absent unless the load produced
// orders.
type DashboardBootstrap struct {
	SnapshotID     string           `json:"snapshotId,omitempty"`
	State          string           `json:"state"`
	Message        string           `json:"message,omitempty"`
	DateRange      *DateBounds      `json:"dateRange,omitempty"`
	Categories     []CategoryOption `json:"categories,omitempty"`
	ChartTypes     []ChartTypeEntry `json:"chartTypes"`
	SkippedRecords int              `json:"skippedRecords,omitempty"`
}

type DateBounds struct {
	Min string `json:"min"` // YYYY-MM-DD
	Max string `json:"max"` // YYYY-MM-DD
}

type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ChartTypeEntry describes one selectable chart mode.
type ChartTypeEntry struct {
	Mode          string `json:"mode"`
	Visualization string `json:"visualization"`
	Title         string `json:"title"`
	XAxisLabel    string `json:"xAxisLabel"`
	YAxisLabel    string `json:"yAxisLabel"`
}

// --- Metrics types ---

// SummaryMetrics carries the four metric cards as display-ready strings:
// currency values as "$1234.56", the order count as a plain integer, and the
// top category by name ("None" when there are no orders in range).
type SummaryMetrics struct {
	TotalRevenue      string `json:"totalRevenue"`
	OrderCount        string `json:"orderCount"`
	AverageOrderValue string `json:"averageOrderValue"`
	TopCategory       string `json:"topCategory"`
	From              string `json:"from,omitempty"`
	To                string `json:"to,omitempty"`
	Category          string `json:"category"`
}

// --- Chart types ---

// ChartData is one render-ready chart payload: parallel label and value
// arrays plus the presentation hints for the selected mode.
type ChartData struct {
	Mode          string         `json:"mode"`
	Visualization string         `json:"visualization"`
	Title         string         `json:"title"`
	XAxisLabel    string         `json:"xAxisLabel"`
	YAxisLabel    string         `json:"yAxisLabel"`
	Labels        []string       `json:"labels"`
	Datasets      []ChartDataset `json:"datasets"`
	From          string         `json:"from,omitempty"`
	To            string         `json:"to,omitempty"`
	Category      string         `json:"category"`
}

type ChartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// --- Health types ---

// HealthStatus is the liveness probe payload: the process is up, plus the
// state of the one-shot dataset load.
type HealthStatus struct {
	Status       string `json:"status"`
	DatasetState string `json:"datasetState"`
	SnapshotID   string `json:"snapshotId,omitempty"`
	Orders       int    `json:"orders"`
}

// --- Export types ---

// ExportResult is a generated workbook ready to stream to the client.
type ExportResult struct {
	Filename string
	Content  []byte
}

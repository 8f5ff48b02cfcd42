package dto

import (
	"time"

	"github.com/salesboard/salesboard/internal/models"
)

// FilterParams carries the raw query parameters from a dashboard request.
// Values are kept as strings here; the dashboard service validates and
// resolves them against the current snapshot.
type FilterParams struct {
	Start    string // YYYY-MM-DD, empty means snapshot minimum
	End      string // YYYY-MM-DD, empty means snapshot maximum
	Category string // empty means CategoryAll
}

// OrderQuery is a resolved filter: inclusive date bounds plus a category
// selection. A zero Start or End leaves that side unbounded; Category equal
// to CategoryAll (or empty) disables category filtering.
type OrderQuery struct {
	Start    time.Time
	End      time.Time
	Category string
}

// OrderRow is one table row with display formatting applied. The date is
// passed through exactly as the upstream sent it.
type OrderRow struct {
	OrderID      string `json:"orderId"`
	OrderDate    string `json:"orderDate"`
	CustomerID   string `json:"customerId"`
	ProductNames string `json:"productNames"`
	Category     string `json:"category"`
	Total        string `json:"total"`
}

type OrdersResult struct {
	Rows     []OrderRow `json:"rows"`
	Count    int        `json:"count"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	Category string     `json:"category"`
}

// OrderFetchResult is what one upstream load produced: the decoded orders
// plus how many records were dropped for bad dates or totals.
type OrderFetchResult struct {
	Orders  []models.Order
	Skipped int
}

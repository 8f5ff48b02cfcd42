package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is assigned to orders whose category field is
// missing or blank, so every order lands in exactly one category bucket.
const CategoryUncategorized = "Uncategorized"

// orderDateLayout is the upstream day-first convention (DD/MM/YYYY).
// All order date parsing goes through ParseOrderDate; nothing else in the
// codebase is allowed to interpret the upstream date strings.
const orderDateLayout = "02/01/2006"

// Order is one sales record as served to the rest of the system: dates
// parsed, totals as exact decimals, category normalized.
type Order struct {
	OrderID      string          `json:"orderId"`
	Date         time.Time       `json:"-"`
	RawDate      string          `json:"orderDate"` // upstream DD/MM/YYYY string, shown as-is in tables
	CustomerID   string          `json:"customerId"`
	ProductNames string          `json:"productNames"` // opaque label; may name several products, never split
	Category     string          `json:"category"`
	Total        decimal.Decimal `json:"total"`
}

// ParseOrderDate interprets the upstream DD/MM/YYYY convention and returns
// the calendar day at UTC midnight.
func ParseOrderDate(raw string) (time.Time, error) {
	t, err := time.Parse(orderDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("order date %q is not DD/MM/YYYY: %w", raw, err)
	}
	return t, nil
}

// ParseOrderTotal converts the upstream numeric string into an exact decimal
// amount. Totals must parse and must not be negative.
func ParseOrderTotal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("order total is empty")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("order total %q is not numeric: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("order total %q is negative", raw)
	}
	return d, nil
}

// NormalizeCategory trims the upstream category label and substitutes
// CategoryUncategorized when nothing remains.
func NormalizeCategory(raw string) string {
	c := strings.TrimSpace(raw)
	if c == "" {
		return CategoryUncategorized
	}
	return c
}

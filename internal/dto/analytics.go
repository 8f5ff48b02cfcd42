package dto

import "github.com/shopspring/decimal"

// SummaryResult holds the headline aggregates for one filtered pass over the
// orders. Average is zero when Count is zero; TopCategory is empty when there
// is nothing to rank.
type SummaryResult struct {
	Revenue     decimal.Decimal `json:"revenue"`
	Count       int             `json:"count"`
	Average     decimal.Decimal `json:"average"`
	TopCategory string          `json:"topCategory,omitempty"`
}

// CategoryTotal is one category bucket. Buckets are reported in the order the
// category was first seen in the data.
type CategoryTotal struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Count    int             `json:"count"`
}

// ProductTotal is one product-label bucket in a revenue ranking.
type ProductTotal struct {
	Product string          `json:"product"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// SeriesPoint is one time-series entry: a single order's revenue on its
// calendar day. Orders on the same day stay as separate points.
type SeriesPoint struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
}

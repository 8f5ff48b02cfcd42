package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/models"
)

// orderAnalyticsStore is the dataset interface used by analyticsService.
type orderAnalyticsStore interface {
	Query(ctx context.Context, q dto.OrderQuery) (<-chan *models.Order, <-chan error)
}

type analyticsService struct {
	orders orderAnalyticsStore
}

func NewAnalyticsService(orders orderAnalyticsStore) *analyticsService {
	return &analyticsService{orders: orders}
}

// Summary computes the headline aggregates over one filtered pass: revenue
// total, order count, average order value, and the top category by summed
// revenue. Ties on the top category break toward the category seen first.
func (s *analyticsService) Summary(ctx context.Context, q dto.OrderQuery) (dto.SummaryResult, error) {
	var result dto.SummaryResult

	orderCh, errCh := s.orders.Query(ctx, q)

	byCategory := map[string]decimal.Decimal{}
	var firstSeen []string
	if err := streamOrders(orderCh, errCh, func(o *models.Order) error {
		result.Revenue = result.Revenue.Add(o.Total)
		result.Count++
		if _, ok := byCategory[o.Category]; !ok {
			firstSeen = append(firstSeen, o.Category)
		}
		byCategory[o.Category] = byCategory[o.Category].Add(o.Total)
		return nil
	}); err != nil {
		return result, err
	}

	if result.Count > 0 {
		result.Average = result.Revenue.Div(decimal.NewFromInt(int64(result.Count)))
	}

	var top decimal.Decimal
	for _, c := range firstSeen {
		if result.TopCategory == "" || byCategory[c].GreaterThan(top) {
			result.TopCategory = c
			top = byCategory[c]
		}
	}

	return result, nil
}

// CategoryTotals sums revenue per category over the filtered set. Buckets
// come back in the order each category first appears in the data.
func (s *analyticsService) CategoryTotals(ctx context.Context, q dto.OrderQuery) ([]dto.CategoryTotal, error) {
	orderCh, errCh := s.orders.Query(ctx, q)

	index := map[string]int{}
	totals := []dto.CategoryTotal{}
	if err := streamOrders(orderCh, errCh, func(o *models.Order) error {
		i, ok := index[o.Category]
		if !ok {
			i = len(totals)
			index[o.Category] = i
			totals = append(totals, dto.CategoryTotal{Category: o.Category})
		}
		totals[i].Revenue = totals[i].Revenue.Add(o.Total)
		totals[i].Count++
		return nil
	}); err != nil {
		return nil, err
	}

	return totals, nil
}

// TopProducts aggregates revenue per product label over the filtered set,
// then ranks by descending revenue and truncates to limit. The sort is
// stable, so equal revenues keep first-seen order. The product label is
// opaque: a record naming several products counts as one label.
func (s *analyticsService) TopProducts(ctx context.Context, q dto.OrderQuery, limit int) ([]dto.ProductTotal, error) {
	orderCh, errCh := s.orders.Query(ctx, q)

	index := map[string]int{}
	totals := []dto.ProductTotal{}
	if err := streamOrders(orderCh, errCh, func(o *models.Order) error {
		i, ok := index[o.ProductNames]
		if !ok {
			i = len(totals)
			index[o.ProductNames] = i
			totals = append(totals, dto.ProductTotal{Product: o.ProductNames})
		}
		totals[i].Revenue = totals[i].Revenue.Add(o.Total)
		totals[i].Count++
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Revenue.GreaterThan(totals[j].Revenue)
	})
	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}

	return totals, nil
}

// TimeSeries returns one point per filtered order in collection order.
// Orders sharing a day are not bucketed; each stays its own point.
func (s *analyticsService) TimeSeries(ctx context.Context, q dto.OrderQuery) ([]dto.SeriesPoint, error) {
	orderCh, errCh := s.orders.Query(ctx, q)

	points := []dto.SeriesPoint{}
	if err := streamOrders(orderCh, errCh, func(o *models.Order) error {
		points = append(points, dto.SeriesPoint{
			Date:    o.Date.Format(dto.DateParamLayout),
			Revenue: o.Total,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	return points, nil
}

// Orders materializes the filtered set in collection order.
func (s *analyticsService) Orders(ctx context.Context, q dto.OrderQuery) ([]models.Order, error) {
	orderCh, errCh := s.orders.Query(ctx, q)

	var orders []models.Order
	if err := streamOrders(orderCh, errCh, func(o *models.Order) error {
		orders = append(orders, *o)
		return nil
	}); err != nil {
		return nil, err
	}

	return orders, nil
}

func streamOrders(orderCh <-chan *models.Order, errCh <-chan error, handle func(*models.Order) error) error {
	for orderCh != nil || errCh != nil {
		select {
		case o, ok := <-orderCh:
			if !ok {
				orderCh = nil
				continue
			}
			if handle == nil {
				continue
			}
			if err := handle(o); err != nil {
				return err
			}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

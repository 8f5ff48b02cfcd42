package upstreamclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/errs"
	"github.com/salesboard/salesboard/internal/models"
	"github.com/salesboard/salesboard/pkg/logger"
)

type Adapter struct {
	client  *http.Client
	baseURL string
}

func NewAdapter(baseURL string, timeout time.Duration) *Adapter {
	return &Adapter{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchOrders performs the single bulk GET against the upstream /data
// endpoint and converts the records into models. Records with unparsable
// dates or totals are skipped and counted, not fatal; transport errors,
// non-2xx statuses, and undecodable bodies are.
func (a *Adapter) FetchOrders(ctx context.Context) (dto.OrderFetchResult, error) {
	var result dto.OrderFetchResult

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/data", nil)
	if err != nil {
		return result, errs.NewUpstreamError("building order feed request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return result, errs.NewUpstreamError("fetching order feed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, errs.NewUpstreamError(
			fmt.Sprintf("order feed answered status %d", resp.StatusCode), nil)
	}

	var raw []dto.UpstreamOrder
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return result, errs.NewUpstreamError("decoding order feed", err)
	}

	log := logger.FromContext(ctx)
	orders := make([]models.Order, 0, len(raw))
	for i, rec := range raw {
		o, err := convertOrder(rec)
		if err != nil {
			result.Skipped++
			log.Warn("skipping invalid order record",
				"index", i,
				"orderId", rec.OrderID.String(),
				"error", err)
			continue
		}
		orders = append(orders, o)
	}

	result.Orders = orders
	return result, nil
}

func convertOrder(rec dto.UpstreamOrder) (models.Order, error) {
	date, err := models.ParseOrderDate(rec.OrderDate)
	if err != nil {
		return models.Order{}, err
	}
	total, err := models.ParseOrderTotal(rec.Total.String())
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		OrderID:      rec.OrderID.String(),
		Date:         date,
		RawDate:      rec.OrderDate,
		CustomerID:   rec.CustomerID.String(),
		ProductNames: rec.ProductNames,
		Category:     models.NormalizeCategory(rec.Categories),
		Total:        total,
	}, nil
}

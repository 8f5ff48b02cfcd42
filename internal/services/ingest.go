package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/models"
	"github.com/salesboard/salesboard/pkg/logger"
)

// orderFetcher is the upstream adapter interface used by ingestService.
type orderFetcher interface {
	FetchOrders(ctx context.Context) (dto.OrderFetchResult, error)
}

// snapshotPublisher is the store interface used by ingestService.
type snapshotPublisher interface {
	Publish(snap *models.Snapshot)
}

type ingestService struct {
	fetcher orderFetcher
	store   snapshotPublisher
}

func NewIngestService(fetcher orderFetcher, store snapshotPublisher) *ingestService {
	return &ingestService{fetcher: fetcher, store: store}
}

// Load performs the one-shot startup fetch and publishes the resulting
// snapshot. A failed or empty fetch still publishes: the server keeps
// serving so the dashboard can surface the state instead of dying. There is
// no retry; Load is called exactly once, before the server starts listening.
func (s *ingestService) Load(ctx context.Context) *models.Snapshot {
	log := logger.FromContext(ctx)

	snap := &models.Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now(),
	}

	fetched, err := s.fetcher.FetchOrders(ctx)
	if err != nil {
		snap.State = models.LoadStateFailed
		snap.Message = "Failed to fetch data"
		s.store.Publish(snap)
		log.Error("order feed load failed", "snapshotId", snap.ID, "error", err)
		return snap
	}

	snap.Skipped = fetched.Skipped
	if len(fetched.Orders) == 0 {
		snap.State = models.LoadStateEmpty
		snap.Message = "No data available"
		s.store.Publish(snap)
		log.Warn("order feed is empty", "snapshotId", snap.ID, "skipped", snap.Skipped)
		return snap
	}

	snap.State = models.LoadStateReady
	snap.Orders = fetched.Orders
	snap.MinDate, snap.MaxDate = dateBounds(fetched.Orders)
	snap.Categories = distinctCategories(fetched.Orders)

	s.store.Publish(snap)
	log.Info("order feed loaded",
		"snapshotId", snap.ID,
		"orders", len(snap.Orders),
		"skipped", snap.Skipped,
		"minDate", snap.MinDate.Format(dto.DateParamLayout),
		"maxDate", snap.MaxDate.Format(dto.DateParamLayout))
	return snap
}

func dateBounds(orders []models.Order) (min, max time.Time) {
	for _, o := range orders {
		if min.IsZero() || o.Date.Before(min) {
			min = o.Date
		}
		if max.IsZero() || o.Date.After(max) {
			max = o.Date
		}
	}
	return min, max
}

// distinctCategories returns the category labels in first-seen order.
func distinctCategories(orders []models.Order) []string {
	seen := map[string]bool{}
	var categories []string
	for _, o := range orders {
		if seen[o.Category] {
			continue
		}
		seen[o.Category] = true
		categories = append(categories, o.Category)
	}
	return categories
}

package store

import (
	"context"
	"sync"

	"github.com/salesboard/salesboard/internal/dto"
	"github.com/salesboard/salesboard/internal/errs"
	"github.com/salesboard/salesboard/internal/models"
)

// datasetStore holds the current order snapshot in memory. There is exactly
// one slot: publishing a new snapshot replaces the previous one atomically,
// so readers always observe a complete load, never a partial one.
type datasetStore struct {
	mu   sync.RWMutex
	snap *models.Snapshot
}

func NewDatasetStore() *datasetStore {
	return &datasetStore{}
}

// Publish installs a snapshot as the current one.
func (s *datasetStore) Publish(snap *models.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the current snapshot. It is nil until the first load
// publishes.
func (s *datasetStore) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Query streams the orders matching q in load order. The order channel is
// closed when the scan finishes; at most one error is sent, either because
// the snapshot is not servable or the context was cancelled. Streamed
// pointers reference the snapshot's backing array and must not be mutated.
func (s *datasetStore) Query(ctx context.Context, q dto.OrderQuery) (<-chan *models.Order, <-chan error) {
	orderCh := make(chan *models.Order)
	errCh := make(chan error, 1)

	snap := s.Snapshot()

	go func() {
		defer close(orderCh)
		defer close(errCh)

		if !snap.Servable() {
			errCh <- errs.NewUnavailableError(unavailableMessage(snap))
			return
		}

		for i := range snap.Orders {
			o := &snap.Orders[i]
			if !matchesQuery(o, q) {
				continue
			}
			select {
			case orderCh <- o:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()

	return orderCh, errCh
}

// matchesQuery applies the resolved filter: inclusive date bounds, category
// exact match unless the selection is CategoryAll or empty.
func matchesQuery(o *models.Order, q dto.OrderQuery) bool {
	if !q.Start.IsZero() && o.Date.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && o.Date.After(q.End) {
		return false
	}
	if q.Category != "" && q.Category != dto.CategoryAll && o.Category != q.Category {
		return false
	}
	return true
}

func unavailableMessage(snap *models.Snapshot) string {
	if snap == nil {
		return "order data has not been loaded"
	}
	if snap.Message != "" {
		return snap.Message
	}
	return "order data is not available"
}

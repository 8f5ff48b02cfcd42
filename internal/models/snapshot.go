package models

import "time"

// LoadState describes the outcome of the one-shot upstream load.
type LoadState string

const (
	LoadStateReady  LoadState = "ready"  // orders loaded, dashboard operational
	LoadStateEmpty  LoadState = "empty"  // upstream answered with zero records
	LoadStateFailed LoadState = "failed" // fetch or decode failed; no data to serve
)

// Snapshot is one immutable load of the upstream order collection together
// with the derived values the dashboard needs to set itself up: the overall
// date bounds and the category list in first-seen order. A snapshot is never
// mutated after publication; reloading produces a new one.
type Snapshot struct {
	ID         string    // unique per load
	State      LoadState
	Message    string    // human-readable detail for empty/failed states
	Orders     []Order
	MinDate    time.Time // earliest order date, zero when no orders
	MaxDate    time.Time // latest order date, zero when no orders
	Categories []string  // distinct categories in first-seen order
	Skipped    int       // records dropped during decode for bad dates/totals
	LoadedAt   time.Time
}

// Ready reports whether the snapshot holds servable orders.
func (s *Snapshot) Ready() bool {
	return s != nil && s.State == LoadStateReady
}

// Servable reports whether the dashboard can answer queries from this
// snapshot. An empty load is servable (everything aggregates to zero); a
// failed or absent load is not.
func (s *Snapshot) Servable() bool {
	return s != nil && (s.State == LoadStateReady || s.State == LoadStateEmpty)
}

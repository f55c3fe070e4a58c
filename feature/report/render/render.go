package render

import (
	"context"
	"fmt"
	"time"

	"country-atlas/feature/countries/models"
)

// TopN is the number of ranked entries in a report.
const TopN = 5

// Stats reads the aggregates a report needs.
type Stats interface {
	Count(ctx context.Context) (int64, error)
	TopByGDP(ctx context.Context, limit int) ([]models.Country, error)
}

// Renderer renders the summary report from current store state.
type Renderer struct {
	stats  Stats
	raster *Rasterizer
	now    func() time.Time
}

// NewRenderer creates a renderer. A nil now uses time.Now.
func NewRenderer(stats Stats, raster *Rasterizer, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{stats: stats, raster: raster, now: now}
}

// Snapshot reads the total count and the top entries by estimated GDP.
// Records without an estimate are never ranked.
func (r *Renderer) Snapshot(ctx context.Context) (*Snapshot, error) {
	total, err := r.stats.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count countries: %w", err)
	}
	top, err := r.stats.TopByGDP(ctx, TopN)
	if err != nil {
		return nil, fmt.Errorf("failed to rank countries: %w", err)
	}

	snapshot := &Snapshot{Total: total, Top: make([]Entry, 0, len(top)), GeneratedAt: r.now().UTC()}
	for _, c := range top {
		if c.EstimatedGDP == nil {
			continue
		}
		snapshot.Top = append(snapshot.Top, Entry{Name: c.Name, GDP: *c.EstimatedGDP})
	}
	return snapshot, nil
}

// Render produces the PNG report.
func (r *Renderer) Render(ctx context.Context) ([]byte, error) {
	snapshot, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return r.raster.Rasterize(BuildScene(*snapshot, r.raster))
}

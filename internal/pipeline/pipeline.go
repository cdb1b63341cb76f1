// Package pipeline orchestrates the per-request retrieval-and-rendering flow:
// enumerate days, fetch archive documents, split and filter records, extract
// warnings, render the overlay.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/stormscope/warning-overlay/internal/domain"
	"github.com/stormscope/warning-overlay/internal/observability"
)

// DocumentFetcher retrieves the raw archive document for each requested day.
type DocumentFetcher interface {
	FetchAll(ctx context.Context, days []time.Time) ([]string, error)
}

// Pipeline builds overlay documents for date ranges. It holds no per-request
// state, so one Pipeline serves concurrent requests.
type Pipeline struct {
	fetcher DocumentFetcher
	logger  *slog.Logger
	metrics *observability.Metrics

	overlayTitle   string
	overlayRefresh int
}

// New creates a Pipeline with the given fetcher and observability.
func New(fetcher DocumentFetcher, logger *slog.Logger, metrics *observability.Metrics, title string, refresh int) *Pipeline {
	return &Pipeline{
		fetcher:        fetcher,
		logger:         logger,
		metrics:        metrics,
		overlayTitle:   title,
		overlayRefresh: refresh,
	}
}

// BuildOverlay runs the full pipeline for one request and returns the rendered
// overlay bytes. It is all-or-nothing: a failed fetch or an extraction fault
// fails the whole request with no partial output. An empty range renders a
// header-only overlay.
func (p *Pipeline) BuildOverlay(ctx context.Context, dates domain.DateRange) ([]byte, error) {
	start := clock.Now()

	days := dates.Days()
	docs, err := p.fetcher.FetchAll(ctx, days)
	if err != nil {
		return nil, err
	}

	records, discarded := collectRecords(docs)
	p.metrics.RecordsDiscarded.Add(float64(discarded))

	warnings := make([]domain.Warning, 0, len(records))
	for _, record := range records {
		w, err := domain.ExtractWarning(record)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}

	overlay := domain.OverlayDocument{
		Title:          p.overlayTitle,
		RefreshSeconds: p.overlayRefresh,
		Warnings:       warnings,
	}
	out := overlay.Render()

	p.metrics.WarningsRendered.Add(float64(len(warnings)))
	duration := clock.Now().Sub(start)
	p.metrics.RequestDuration.Observe(duration.Seconds())
	p.logger.Info("overlay built",
		"days", len(days),
		"records", len(records),
		"discarded", discarded,
		"warnings", len(warnings),
		"duration", duration,
	)

	return out, nil
}

// collectRecords splits every document on the record separator and keeps the
// records that pass the validity filter, flattened into one sequence.
func collectRecords(docs []string) (kept []string, discarded int) {
	for _, doc := range docs {
		for _, record := range domain.SplitRecords(doc) {
			if domain.IsValidRecord(record) {
				kept = append(kept, record)
			} else {
				discarded++
			}
		}
	}
	return kept, discarded
}

// Package finder orchestrates the find workflow: search, duration
// filter, best-pick selection. Strictly sequential; every upstream
// failure degrades to a terminal "no results" state instead of an error.
package finder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tubepick/internal/app/model"
	"tubepick/internal/app/ui"
)

// Searcher returns candidate identifiers for a keyword query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Filterer resolves candidate identifiers to duration-filtered videos.
type Filterer interface {
	Filter(ctx context.Context, ids []string) ([]model.Video, error)
}

// BestPicker selects the best-matching video for a query.
type BestPicker interface {
	SelectBest(ctx context.Context, videos []model.Video, query string) (*model.Video, error)
}

// Finder sequences the workflow over its collaborators.
type Finder struct {
	searcher Searcher
	filterer Filterer
	picker   BestPicker
	notifier ui.Notifier
	logger   *zap.SugaredLogger
}

// New creates a Finder.
func New(searcher Searcher, filterer Filterer, picker BestPicker, notifier ui.Notifier, logger *zap.SugaredLogger) *Finder {
	return &Finder{
		searcher: searcher,
		filterer: filterer,
		picker:   picker,
		notifier: notifier,
		logger:   logger,
	}
}

// Find runs one workflow pass for the query. It never fails outright:
// upstream errors are reported through the notifier and the outcome
// carries whatever was resolved before the failure.
func (f *Finder) Find(ctx context.Context, query string) *model.FindOutcome {
	outcome := &model.FindOutcome{Query: query}
	if strings.TrimSpace(query) == "" {
		return outcome
	}

	findsTotal.Inc()

	stop := f.notifier.StartStep("🔍 Searching YouTube...")
	ids, err := f.searcher.Search(ctx, query)
	stop()
	if err != nil {
		upstreamErrors.WithLabelValues("search").Inc()
		f.logger.Errorw("search failed", "query", query, "error", err)
		f.notifier.Error("API Error: %v", err)
	}
	outcome.Candidates = len(ids)
	if len(ids) == 0 {
		f.notifier.Warn("No videos found.")
		return outcome
	}

	stop = f.notifier.StartStep("⏱️  Filtering by duration (4–20 min)...")
	videos, err := f.filterer.Filter(ctx, ids)
	stop()
	if err != nil {
		upstreamErrors.WithLabelValues("filter").Inc()
		f.logger.Errorw("duration filter failed", "query", query, "error", err)
		f.notifier.Error("Duration Filter Error: %v", err)
	}
	outcome.Videos = videos
	if len(videos) == 0 {
		f.notifier.Warn("No videos in the 4–20 min range.")
		return outcome
	}

	f.notifier.Results(videos)

	stop = f.notifier.StartStep("🤖 Finding the best video...")
	best, err := f.picker.SelectBest(ctx, videos, query)
	stop()
	if err != nil {
		// the bundled selector never errors; other implementations may
		upstreamErrors.WithLabelValues("select").Inc()
		f.logger.Errorw("best-pick selection failed", "query", query, "error", err)
	}
	outcome.Best = best

	if best != nil {
		f.notifier.BestPick(best)
	}

	return outcome
}

// Package youtube wraps the YouTube Data API v3 search and video
// metadata endpoints behind the two narrow operations the find workflow
// needs: candidate search and duration filtering.
package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"tubepick/internal/app/duration"
	"tubepick/internal/app/model"
)

const (
	maxResults    = 20
	recencyWindow = 14 * 24 * time.Hour

	// Inclusive duration acceptance window, in minutes
	minDurationMinutes = 4
	maxDurationMinutes = 20
)

// Client issues keyword searches and metadata lookups against the
// YouTube Data API.
type Client struct {
	svc    *youtube.Service
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewClient creates a YouTube client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string, logger *zap.SugaredLogger) (*Client, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Search returns the candidate identifiers for a keyword query.
// Results are restricted to relevance-ordered, medium-duration videos
// published within the trailing 14 days, capped at 20. An empty query
// yields an empty result without a call.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		VideoDuration("medium").
		MaxResults(maxResults).
		PublishedAfter(publishedAfter(c.now())).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	return candidateIDs(resp.Items), nil
}

// Filter fetches metadata for the given candidate identifiers in one
// batched call and keeps only videos inside the duration window. Output
// order follows the API response. A single unparseable item is skipped
// rather than aborting the rest of the batch.
func (c *Client) Filter(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resp, err := c.svc.Videos.List([]string{"contentDetails", "snippet"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube video details: %w", err)
	}

	return c.keepWithinWindow(resp.Items), nil
}

func (c *Client) keepWithinWindow(items []*youtube.Video) []model.Video {
	kept := make([]model.Video, 0, len(items))
	for _, item := range items {
		if item.ContentDetails == nil || item.Snippet == nil {
			c.logger.Warnw("skipping video with incomplete metadata", "id", item.Id)
			continue
		}

		minutes, err := duration.Parse(item.ContentDetails.Duration)
		if err != nil {
			c.logger.Warnw("skipping video with unparseable duration",
				"id", item.Id, "duration", item.ContentDetails.Duration, "error", err)
			continue
		}

		if minutes < minDurationMinutes || minutes > maxDurationMinutes {
			continue
		}

		kept = append(kept, model.NewVideo(item.Id, item.Snippet.Title, minutes))
	}
	return kept
}

// publishedAfter computes the RFC3339 lower bound of the recency window.
func publishedAfter(now time.Time) string {
	return now.UTC().Add(-recencyWindow).Format(time.RFC3339)
}

func candidateIDs(items []*youtube.SearchResult) []string {
	return lo.FilterMap(items, func(item *youtube.SearchResult, _ int) (string, bool) {
		if item.Id == nil || item.Id.VideoId == "" {
			return "", false
		}
		return item.Id.VideoId, true
	})
}

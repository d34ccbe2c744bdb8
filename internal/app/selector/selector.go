// Package selector picks the single best video for a query by asking a
// generative language model to rank candidate titles.
package selector

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"tubepick/internal/app/model"
)

// Completer is the narrow capability the selector needs from a language
// model: one free-text prompt in, one completion out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Selector ranks filtered videos with a language model and falls back to
// the first candidate whenever the model is unusable.
type Selector struct {
	completer Completer
	logger    *zap.SugaredLogger
}

// New creates a Selector backed by the given completer.
func New(completer Completer, logger *zap.SugaredLogger) *Selector {
	return &Selector{
		completer: completer,
		logger:    logger,
	}
}

// SelectBest returns the best-matching video for the query, or nil when
// there are no candidates. An empty query returns the first video. A
// model reply that is "0", non-numeric, out of range, or an outright
// call failure silently falls back to the first video.
func (s *Selector) SelectBest(ctx context.Context, videos []model.Video, query string) (*model.Video, error) {
	if len(videos) == 0 {
		return nil, nil
	}
	if strings.TrimSpace(query) == "" {
		return &videos[0], nil
	}

	reply, err := s.completer.Complete(ctx, buildPrompt(videos, query))
	if err != nil {
		s.logger.Warnw("best-pick completion failed, falling back to first candidate", "error", err)
		return &videos[0], nil
	}

	idx, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || idx < 1 || idx > len(videos) {
		s.logger.Debugw("unusable best-pick reply, falling back to first candidate", "reply", reply)
		return &videos[0], nil
	}

	return &videos[idx-1], nil
}

func buildPrompt(videos []model.Video, query string) string {
	lines := lo.Map(videos, func(v model.Video, i int) string {
		return fmt.Sprintf("%d. %s", i+1, v.Title)
	})

	return fmt.Sprintf(`You're an expert YouTube content curator. Pick the most relevant video to: %q
Videos:
%s
Reply ONLY with the number. If none match, reply "0".`, query, strings.Join(lines, "\n"))
}

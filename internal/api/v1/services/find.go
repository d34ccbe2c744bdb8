package services

import (
	"context"

	"tubepick/internal/api/v1/dto"
	"tubepick/internal/app/finder"
)

// FindService runs the find workflow for API requests
type FindService interface {
	Find(ctx context.Context, query string) (*dto.FindResponse, error)
}

type findService struct {
	finder *finder.Finder
}

// NewFindService creates a FindService backed by the workflow orchestrator
func NewFindService(f *finder.Finder) FindService {
	return &findService{finder: f}
}

// Find executes one workflow run. The orchestrator degrades upstream
// failures to empty outcomes, so the only errors here are contextual
// (cancellation).
func (s *findService) Find(ctx context.Context, query string) (*dto.FindResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outcome := s.finder.Find(ctx, query)
	return dto.NewFindResponse(outcome), nil
}

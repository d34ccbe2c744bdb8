package dto

import (
	"github.com/samber/lo"

	"tubepick/internal/app/model"
)

// FindRequest is the body of POST /api/v1/find
type FindRequest struct {
	Query string `json:"query" binding:"required,min=1,max=200"`
}

// VideoResponse represents one filtered video in API responses
type VideoResponse struct {
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// FindResponse represents the outcome of one find workflow run
type FindResponse struct {
	Query      string          `json:"query"`
	Candidates int             `json:"candidates"`
	Videos     []VideoResponse `json:"videos"`
	Best       *VideoResponse  `json:"best,omitempty"`
}

// NewVideoResponse converts a domain video to its API representation
func NewVideoResponse(v model.Video) VideoResponse {
	return VideoResponse{
		Title:           v.Title,
		URL:             v.URL,
		DurationMinutes: v.Duration,
	}
}

// NewFindResponse converts a workflow outcome to its API representation
func NewFindResponse(outcome *model.FindOutcome) *FindResponse {
	resp := &FindResponse{
		Query:      outcome.Query,
		Candidates: outcome.Candidates,
		Videos: lo.Map(outcome.Videos, func(v model.Video, _ int) VideoResponse {
			return NewVideoResponse(v)
		}),
	}

	if outcome.Best != nil {
		best := NewVideoResponse(*outcome.Best)
		resp.Best = &best
	}

	return resp
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubepick/internal/app/model"
)

func TestNewFindResponse(t *testing.T) {
	outcome := &model.FindOutcome{
		Query:      "lofi study beats",
		Candidates: 20,
		Videos: []model.Video{
			{Title: "a", URL: "https://www.youtube.com/watch?v=a", Duration: 5.5},
			{Title: "b", URL: "https://www.youtube.com/watch?v=b", Duration: 12},
		},
	}
	outcome.Best = &outcome.Videos[1]

	resp := NewFindResponse(outcome)

	assert.Equal(t, "lofi study beats", resp.Query)
	assert.Equal(t, 20, resp.Candidates)
	require.Len(t, resp.Videos, 2)
	assert.Equal(t, 5.5, resp.Videos[0].DurationMinutes)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "b", resp.Best.Title)
}

func TestNewFindResponseNoBest(t *testing.T) {
	resp := NewFindResponse(&model.FindOutcome{Query: "q", Candidates: 3})

	assert.Nil(t, resp.Best)
	assert.Empty(t, resp.Videos)
}

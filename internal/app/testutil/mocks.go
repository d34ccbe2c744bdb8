// Package testutil provides testify-based doubles for the workflow's
// external collaborators so tests run without network calls.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tubepick/internal/app/model"
)

// MockSearcher is a mock implementation of finder.Searcher.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	var ids []string
	if v := args.Get(0); v != nil {
		ids = v.([]string)
	}
	return ids, args.Error(1)
}

// MockFilterer is a mock implementation of finder.Filterer.
type MockFilterer struct {
	mock.Mock
}

func (m *MockFilterer) Filter(ctx context.Context, ids []string) ([]model.Video, error) {
	args := m.Called(ctx, ids)
	var videos []model.Video
	if v := args.Get(0); v != nil {
		videos = v.([]model.Video)
	}
	return videos, args.Error(1)
}

// MockBestPicker is a mock implementation of finder.BestPicker.
type MockBestPicker struct {
	mock.Mock
}

func (m *MockBestPicker) SelectBest(ctx context.Context, videos []model.Video, query string) (*model.Video, error) {
	args := m.Called(ctx, videos, query)
	var best *model.Video
	if v := args.Get(0); v != nil {
		best = v.(*model.Video)
	}
	return best, args.Error(1)
}

// MockCompleter is a mock implementation of selector.Completer.
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockTranscriber is a mock implementation of voice.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcript(ctx context.Context, audioPath string) (string, error) {
	args := m.Called(ctx, audioPath)
	return args.String(0), args.Error(1)
}

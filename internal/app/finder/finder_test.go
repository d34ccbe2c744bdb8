package finder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tubepick/internal/app/model"
	"tubepick/internal/app/testutil"
	"tubepick/internal/app/ui"
)

// recordingNotifier captures everything the finder reports so tests can
// assert on the rendered workflow.
type recordingNotifier struct {
	steps   []string
	infos   []string
	warns   []string
	errors  []string
	results [][]model.Video
	best    []*model.Video
}

var _ ui.Notifier = (*recordingNotifier)(nil)

func (r *recordingNotifier) StartStep(description string) ui.StopFunc {
	r.steps = append(r.steps, description)
	return func() {}
}

func (r *recordingNotifier) Info(format string, args ...interface{}) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingNotifier) Warn(format string, args ...interface{}) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func (r *recordingNotifier) Error(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingNotifier) Results(videos []model.Video) {
	r.results = append(r.results, videos)
}

func (r *recordingNotifier) BestPick(v *model.Video) {
	r.best = append(r.best, v)
}

type fixture struct {
	searcher *testutil.MockSearcher
	filterer *testutil.MockFilterer
	picker   *testutil.MockBestPicker
	notifier *recordingNotifier
	finder   *Finder
}

func newFixture() *fixture {
	f := &fixture{
		searcher: new(testutil.MockSearcher),
		filterer: new(testutil.MockFilterer),
		picker:   new(testutil.MockBestPicker),
		notifier: &recordingNotifier{},
	}
	f.finder = New(f.searcher, f.filterer, f.picker, f.notifier, zap.NewNop().Sugar())
	return f
}

func nVideos(n int) []model.Video {
	videos := make([]model.Video, n)
	for i := range videos {
		videos[i] = model.Video{
			Title:    fmt.Sprintf("video %d", i+1),
			URL:      fmt.Sprintf("https://www.youtube.com/watch?v=v%d", i+1),
			Duration: 10,
		}
	}
	return videos
}

func nIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i+1)
	}
	return ids
}

func TestFindFullWorkflow(t *testing.T) {
	f := newFixture()
	ids := nIDs(20)
	videos := nVideos(7)
	best := &videos[2]

	f.searcher.On("Search", mock.Anything, "lofi study beats").Return(ids, nil)
	f.filterer.On("Filter", mock.Anything, ids).Return(videos, nil)
	f.picker.On("SelectBest", mock.Anything, videos, "lofi study beats").Return(best, nil)

	outcome := f.finder.Find(context.Background(), "lofi study beats")

	require.NotNil(t, outcome)
	assert.Equal(t, 20, outcome.Candidates)
	assert.Len(t, outcome.Videos, 7)
	require.NotNil(t, outcome.Best)
	assert.Equal(t, "video 3", outcome.Best.Title)

	// the workflow renders results before selecting, then the pick
	require.Len(t, f.notifier.results, 1)
	assert.Len(t, f.notifier.results[0], 7)
	require.Len(t, f.notifier.best, 1)
	assert.Equal(t, best, f.notifier.best[0])
	assert.Len(t, f.notifier.steps, 3)
	assert.Empty(t, f.notifier.warns)

	f.searcher.AssertExpectations(t)
	f.filterer.AssertExpectations(t)
	f.picker.AssertExpectations(t)
}

func TestFindNoSearchResults(t *testing.T) {
	f := newFixture()
	f.searcher.On("Search", mock.Anything, "xyzzynonexistentquery123").Return([]string{}, nil)

	outcome := f.finder.Find(context.Background(), "xyzzynonexistentquery123")

	assert.Equal(t, 0, outcome.Candidates)
	assert.Empty(t, outcome.Videos)
	assert.Nil(t, outcome.Best)
	assert.Contains(t, f.notifier.warns, "No videos found.")

	// no further steps execute after the terminal no-results state
	f.filterer.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
	f.picker.AssertNotCalled(t, "SelectBest", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindNothingInDurationWindow(t *testing.T) {
	f := newFixture()
	ids := nIDs(5)
	f.searcher.On("Search", mock.Anything, "long documentaries").Return(ids, nil)
	f.filterer.On("Filter", mock.Anything, ids).Return([]model.Video{}, nil)

	outcome := f.finder.Find(context.Background(), "long documentaries")

	assert.Equal(t, 5, outcome.Candidates)
	assert.Empty(t, outcome.Videos)
	assert.Nil(t, outcome.Best)
	assert.Contains(t, f.notifier.warns, "No videos in the 4–20 min range.")
	f.picker.AssertNotCalled(t, "SelectBest", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindEmptyQuery(t *testing.T) {
	f := newFixture()

	outcome := f.finder.Find(context.Background(), "   ")

	assert.Equal(t, 0, outcome.Candidates)
	assert.Empty(t, outcome.Videos)
	assert.Nil(t, outcome.Best)
	f.searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestFindSearchFailure(t *testing.T) {
	f := newFixture()
	f.searcher.On("Search", mock.Anything, "anything").
		Return(nil, errors.New("quota exceeded"))

	outcome := f.finder.Find(context.Background(), "anything")

	// upstream failure degrades to the no-results state, never a crash
	assert.Equal(t, 0, outcome.Candidates)
	require.Len(t, f.notifier.errors, 1)
	assert.Contains(t, f.notifier.errors[0], "quota exceeded")
	assert.Contains(t, f.notifier.warns, "No videos found.")
	f.filterer.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
}

func TestFindFilterPartialFailure(t *testing.T) {
	f := newFixture()
	ids := nIDs(3)
	partial := nVideos(1)
	best := &partial[0]

	f.searcher.On("Search", mock.Anything, "partial").Return(ids, nil)
	f.filterer.On("Filter", mock.Anything, ids).
		Return(partial, errors.New("metadata call interrupted"))
	f.picker.On("SelectBest", mock.Anything, partial, "partial").Return(best, nil)

	outcome := f.finder.Find(context.Background(), "partial")

	// whatever was filtered before the failure still flows through
	require.Len(t, f.notifier.errors, 1)
	assert.Len(t, outcome.Videos, 1)
	assert.Equal(t, best, outcome.Best)
}

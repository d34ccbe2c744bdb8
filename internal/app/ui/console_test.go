package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"tubepick/internal/app/model"
)

func testConsole() (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Console{out: &buf, enabled: false}, &buf
}

func sevenVideos() []model.Video {
	videos := make([]model.Video, 7)
	for i := range videos {
		videos[i] = model.Video{
			Title:    string(rune('A' + i)),
			URL:      "https://www.youtube.com/watch?v=" + string(rune('a'+i)),
			Duration: 5,
		}
	}
	return videos
}

func TestResultsListsAtMostFive(t *testing.T) {
	c, buf := testConsole()

	c.Results(sevenVideos())

	out := buf.String()
	assert.Contains(t, out, "1. A (5.00 min)")
	assert.Contains(t, out, "5. E (5.00 min)")
	assert.NotContains(t, out, "6. F")
	assert.Contains(t, out, "...and 2 more.")
}

func TestResultsShortListHasNoRemainder(t *testing.T) {
	c, buf := testConsole()

	c.Results(sevenVideos()[:3])

	out := buf.String()
	assert.Contains(t, out, "3. C")
	assert.NotContains(t, out, "more.")
}

func TestBestPick(t *testing.T) {
	c, buf := testConsole()

	c.BestPick(&model.Video{Title: "winner", URL: "https://www.youtube.com/watch?v=w", Duration: 7.25})

	out := buf.String()
	assert.Contains(t, out, "Top Pick")
	assert.Contains(t, out, "winner (7.25 min)")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=w")
}

func TestBestPickNil(t *testing.T) {
	c, buf := testConsole()

	c.BestPick(nil)

	assert.Empty(t, buf.String())
}

func TestStartStepDisabledPrintsStatusLine(t *testing.T) {
	c, buf := testConsole()

	stop := c.StartStep("Searching YouTube...")
	stop()

	assert.Contains(t, buf.String(), "Searching YouTube...")
}

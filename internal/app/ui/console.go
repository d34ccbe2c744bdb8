package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"tubepick/internal/app/model"
)

// maxListed caps how many filtered results the console prints before
// collapsing the rest into a count.
const maxListed = 5

// Console is the terminal Notifier: mpb spinners around network steps,
// plain text for messages and results.
type Console struct {
	out      io.Writer
	progress *mpb.Progress
	enabled  bool
}

// NewConsole creates a console notifier. With spinners disabled (e.g.
// non-TTY output) steps are printed as one-line status messages instead.
func NewConsole(spinners bool) *Console {
	c := &Console{
		out:     os.Stdout,
		enabled: spinners,
	}
	if spinners {
		c.progress = mpb.New(
			mpb.WithOutput(os.Stderr),
			mpb.WithRefreshRate(120*time.Millisecond),
		)
	}
	return c
}

func (c *Console) StartStep(description string) StopFunc {
	if !c.enabled || c.progress == nil {
		fmt.Fprintln(c.out, description)
		return func() {}
	}

	bar := c.progress.New(1,
		mpb.SpinnerStyle(),
		mpb.BarFillerClearOnComplete(),
		mpb.PrependDecorators(decor.Name(description)),
	)
	return func() {
		bar.Increment()
	}
}

func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) Warn(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "⚠️  "+format+"\n", args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "❌ "+format+"\n", args...)
}

func (c *Console) Results(videos []model.Video) {
	fmt.Fprintln(c.out, "📄 Filtered Results:")
	for i, v := range videos {
		if i == maxListed {
			break
		}
		fmt.Fprintf(c.out, "%d. %s (%.2f min) - %s\n", i+1, v.Title, v.Duration, v.URL)
	}
	if len(videos) > maxListed {
		fmt.Fprintf(c.out, "...and %d more.\n", len(videos)-maxListed)
	}
}

func (c *Console) BestPick(v *model.Video) {
	if v == nil {
		return
	}
	fmt.Fprintln(c.out, "🏆 Top Pick:")
	fmt.Fprintf(c.out, "%s (%.2f min)\n", v.Title, v.Duration)
	fmt.Fprintf(c.out, "📺 %s\n", v.URL)
}

// Wait flushes pending spinner output. Call once after the workflow.
func (c *Console) Wait() {
	if c.progress != nil {
		c.progress.Wait()
	}
}

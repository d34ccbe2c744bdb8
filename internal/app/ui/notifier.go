// Package ui renders workflow progress and results. The finder talks to
// a Notifier so the CLI can show spinners and lists while the HTTP
// surface stays silent.
package ui

import "tubepick/internal/app/model"

// StopFunc finishes the progress indication started by StartStep.
type StopFunc func()

// Notifier receives status messages and progressive results from the
// workflow orchestrator.
type Notifier interface {
	// StartStep brackets one network-bound step with a progress
	// indication; the returned StopFunc ends it.
	StartStep(description string) StopFunc

	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})

	// Results renders the filtered candidate list.
	Results(videos []model.Video)
	// BestPick renders the selected top pick.
	BestPick(v *model.Video)
}

// Silent is a Notifier that discards everything. The HTTP service uses
// it; results travel in the response body instead.
type Silent struct{}

// NewSilent creates a no-op notifier.
func NewSilent() Silent { return Silent{} }

func (Silent) StartStep(string) StopFunc    { return func() {} }
func (Silent) Info(string, ...interface{})  {}
func (Silent) Warn(string, ...interface{})  {}
func (Silent) Error(string, ...interface{}) {}
func (Silent) Results([]model.Video)        {}
func (Silent) BestPick(*model.Video)        {}

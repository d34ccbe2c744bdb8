package model

import "math"

// Video is the resolved, filtered metadata for one search candidate.
// Immutable after construction.
type Video struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Duration float64 `json:"duration"` // minutes, rounded to 2 decimals
}

// NewVideo builds a Video from a candidate identifier and raw metadata.
func NewVideo(id, title string, minutes float64) Video {
	return Video{
		Title:    title,
		URL:      WatchURL(id),
		Duration: math.Round(minutes*100) / 100,
	}
}

// WatchURL derives the watch page URL for a candidate identifier.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// FindOutcome is the result of one workflow run.
// Candidates counts the raw search hits before duration filtering, which
// lets callers distinguish "no videos found" from "none in range".
type FindOutcome struct {
	Query      string  `json:"query"`
	Candidates int     `json:"candidates"`
	Videos     []Video `json:"videos"`
	Best       *Video  `json:"best,omitempty"`
}

// Package web carries the embedded single-page UI served next to the
// JSON API.
package web

import _ "embed"

//go:embed static/index.html
var indexHTML []byte

// Index returns the main HTML page.
func Index() []byte {
	return indexHTML
}

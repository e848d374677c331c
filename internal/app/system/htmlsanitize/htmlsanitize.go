// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-supplied text
// (volunteer notes, log messages) before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.StrictPolicy()

// Sanitize strips all markup, keeping only the text content. Script and
// style bodies are dropped entirely.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

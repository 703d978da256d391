package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips all markup from user-supplied free text (nudge and coach
// chat messages) before it is echoed or logged.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

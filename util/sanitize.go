package util

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeUGC strips unsafe markup from user-authored content and returns the
// unescaped text.
func SanitizeUGC(val string) string {
	return html.UnescapeString(ugcPolicy.Sanitize(val))
}

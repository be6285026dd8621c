// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute, keeping only text content.
var strict = bluemonday.StrictPolicy()

// PlainText strips all markup from free text submitted through the public
// forms and trims surrounding whitespace. The result is plain text: entities
// are decoded again, so it must be escaped wherever it is rendered as HTML.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

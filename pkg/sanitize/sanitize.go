// Package sanitize reduces user supplied free text to plain text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"</p>", "\n",
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"</div>", "\n",
)

// Text strips markup and unescapes entities. Spaces are collapsed within each
// line; line breaks survive, with at most one blank line between paragraphs.
func Text(content string) string {
	clean := html.UnescapeString(policy.Sanitize(lineBreaks.Replace(content)))

	lines := make([]string, 0)
	blank := false
	for _, line := range strings.Split(clean, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if len(lines) > 0 && !blank {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		blank = false
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Optional applies Text to a pointer value. Blank results become nil.
func Optional(value *string) *string {
	if value == nil {
		return nil
	}
	clean := Text(*value)
	if clean == "" {
		return nil
	}
	return &clean
}

// List sanitizes each entry and drops the ones left empty.
func List(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if clean := Text(v); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

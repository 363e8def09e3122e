// File: internal/markdown/normalizer.go
package markdown

import "regexp"

// The assistant backend streams replies line by line and loses some of the
// blank lines markdown needs, so headings, separators and list items arrive
// glued to the surrounding text. These substitutions repair the common
// run-ins before the content is rendered. They apply to assistant content
// only; user content is displayed verbatim.
//
// Order matters on pathological inputs, so it is fixed here.
var (
	// "---###" style: separator dashes glued to a heading marker.
	reSeparatorHeading = regexp.MustCompile(`---+(#{1,6})`)
	// A heading marker with no newline in front of it.
	reHeadingRunIn = regexp.MustCompile(`([^\n])(#{1,6}\s)`)
	// A "- " list item whose line break is missing a blank line.
	reListRunIn = regexp.MustCompile(`([^\n])(\n-\s)`)
	// A heading line directly followed by body text.
	reHeadingTail = regexp.MustCompile(`(#{1,6}\s[^\n]+)(\n)([^#\n-])`)
)

// Normalize repairs malformed markdown in assistant replies. It is a pure
// transform and idempotent: applying it to its own output changes nothing.
func Normalize(content string) string {
	out := reSeparatorHeading.ReplaceAllString(content, "\n\n$1")
	out = reHeadingRunIn.ReplaceAllString(out, "$1\n\n$2")
	out = reListRunIn.ReplaceAllString(out, "$1\n$2")
	out = reHeadingTail.ReplaceAllString(out, "$1\n\n$3")
	return out
}

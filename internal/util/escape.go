package util

import "strings"

// htmlEscaper maps the five HTML-significant characters to entities.
//
// strings.Replacer makes a single left-to-right pass and never rescans
// replacement text, so already-produced entities are not escaped again.
// The stdlib html.EscapeString is not used because it emits &#34; for
// double quotes where this dialect requires &quot;.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces &, <, >, " and ' with their HTML entities.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

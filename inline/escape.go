package inline

import "golang.org/x/net/html"

// Escape replaces the HTML-significant characters &, <, >, ", and ' with
// their entity forms, ampersand first so already-present entities are not
// produced by accident but a literal "&amp;" in the input still round-trips
// as text. The empty string maps to itself.
//
// Escape must run before markup insertion, never after. Callers embedding
// their own metadata (titles, timestamps) next to rendered output should pass
// it through Escape as well.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return html.EscapeString(s)
}

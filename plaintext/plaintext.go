package plaintext

import (
	"regexp"
	"strings"
)

// A rule rewrites one notation form. Rules run in declaration order, and the
// order matters: images flatten before links so the leading bang is not
// stranded, and break lines vanish before list markers are stripped so a
// spaced break is removed whole rather than losing its first dash.
type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	// Fenced code unwraps to its body.
	{regexp.MustCompile("(?s)`{3,}[a-zA-Z0-9]*\n?(.*?)`{3,}"), "$1"},
	// A stray fence line with no partner is dropped.
	{regexp.MustCompile("(?m)^`{3,}.*$\n?"), ""},
	{regexp.MustCompile("`([^`]+)`"), "$1"},

	{regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`), "$1 ($2)"},
	{regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`), "$1 ($2)"},

	{regexp.MustCompile(`\*\*(.+?)\*\*`), "$1"},
	{regexp.MustCompile(`\*([^*\n]+)\*`), "$1"},
	{regexp.MustCompile(`~~(.+?)~~`), "$1"},

	{regexp.MustCompile(`(?m)^[ \t]*(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$\n?`), ""},

	{regexp.MustCompile(`(?m)^(?:>[ \t]?)+`), ""},
	{regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`), ""},
	{regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`), ""},
	{regexp.MustCompile(`(?m)^#{1,6}[ \t]+`), ""},
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Reduce strips markdown notation from text and returns the remaining
// words. Reduce is idempotent: applying it to its own output returns the
// output unchanged.
func Reduce(text string) string {
	if text == "" {
		return ""
	}

	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}

	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

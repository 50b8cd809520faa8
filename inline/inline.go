package inline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Options controls how anchors are produced by the transform pipeline.
type Options struct {
	// DisableAutolinks turns off promotion of bare URLs to anchors.
	DisableAutolinks bool

	// LinkTarget is the value of the target attribute on produced anchors.
	// Empty omits the attribute.
	LinkTarget string

	// LinkRel is the value of the rel attribute on produced anchors.
	// Empty omits the attribute.
	LinkRel string
}

// DefaultOptions returns the default transform options: autolinks enabled,
// links opening in a new tab with a safe rel attribute.
func DefaultOptions() Options {
	return Options{
		LinkTarget: "_blank",
		LinkRel:    "noopener noreferrer",
	}
}

// Mask sentinels. Private-use runes are stripped from input before the
// pipeline runs, so these cannot collide with source content.
const (
	maskOpen  = "\uE000"
	maskClose = "\uE001"
)

var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe   = regexp.MustCompile(`\*([^*]+)\*`)
	strikeRe   = regexp.MustCompile(`~~(.+?)~~`)
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]*)\)`)

	// A bare URL counts only at start of text or after whitespace or an open
	// paren. The value stops at whitespace, a closing paren, a tag boundary,
	// or a mask sentinel so an adjacent masked span is never swallowed into
	// the URL.
	autolinkRe = regexp.MustCompile(`(^|[(\s])((?:https?://|www\.)[^\s<)\x{E000}\x{E001}]+)`)
)

// masker replaces finished pipeline output with sentinel tokens so later
// stages scan past it as inert text.
type masker struct {
	spans []string
}

func (m *masker) mask(s string) string {
	token := maskOpen + strconv.Itoa(len(m.spans)) + maskClose
	m.spans = append(m.spans, s)
	return token
}

// restore reinserts masked spans, newest first: a span masked late (an
// anchor) may itself contain an earlier token (a code span in its label).
func (m *masker) restore(s string) string {
	for i := len(m.spans) - 1; i >= 0; i-- {
		token := maskOpen + strconv.Itoa(i) + maskClose
		s = strings.Replace(s, token, m.spans[i], 1)
	}
	return s
}

// Transform escapes text and applies the span pipeline with default options.
func Transform(s string) string {
	return TransformWithOptions(s, DefaultOptions())
}

// TransformWithOptions escapes text and applies, in order: inline code, bold,
// italic, strikethrough, explicit links, and bare-URL autolinks. The result
// is safe to embed in a container element without further escaping: every
// character of the input appears either entity-escaped or inside markup the
// pipeline itself inserted.
func TransformWithOptions(s string, opts Options) string {
	if s == "" {
		return ""
	}

	// Drop private-use runes: the chat exporter uses them for citation
	// markers, and the masker owns that range here.
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Co, r) {
			return -1
		}
		return r
	}, s)

	out := Escape(s)

	var m masker

	// Code span content is literal: mask it away from every later stage.
	out = codeSpanRe.ReplaceAllStringFunc(out, func(match string) string {
		return m.mask("<code>" + match[1:len(match)-1] + "</code>")
	})

	// Bold before italic so ** runs are consumed before single asterisks
	// are considered.
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = strikeRe.ReplaceAllString(out, "<del>$1</del>")

	out = linkRe.ReplaceAllStringFunc(out, func(match string) string {
		sub := linkRe.FindStringSubmatch(match)
		return m.mask(anchor(sub[2], sub[1], opts))
	})

	if !opts.DisableAutolinks {
		out = autolinkRe.ReplaceAllStringFunc(out, func(match string) string {
			sub := autolinkRe.FindStringSubmatch(match)
			href := sub[2]
			if strings.HasPrefix(href, "www.") {
				href = "https://" + href
			}
			return sub[1] + m.mask(anchor(href, sub[2], opts))
		})
	}

	return m.restore(out)
}

// anchor builds an anchor tag. The href is inserted verbatim: the global
// escape has already run, and nothing after this point rescans it.
func anchor(href, label string, opts Options) string {
	var sb strings.Builder
	sb.WriteString(`<a href="`)
	sb.WriteString(href)
	sb.WriteString(`"`)
	if opts.LinkTarget != "" {
		sb.WriteString(` target="`)
		sb.WriteString(opts.LinkTarget)
		sb.WriteString(`"`)
	}
	if opts.LinkRel != "" {
		sb.WriteString(` rel="`)
		sb.WriteString(opts.LinkRel)
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(label)
	sb.WriteString("</a>")
	return sb.String()
}

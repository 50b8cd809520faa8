package render

import (
	"strconv"
	"strings"

	"github.com/tsawler/scripta/inline"
	"github.com/tsawler/scripta/model"
)

// HTML renders blocks as HTML fragments joined by newlines, using the
// default inline options.
func HTML(blocks []model.Block) string {
	return HTMLWithOptions(blocks, inline.DefaultOptions())
}

// HTMLWithOptions renders blocks as HTML fragments joined by newlines.
// Unknown block types render as nothing rather than failing.
func HTMLWithOptions(blocks []model.Block, opts inline.Options) string {
	fragments := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if f := fragment(b, opts); f != "" {
			fragments = append(fragments, f)
		}
	}
	return strings.Join(fragments, "\n")
}

func fragment(b model.Block, opts inline.Options) string {
	switch v := b.(type) {
	case *model.Paragraph:
		return "<p>" + inline.TransformWithOptions(v.Text, opts) + "</p>"
	case *model.Heading:
		level := v.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		tag := "h" + strconv.Itoa(level)
		return "<" + tag + ">" + inline.TransformWithOptions(v.Text, opts) + "</" + tag + ">"
	case *model.OrderedList:
		return list("ol", v.Items, opts)
	case *model.UnorderedList:
		return list("ul", v.Items, opts)
	case *model.CodeBlock:
		return codeBlock(v)
	case *model.Quote:
		return "<blockquote>" + HTMLWithOptions(v.Blocks, opts) + "</blockquote>"
	case *model.Table:
		return table(v, opts)
	case *model.ThematicBreak:
		return "<hr>"
	}
	return ""
}

func list(tag string, items []string, opts inline.Options) string {
	var sb strings.Builder
	sb.WriteString("<" + tag + ">")
	for _, item := range items {
		sb.WriteString("<li>")
		sb.WriteString(inline.TransformWithOptions(item, opts))
		sb.WriteString("</li>")
	}
	sb.WriteString("</" + tag + ">")
	return sb.String()
}

// codeBlock escapes its content without inline transformation: the body is
// literal text.
func codeBlock(c *model.CodeBlock) string {
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if c.Language != "" {
		sb.WriteString(` class="language-`)
		sb.WriteString(inline.Escape(c.Language))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(inline.Escape(strings.Join(c.Lines, "\n")))
	sb.WriteString("</code></pre>")
	return sb.String()
}

func table(t *model.Table, opts inline.Options) string {
	var sb strings.Builder
	sb.WriteString("<table><thead><tr>")
	for _, cell := range t.Header {
		sb.WriteString("<th>")
		sb.WriteString(inline.TransformWithOptions(cell, opts))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<td>")
			sb.WriteString(inline.TransformWithOptions(cell, opts))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

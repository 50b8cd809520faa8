package segment

import (
	"regexp"
	"strings"

	"github.com/tsawler/scripta/model"
)

var (
	fenceOpenRe  = regexp.MustCompile("^`{3,}(.*)$")
	fenceCloseRe = regexp.MustCompile("^`{3,}[ \t]*$")

	// Three or more of the same marker, optionally spaced out.
	breakRe = regexp.MustCompile(`^[ \t]*(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)

	// The divider row under a table header: pipe-separated runs of dashes
	// with optional alignment colons.
	dividerRe = regexp.MustCompile(`^\|?[ \t]*:?-{3,}:?[ \t]*(?:\|[ \t]*:?-{3,}:?[ \t]*)*\|?$`)

	orderedRe   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	unorderedRe = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	headingRe   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
)

// Segment classifies lines into blocks. It never fails: input that matches
// no other rule becomes a paragraph, and structural defects are reported as
// warnings on a best-effort block.
func Segment(lines []string) ([]model.Block, []model.Warning) {
	var blocks []model.Block
	var warnings []model.Warning

	i := 0
	for i < len(lines) {
		line := lines[i]

		var block model.Block
		var warns []model.Warning

		switch {
		case strings.HasPrefix(line, "```"):
			block, i, warns = scanFence(lines, i)
		case breakRe.MatchString(line):
			block = &model.ThematicBreak{}
			i++
		case strings.HasPrefix(line, ">"):
			block, i, warns = scanQuote(lines, i)
		case isTableStart(lines, i):
			block, i, warns = scanTable(lines, i)
		case orderedRe.MatchString(line):
			var items []string
			items, i = scanList(lines, i, orderedRe)
			block = &model.OrderedList{Items: items}
		case unorderedRe.MatchString(line):
			var items []string
			items, i = scanList(lines, i, unorderedRe)
			block = &model.UnorderedList{Items: items}
		case headingRe.MatchString(line):
			sub := headingRe.FindStringSubmatch(line)
			block = &model.Heading{Level: len(sub[1]), Text: strings.TrimSpace(sub[2])}
			i++
		case strings.TrimSpace(line) == "":
			i++
			continue
		default:
			block, i = scanParagraph(lines, i)
		}

		blocks = append(blocks, block)
		warnings = append(warnings, warns...)
	}

	return blocks, warnings
}

// scanFence consumes an opening fence, its body, and the closing fence if
// one exists. A fence left open at end of input keeps its body and adds a
// warning.
func scanFence(lines []string, i int) (model.Block, int, []model.Warning) {
	lang := ""
	if fields := strings.Fields(fenceOpenRe.FindStringSubmatch(lines[i])[1]); len(fields) > 0 {
		lang = fields[0]
	}

	var body []string
	for j := i + 1; j < len(lines); j++ {
		if fenceCloseRe.MatchString(lines[j]) {
			return &model.CodeBlock{Language: lang, Lines: body}, j + 1, nil
		}
		body = append(body, lines[j])
	}

	warns := []model.Warning{{
		Code:    model.WarnUnterminatedFence,
		Message: "code fence not closed before end of input",
	}}
	return &model.CodeBlock{Language: lang, Lines: body}, len(lines), warns
}

// scanQuote strips the quote marker from each contiguous quoted line and
// segments the remainder recursively, so quotes can hold any block type.
func scanQuote(lines []string, i int) (model.Block, int, []model.Warning) {
	var inner []string
	j := i
	for ; j < len(lines); j++ {
		if !strings.HasPrefix(lines[j], ">") {
			break
		}
		stripped := lines[j][1:]
		// At most one following space belongs to the marker.
		stripped = strings.TrimPrefix(stripped, " ")
		inner = append(inner, stripped)
	}

	blocks, warns := Segment(inner)
	return &model.Quote{Blocks: blocks}, j, warns
}

// isTableStart reports whether the line at i opens a table: it must carry a
// pipe and be followed immediately by a divider row.
func isTableStart(lines []string, i int) bool {
	return strings.Contains(lines[i], "|") &&
		i+1 < len(lines) &&
		dividerRe.MatchString(lines[i+1])
}

func scanTable(lines []string, i int) (model.Block, int, []model.Warning) {
	header := splitRow(lines[i])

	var rows [][]string
	var warnings []model.Warning
	ragged := false

	j := i + 2
	for ; j < len(lines); j++ {
		line := lines[j]
		if strings.TrimSpace(line) == "" || !strings.Contains(line, "|") ||
			strings.HasPrefix(line, "```") {
			break
		}
		row := splitRow(line)
		if len(row) != len(header) && !ragged {
			ragged = true
			warnings = append(warnings, model.Warning{
				Code:    model.WarnRaggedTable,
				Message: "table row width differs from header width",
			})
		}
		rows = append(rows, row)
	}

	return &model.Table{Header: header, Rows: rows}, j, warnings
}

// splitRow drops one wrapping pipe from each end and splits the rest into
// trimmed cells.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for k := range cells {
		cells[k] = strings.TrimSpace(cells[k])
	}
	return cells
}

// scanList collects contiguous lines carrying the same list marker style.
func scanList(lines []string, i int, re *regexp.Regexp) ([]string, int) {
	var items []string
	j := i
	for ; j < len(lines); j++ {
		if breakRe.MatchString(lines[j]) {
			break
		}
		sub := re.FindStringSubmatch(lines[j])
		if sub == nil {
			break
		}
		items = append(items, strings.TrimSpace(sub[1]))
	}
	return items, j
}

// scanParagraph accumulates lines until something else starts, joining them
// with single spaces the way a soft line break renders.
func scanParagraph(lines []string, i int) (model.Block, int) {
	var parts []string
	j := i
	for ; j < len(lines); j++ {
		if j > i && startsBlock(lines, j) {
			break
		}
		parts = append(parts, strings.TrimSpace(lines[j]))
	}
	return &model.Paragraph{Text: strings.TrimSpace(strings.Join(parts, " "))}, j
}

// startsBlock reports whether the line at i would open a non-paragraph
// block, which terminates a running paragraph.
func startsBlock(lines []string, i int) bool {
	line := lines[i]
	switch {
	case strings.TrimSpace(line) == "":
		return true
	case strings.HasPrefix(line, "```"):
		return true
	case breakRe.MatchString(line):
		return true
	case strings.HasPrefix(line, ">"):
		return true
	case isTableStart(lines, i):
		return true
	case orderedRe.MatchString(line):
		return true
	case unorderedRe.MatchString(line):
		return true
	case headingRe.MatchString(line):
		return true
	}
	return false
}

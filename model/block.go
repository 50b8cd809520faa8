package model

import "strings"

// BlockKind identifies the concrete type of a block
type BlockKind int

const (
	KindUnknown BlockKind = iota
	KindCodeBlock
	KindThematicBreak
	KindQuote
	KindTable
	KindOrderedList
	KindUnorderedList
	KindHeading
	KindParagraph
)

func (k BlockKind) String() string {
	switch k {
	case KindCodeBlock:
		return "CodeBlock"
	case KindThematicBreak:
		return "ThematicBreak"
	case KindQuote:
		return "Quote"
	case KindTable:
		return "Table"
	case KindOrderedList:
		return "OrderedList"
	case KindUnorderedList:
		return "UnorderedList"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	default:
		return "Unknown"
	}
}

// Block is the interface for all segmented content
type Block interface {
	Kind() BlockKind
}

// TextBlock is an interface for blocks whose content reduces to plain text
type TextBlock interface {
	Block
	GetText() string
}

// Paragraph represents a run of contiguous plain lines joined with spaces
type Paragraph struct {
	Text string
}

func (p *Paragraph) Kind() BlockKind { return KindParagraph }
func (p *Paragraph) GetText() string { return p.Text }

// Heading represents a heading
type Heading struct {
	Level int // 1-6
	Text  string
}

func (h *Heading) Kind() BlockKind { return KindHeading }
func (h *Heading) GetText() string { return h.Text }

// OrderedList represents a numbered list. Source numbering is discarded;
// items render in sequence.
type OrderedList struct {
	Items []string
}

func (l *OrderedList) Kind() BlockKind { return KindOrderedList }
func (l *OrderedList) GetText() string { return joinItems(l.Items) }

// UnorderedList represents a bulleted list
type UnorderedList struct {
	Items []string
}

func (l *UnorderedList) Kind() BlockKind { return KindUnorderedList }
func (l *UnorderedList) GetText() string { return joinItems(l.Items) }

// Table represents a pipe table: one header row plus zero or more data rows.
// Rows are not required to have the same cell count as the header.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) Kind() BlockKind { return KindTable }
func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, "\t"))
	}
	return sb.String()
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of header cells
func (t *Table) ColCount() int {
	return len(t.Header)
}

// Quote represents a blockquote holding a nested block sequence
type Quote struct {
	Blocks []Block
}

func (q *Quote) Kind() BlockKind { return KindQuote }
func (q *Quote) GetText() string {
	parts := make([]string, 0, len(q.Blocks))
	for _, b := range q.Blocks {
		if tb, ok := b.(TextBlock); ok {
			parts = append(parts, tb.GetText())
		}
	}
	return strings.Join(parts, "\n")
}

// CodeBlock represents a fenced code block. Lines are verbatim source lines
// between the fences; Language is the tag following the opening fence, or
// empty.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (c *CodeBlock) Kind() BlockKind { return KindCodeBlock }
func (c *CodeBlock) GetText() string { return strings.Join(c.Lines, "\n") }

// ThematicBreak represents a horizontal rule
type ThematicBreak struct{}

func (t *ThematicBreak) Kind() BlockKind { return KindThematicBreak }

func joinItems(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(item)
	}
	return sb.String()
}

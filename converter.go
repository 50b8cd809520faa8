package scripta

import (
	"strings"

	"github.com/tsawler/scripta/model"
	"github.com/tsawler/scripta/plaintext"
	"github.com/tsawler/scripta/render"
	"github.com/tsawler/scripta/segment"
)

// Converter converts one source text to HTML, plain text, or blocks.
// Configuration methods return modified copies and the original is never
// changed, so converters are safe to share and reuse.
type Converter struct {
	source  string
	options *renderOptions
}

// New creates a Converter with default options: autolinks on, links opening
// in a new tab with rel="noopener noreferrer".
func New() *Converter {
	return &Converter{options: defaultOptions()}
}

func (c *Converter) clone() *Converter {
	clone := *c
	clone.options = c.options.clone()
	return &clone
}

// Source returns a copy of the converter reading from text.
func (c *Converter) Source(text string) *Converter {
	clone := c.clone()
	clone.source = text
	return clone
}

// DisableAutolinks returns a copy that leaves bare URLs as plain text.
func (c *Converter) DisableAutolinks() *Converter {
	clone := c.clone()
	clone.options.autolinks = false
	return clone
}

// SameTabLinks returns a copy whose anchors carry no target attribute, so
// links open in the current tab.
func (c *Converter) SameTabLinks() *Converter {
	clone := c.clone()
	clone.options.linkTarget = ""
	return clone
}

// LinkRel returns a copy whose anchors carry rel. Empty omits the
// attribute.
func (c *Converter) LinkRel(rel string) *Converter {
	clone := c.clone()
	clone.options.linkRel = rel
	return clone
}

// Blocks segments the source into typed blocks without rendering them.
func (c *Converter) Blocks() ([]model.Block, []Warning) {
	text := normalize(c.source)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return segment.Segment(strings.Split(text, "\n"))
}

// HTML converts the source to HTML fragments joined by newlines.
func (c *Converter) HTML() (string, []Warning) {
	blocks, warnings := c.Blocks()
	return render.HTMLWithOptions(blocks, c.options.inline()), warnings
}

// PlainText strips markdown notation from the source.
func (c *Converter) PlainText() string {
	return plaintext.Reduce(normalize(c.source))
}

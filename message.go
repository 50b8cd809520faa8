package scripta

import "github.com/tsawler/scripta/model"

// Message is one chat message: the author's text plus any attachments the
// exporter resolved for it. Attachment metadata is not markdown and passes
// through rendering untouched.
type Message struct {
	Text        string
	Attachments []model.Attachment
}

// RenderedMessage is the displayable form of a [Message].
type RenderedMessage struct {
	HTML        string
	Warnings    []Warning
	Attachments []model.Attachment
}

// RenderMessage renders a message with default options.
func RenderMessage(m Message) RenderedMessage {
	return New().RenderMessage(m)
}

// RenderMessage renders m.Text with the converter's options and carries the
// attachments through unchanged.
func (c *Converter) RenderMessage(m Message) RenderedMessage {
	html, warnings := c.Source(m.Text).HTML()
	return RenderedMessage{
		HTML:        html,
		Warnings:    warnings,
		Attachments: m.Attachments,
	}
}

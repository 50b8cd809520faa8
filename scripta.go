// Package scripta renders untrusted markdown-flavored chat text as safe
// HTML fragments or plain text.
//
// # Converting
//
// The zero-configuration path is the package-level functions:
//
//	html, warnings := scripta.HTML("# Title\n\nHello **world**")
//	text := scripta.PlainText("Hello **world**")
//
// For control over link behavior, build a [Converter]:
//
//	html, warnings := scripta.New().
//		Source(input).
//		DisableAutolinks().
//		HTML()
//
// Converter methods return modified copies, so a configured converter can
// be stored and shared safely.
//
// # Safety
//
// Every character of the input reaches the output either entity-escaped or
// inside markup the renderer itself inserted. Raw HTML in the input is
// always displayed as text, never interpreted.
//
// # Warnings
//
// Conversion never fails. Structural defects in the input, such as a code
// fence left open, are reported as [Warning] values next to the output they
// describe, and the output is a best-effort rendering of the same input.
package scripta

import (
	"github.com/tsawler/scripta/inline"
	"github.com/tsawler/scripta/plaintext"
)

// HTML converts text to HTML fragments with default options.
func HTML(text string) (string, []Warning) {
	return New().Source(text).HTML()
}

// PlainText strips markdown notation from text, keeping the words.
func PlainText(text string) string {
	return plaintext.Reduce(normalize(text))
}

// Escape entity-escapes HTML-significant characters. Callers embedding
// their own metadata next to rendered output should pass it through Escape.
func Escape(s string) string {
	return inline.Escape(s)
}

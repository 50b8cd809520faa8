// Package model provides the intermediate representation (IR) for segmented
// markdown content.
//
// This package defines the data structures produced by block segmentation and
// consumed by the renderers. Segmentation partitions a source document into a
// flat, ordered sequence of these types; they are never mutated after creation.
//
// # Blocks
//
// All block-level content implements the [Block] interface. The concrete types
// are:
//
//   - [Paragraph] - free text joined from contiguous source lines
//   - [Heading] - headings (levels 1-6)
//   - [OrderedList], [UnorderedList] - flat lists of item text
//   - [Table] - header cells plus zero or more data rows
//   - [Quote] - a blockquote holding a nested block sequence
//   - [CodeBlock] - fenced code with an optional language tag
//   - [ThematicBreak] - a horizontal rule, no content
//
// The [BlockKind] tag makes the variant explicit so precedence and
// classification decisions can be asserted per kind.
//
// # Warnings
//
// Segmentation is total: malformed input still produces blocks. Non-fatal
// oddities (an unterminated code fence, a ragged table row) are reported as
// [Warning] values alongside the result rather than as errors.
//
// # Attachments
//
// [Attachment] describes a message attachment as supplied by the caller.
// Attachments are carried through untouched; only message text is rendered.
package model

// Package segment turns the lines of a markdown document into a flat
// sequence of typed blocks.
//
// # Scanning
//
// [Segment] walks the input with a cursor and classifies the line under it
// by first match in a fixed order: fenced code, thematic break, blockquote,
// table, ordered list, unordered list, heading, blank line, paragraph. Each
// match consumes one or more lines and emits at most one block, so every
// input line is owned by exactly one block.
//
// # Warnings
//
// Malformed input never fails. An unterminated code fence and a table row
// whose width differs from its header are reported as [model.Warning] values
// alongside the blocks they describe.
package segment

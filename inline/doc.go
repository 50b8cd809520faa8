// Package inline applies span-level markdown substitutions to a single
// block's text.
//
// [Escape] entity-escapes HTML-significant characters and is always applied
// before any markup is inserted. [Transform] then runs a fixed pipeline over
// the escaped text: inline code, bold, italic, strikethrough, explicit links,
// and bare-URL autolinks, in that order. Output produced by an earlier stage
// is masked while later stages run, so it is never rescanned or re-escaped.
package inline

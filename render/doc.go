// Package render serializes blocks to HTML fragments.
//
// [HTML] emits one fragment per block and joins them with newlines. Block
// text passes through the inline pipeline on the way out, so the result is
// safe to embed without further escaping. Code block content is escaped but
// never transformed.
package render

// Package plaintext strips markdown notation from text, keeping the words.
//
// [Reduce] applies a fixed chain of substitutions: code fences unwrap to
// their body, inline markers drop, links and images flatten to
// "label (url)", and structural prefixes (quote markers, list markers,
// heading hashes) disappear. The output of the chain is a fixed point:
// reducing it again changes nothing.
package plaintext

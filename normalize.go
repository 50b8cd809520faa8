package scripta

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// puaSet is the private-use plane, where chat exporters park citation
// markers that must never reach output.
var puaSet = runes.In(unicode.Co)

// normalize prepares raw text for segmentation: line endings become bare
// newlines, combining sequences compose to NFC, and private-use runes are
// dropped.
func normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	out, _, err := transform.String(transform.Chain(norm.NFC, runes.Remove(puaSet)), text)
	if err != nil {
		return text
	}
	return out
}

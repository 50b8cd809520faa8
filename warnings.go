package scripta

import (
	"strings"

	"github.com/tsawler/scripta/model"
)

// Warning reports a structural defect in the input that was rendered
// around rather than failed on.
type Warning = model.Warning

// FormatWarnings joins warning messages into a single display string.
// An empty slice formats as the empty string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

package model

// Warning codes reported during segmentation.
const (
	// WarnUnterminatedFence indicates a code fence that was still open at the
	// end of input. The block is closed at document end and rendered normally.
	WarnUnterminatedFence = "unterminated_fence"

	// WarnRaggedTable indicates a table data row whose cell count differs
	// from the header row. The row is kept as-is.
	WarnRaggedTable = "ragged_table"
)

// Warning describes a non-fatal issue encountered while processing input.
// Output is still produced; warnings let callers surface imperfect source.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return w.Message
}

package model

// Attachment describes a file attached to a message, as supplied by the
// caller. The engine never reads or rewrites attachments; they are carried
// through so callers can present them next to the rendered text.
type Attachment struct {
	// AssetID is the opaque identifier from the source export.
	AssetID string
	// Pointer is the raw asset pointer string, when present.
	Pointer string
	// SourcePath is a local file reference resolved by the importer, if any.
	SourcePath string

	Width     int
	Height    int
	SizeBytes int64
}

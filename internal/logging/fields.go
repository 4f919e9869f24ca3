// Package logging provides a structured logging wrapper around
// charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFormat       = "format"
	FieldTabWidth     = "tab_width"
	FieldVerbatimTags = "verbatim_tags"

	// Conversion fields.
	FieldTag            = "tag"
	FieldFiles          = "files"
	FieldFilesConverted = "files_converted"
	FieldBytesWritten   = "bytes_written"
	FieldUnknownTags    = "unknown_tags"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

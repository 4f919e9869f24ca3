// Package config defines core configuration types for gobbmd.
// These are pure data structures; loading and merging live in the
// configloader package.
package config

import "fmt"

// Format specifies the output markup language.
type Format string

const (
	// FormatMarkdown renders Markdown (the default backend).
	FormatMarkdown Format = "markdown"

	// FormatHTML renders HTML via the Markdown pipeline.
	FormatHTML Format = "html"
)

// IsValid returns true if the format is a known backend.
func (f Format) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}

// ParseFormat resolves a format name, accepting common shorthand.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected markdown or html)", s)
	}
}

// Tab width bounds for text rendering. Out-of-range values are rejected
// before any rendering begins.
const (
	MinTabWidth = 0
	MaxTabWidth = 255
)

// Config is the root configuration structure for gobbmd.
type Config struct {
	// Format specifies the output markup language ("markdown" or "html").
	Format Format `yaml:"format"`

	// TabWidth expands tabs in rendered text to this many spaces (0-255).
	// Zero disables expansion.
	TabWidth int `yaml:"tab_width"`

	// VerbatimTags lists tag names whose interior is never tokenized for
	// other tags.
	VerbatimTags []string `yaml:"verbatim_tags"`

	// RequireEquals rejects [name value] style parameters; only
	// [name=value] is accepted.
	RequireEquals bool `yaml:"require_equals"`

	// Extensions lists file extensions considered BBCode sources during
	// directory discovery.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Output is the explicit output path; empty means stdout for stdin
	// input and a sibling file for file input.
	Output string `yaml:"-"`

	// Strict makes check findings fail the command.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Format:        FormatMarkdown,
		TabWidth:      0,
		VerbatimTags:  []string{"code"},
		RequireEquals: true,
		Extensions:    []string{".bb", ".bbcode"},
	}
}

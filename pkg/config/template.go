package config

// DefaultTemplate returns a commented starter configuration, written by
// `gobbmd init`.
func DefaultTemplate() string {
	return `# gobbmd configuration
# See: https://github.com/yaklabco/gobbmd

# Output markup language: markdown or html.
format: markdown

# Expand tabs in rendered text to this many spaces (0-255, 0 = leave tabs).
tab_width: 0

# Tags whose interior content is never parsed for nested tags.
verbatim_tags:
  - code

# Require [name=value] for parameters; when false, [name value] also works.
require_equals: true

# File extensions treated as BBCode sources during directory discovery.
extensions:
  - .bb
  - .bbcode

# Glob patterns to skip during discovery.
ignore: []
`
}

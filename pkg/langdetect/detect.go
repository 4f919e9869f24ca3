// Package langdetect guesses the programming language of code content.
// It backs the fence info string for multi-line [code] blocks whose tag
// carries no explicit language parameter.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates limits the classifier to languages that commonly appear in
// forum code blocks; an open-ended classification is too noisy on short
// snippets.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS",
}

// Detect returns a fence info string for the given code content, or the
// empty string when no language can be determined with confidence.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// detectByPattern short-circuits on patterns that are near-unambiguous for
// snippets too short for the classifier.
func detectByPattern(trimmed []byte) string {
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")) &&
		bytes.Contains(trimmed, []byte("func ")):
		return "go"
	case bytes.Contains(trimmed, []byte("def ")) &&
		bytes.Contains(trimmed, []byte("):")):
		return "python"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`":`)):
		return "json"
	case hasSQLPrefix(trimmed):
		return "sql"
	}
	return ""
}

// hasSQLPrefix checks for a leading SQL statement keyword.
func hasSQLPrefix(trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to fence info strings.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}

package bbcode

// Options controls tokenization behavior.
type Options struct {
	// VerbatimTags lists tag names whose interior content is never
	// tokenized for other tags. While such a tag is open, only a tag with
	// the same name can validate.
	VerbatimTags []string

	// RequireEquals rejects parameterized tags that use a bare space
	// separator ([name value]); only [name=value] is accepted. When false,
	// the first space also begins a parameter.
	RequireEquals bool
}

// DefaultOptions returns the default tokenizer options: [code] content is
// verbatim and parameters require an equals sign.
func DefaultOptions() Options {
	return Options{
		VerbatimTags:  []string{"code"},
		RequireEquals: true,
	}
}

// isVerbatim reports whether name is one of the configured verbatim tags.
func (o Options) isVerbatim(name []byte) bool {
	for _, tag := range o.VerbatimTags {
		if tag == string(name) {
			return true
		}
	}
	return false
}

package configloader

import "github.com/yaklabco/gobbmd/pkg/config"

// merge overlays the non-zero fields of overlay onto base and returns base.
// Slices replace wholesale rather than appending, so a higher-precedence
// source fully controls the value it sets.
func merge(base, overlay *config.Config) *config.Config {
	if overlay == nil {
		return base
	}

	if overlay.Format != "" {
		base.Format = overlay.Format
	}
	if overlay.TabWidth != 0 {
		base.TabWidth = overlay.TabWidth
	}
	if overlay.VerbatimTags != nil {
		base.VerbatimTags = overlay.VerbatimTags
	}
	if overlay.Extensions != nil {
		base.Extensions = overlay.Extensions
	}
	if overlay.Ignore != nil {
		base.Ignore = overlay.Ignore
	}
	if overlay.Output != "" {
		base.Output = overlay.Output
	}
	if overlay.Strict {
		base.Strict = true
	}

	return base
}

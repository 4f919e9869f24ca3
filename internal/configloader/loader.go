// Package configloader provides configuration loading and resolution for
// gobbmd: project/user config discovery, environment variable overrides,
// hierarchical merging, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gobbmd/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags; it takes highest
	// precedence. Only set fields whose flags were actually provided.
	CLIConfig *config.Config

	// CLIRequireEquals carries the --require-equals flag when it was
	// explicitly set; nil means the flag was not provided. A separate
	// field because false is a meaningful override.
	CLIRequireEquals *bool

	// CLITabWidth carries the --tab-width flag when it was explicitly
	// set; nil means the flag was not provided. A separate field because
	// zero is a meaningful override.
	CLITabWidth *int
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GOBBMD_*)
//  3. Explicit config file (--config)
//  4. Project config (.gobbmd.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gobbmd/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Paths: &ConfigPaths{}}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
		result.Paths.Project = ""
	}

	// Load and merge lowest to highest precedence.

	if paths.User != "" {
		if err := applyConfigFile(cfg, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if paths.Project != "" {
		if err := applyConfigFile(cfg, paths.Project); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		if err := applyConfigFile(cfg, opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}
	if opts.CLIRequireEquals != nil {
		cfg.RequireEquals = *opts.CLIRequireEquals
	}
	if opts.CLITabWidth != nil {
		cfg.TabWidth = *opts.CLITabWidth
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// fileConfig mirrors config.Config with pointer fields, so a file can set a
// value to its zero (require_equals: false, tab_width: 0) and still win
// over a lower-precedence source.
type fileConfig struct {
	Format        *string  `yaml:"format"`
	TabWidth      *int     `yaml:"tab_width"`
	VerbatimTags  []string `yaml:"verbatim_tags"`
	RequireEquals *bool    `yaml:"require_equals"`
	Extensions    []string `yaml:"extensions"`
	Ignore        []string `yaml:"ignore"`
}

// applyConfigFile loads a YAML config file and overlays it onto cfg.
func applyConfigFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}

	if fc.Format != nil {
		cfg.Format = config.Format(*fc.Format)
	}
	if fc.TabWidth != nil {
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.VerbatimTags != nil {
		cfg.VerbatimTags = fc.VerbatimTags
	}
	if fc.RequireEquals != nil {
		cfg.RequireEquals = *fc.RequireEquals
	}
	if fc.Extensions != nil {
		cfg.Extensions = fc.Extensions
	}
	if fc.Ignore != nil {
		cfg.Ignore = fc.Ignore
	}

	return nil
}

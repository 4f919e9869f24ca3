package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gobbmd/pkg/config"
)

// envVarPrefix is the prefix for all gobbmd environment variables.
const envVarPrefix = "GOBBMD_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOBBMD_ (e.g. GOBBMD_TAB_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "FORMAT"); value != "" {
		format, err := config.ParseFormat(value)
		if err != nil {
			return fmt.Errorf("invalid %sFORMAT: %w", envVarPrefix, err)
		}
		cfg.Format = format
	}

	if value := os.Getenv(envVarPrefix + "TAB_WIDTH"); value != "" {
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %sTAB_WIDTH: %q", envVarPrefix, value)
		}
		cfg.TabWidth = width
	}

	if value := os.Getenv(envVarPrefix + "REQUIRE_EQUALS"); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sREQUIRE_EQUALS: %q (expected true/false/1/0)",
				envVarPrefix, value)
		}
		cfg.RequireEquals = b
	}

	if value := os.Getenv(envVarPrefix + "VERBATIM_TAGS"); value != "" {
		cfg.VerbatimTags = parseSliceValue(value)
	}

	if value := os.Getenv(envVarPrefix + "IGNORE"); value != "" {
		cfg.Ignore = parseSliceValue(value)
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOBBMD_FORMAT":         "Output format: markdown or html",
		"GOBBMD_TAB_WIDTH":      "Tab expansion width (0-255, 0 = off)",
		"GOBBMD_REQUIRE_EQUALS": "Require [name=value] parameters: true or false",
		"GOBBMD_VERBATIM_TAGS":  "Comma-separated list of verbatim tag names",
		"GOBBMD_IGNORE":         "Comma-separated list of ignore patterns",
	}
}

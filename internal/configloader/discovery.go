package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectConfigName is the project-level configuration file name,
// discovered by walking upward from the working directory.
const ProjectConfigName = ".gobbmd.yml"

// userConfigRelPath is the user-level config path under the XDG config home.
const userConfigRelPath = "gobbmd/config.yaml"

// ConfigPaths holds the discovered configuration file locations.
// Empty fields mean the corresponding file does not exist.
type ConfigPaths struct {
	// User is the XDG user-level config path.
	User string

	// Project is the nearest project config found by upward search.
	Project string

	// Explicit is the path given via the --config flag.
	Explicit string
}

// DiscoverPaths locates existing configuration files for the given working
// directory.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("discover paths: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{}

	if user := userConfigPath(); user != "" && fileExists(user) {
		paths.User = user
	}

	if project := findProjectConfig(workDir); project != "" {
		paths.Project = project
	}

	return paths, nil
}

// findProjectConfig walks upward from dir looking for ProjectConfigName.
func findProjectConfig(dir string) string {
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if fileExists(candidate) {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// userConfigPath resolves the XDG user config location.
func userConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, userConfigRelPath)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", userConfigRelPath)
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobbmd/internal/configloader"
	"github.com/yaklabco/gobbmd/pkg/config"
)

// writeConfig writes a project config file into dir and returns its path.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configloader.ProjectConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolateUserConfig points XDG_CONFIG_HOME at an empty directory so the
// developer's real user config cannot leak into a test.
func isolateUserConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolateUserConfig(t)

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatMarkdown, result.Config.Format)
	assert.Equal(t, 0, result.Config.TabWidth)
	assert.True(t, result.Config.RequireEquals)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	path := writeConfig(t, dir, "format: html\ntab_width: 4\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatHTML, result.Config.Format)
	assert.Equal(t, 4, result.Config.TabWidth)
	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, path, result.Paths.Project)
}

func TestLoadProjectConfigUpwardSearch(t *testing.T) {
	isolateUserConfig(t)

	root := t.TempDir()
	writeConfig(t, root, "tab_width: 2\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Config.TabWidth)
}

func TestLoadExplicitConfigSkipsProject(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	writeConfig(t, dir, "tab_width: 2\n")

	explicit := filepath.Join(dir, "other.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("tab_width: 8\n"), 0644))

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, result.Config.TabWidth)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	writeConfig(t, dir, "format: markdown\ntab_width: 2\n")
	t.Setenv("GOBBMD_FORMAT", "html")
	t.Setenv("GOBBMD_TAB_WIDTH", "6")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatHTML, result.Config.Format)
	assert.Equal(t, 6, result.Config.TabWidth)
}

func TestLoadCLIOverridesEverything(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	writeConfig(t, dir, "format: html\ntab_width: 2\nrequire_equals: true\n")
	t.Setenv("GOBBMD_TAB_WIDTH", "6")

	tabWidth := 3
	requireEquals := false
	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:       dir,
		CLIConfig:        &config.Config{Format: config.FormatMarkdown},
		CLITabWidth:      &tabWidth,
		CLIRequireEquals: &requireEquals,
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatMarkdown, result.Config.Format)
	assert.Equal(t, 3, result.Config.TabWidth)
	assert.False(t, result.Config.RequireEquals)
}

func TestLoadZeroValueFileOverrides(t *testing.T) {
	isolateUserConfig(t)

	// A file can set require_equals to false and tab_width to zero; the
	// pointer-field unmarshalling keeps those distinct from unset.
	dir := t.TempDir()
	writeConfig(t, dir, "require_equals: false\ntab_width: 0\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)
	assert.False(t, result.Config.RequireEquals)
	assert.Equal(t, 0, result.Config.TabWidth)
}

func TestLoadRejectsOutOfRangeTabWidth(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	writeConfig(t, dir, "tab_width: 300\n")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.Error(t, err)

	var validationErr *configloader.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "tab_width", validationErr.Field)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	writeConfig(t, dir, "format: pdf\n")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.Error(t, err)

	var validationErr *configloader.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "format", validationErr.Field)
}

func TestLoadMalformedYAML(t *testing.T) {
	isolateUserConfig(t)

	dir := t.TempDir()
	writeConfig(t, dir, "format: [unclosed\n")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}

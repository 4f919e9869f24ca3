package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobbmd/internal/ui/pretty"
)

func TestNewStylesColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may suppress ANSI codes in non-TTY environments, so just
	// verify the struct is populated.
	assert.NotNil(t, styles.Warning)
	assert.NotNil(t, styles.Success)
	assert.NotNil(t, styles.TagName)
}

func TestNewStylesColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "no-color Bold should not add formatting")
	assert.Equal(t, text, styles.Warning.Render(text), "no-color Warning should not add formatting")
	assert.Equal(t, text, styles.Dim.Render(text), "no-color Dim should not add formatting")
}

func TestIsColorEnabledAlways(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
}

func TestIsColorEnabledNever(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
}

func TestIsColorEnabledAutoNonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabledAutoNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

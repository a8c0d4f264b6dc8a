//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStepOutput(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(outputFile, []byte("existing=value\n"), 0644))
	t.Setenv("GITHUB_OUTPUT", outputFile)

	require.NoError(t, WriteStepOutput("sha", "abc123"))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	// Existing outputs from earlier steps must be preserved.
	assert.Equal(t, "existing=value\nsha=abc123\n", string(content))
}

func TestWriteStepOutputCreatesFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outputFile)

	require.NoError(t, WriteStepOutput("sha", "abc123"))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "sha=abc123\n", string(content))
}

func TestWriteStepOutputSkippedOutsideActions(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	assert.NoError(t, WriteStepOutput("sha", "abc123"))
}

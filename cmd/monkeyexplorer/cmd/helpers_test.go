package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// useTestConfig points the CLI at a plain-output config for the duration
// of the test and restores every flag variable afterwards.
func useTestConfig(t *testing.T, extra string) string {
	t.Helper()

	origCfgFile, origLogLevel, origLogFormat := cfgFile, logLevel, logFormat
	origWrapWidth, origSeed, origNoColor := wrapWidth, seed, noColor
	origShowName, origSearchLocation, origStatsPicks := showName, searchLocation, statsPicks
	t.Cleanup(func() {
		cfgFile, logLevel, logFormat = origCfgFile, origLogLevel, origLogFormat
		wrapWidth, seed, noColor = origWrapWidth, origSeed, origNoColor
		showName, searchLocation, statsPicks = origShowName, origSearchLocation, origStatsPicks
	})

	content := `display:
  color: false
  pause: false
catalog:
  seed: 5
logging:
  level: error
  output: stderr
` + extra

	path := filepath.Join(t.TempDir(), "explorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfgFile = path
	return path
}

// captureOutput directs cmd output and input to buffers.
func captureOutput(cmd *cobra.Command, input string) *bytes.Buffer {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(input))
	return &buf
}

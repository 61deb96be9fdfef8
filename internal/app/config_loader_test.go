package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Point at a directory with no config file so defaults apply.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(cwd) })

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "yt-dlp", config.Downloader.Binary)
	assert.Equal(t, "downloads", config.Output.Dir)
	assert.Equal(t, 1, config.Batch.Concurrency)
	assert.False(t, config.Notification.Enabled)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
downloader:
  binary: /opt/bin/yt-dlp
output:
  dir: /data/media
batch:
  concurrency: 4
logging:
  level: debug
  format: json
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/yt-dlp", config.Downloader.Binary)
	assert.Equal(t, "/data/media", config.Output.Dir)
	assert.Equal(t, 4, config.Batch.Concurrency)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

func TestLoadConfig_InvalidConcurrency(t *testing.T) {
	path := writeConfig(t, `
batch:
  concurrency: 0
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestLoadConfig_UnknownLoggingFormat(t *testing.T) {
	path := writeConfig(t, `
logging:
  format: xml
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging format")
}

func TestLoadConfig_ExpandsHomeInOutputDir(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: ~/media
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "media"), config.Output.Dir)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"shareview/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("SERVER_IP", "")
	t.Setenv("SHARE_NAME", "")

	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Contains(t, cfg.Extensions.Video, "mp4")
	assert.Contains(t, cfg.Extensions.Video, "m4v")
	assert.Contains(t, cfg.Extensions.Document, "pdf")
	assert.Equal(t, []string{".*", "@*"}, cfg.Browser.IgnorePatterns)
	assert.Equal(t, 10, cfg.Settings.MountTimeoutSeconds)
	assert.Equal(t, "mpv", cfg.Players.Linux[0])
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  address: 10.0.0.5\n  share: videos\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	t.Setenv("SERVER_IP", "192.168.1.77")
	t.Setenv("SHARE_NAME", "")

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.77", cfg.Server.Address)
	assert.Equal(t, "videos", cfg.Server.Share)
	assert.Equal(t, "smb://192.168.1.77/videos", cfg.ShareURI())
}

func TestFileMergePreservesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("settings:\n  mount_timeout_seconds: 30\nextensions:\n  video: [mp4]\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	t.Setenv("SERVER_IP", "")
	t.Setenv("SHARE_NAME", "")

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"mp4"}, cfg.Extensions.Video)
	assert.Equal(t, 30, cfg.Settings.MountTimeoutSeconds)
	// Unset sections keep defaults
	assert.Contains(t, cfg.Extensions.Document, "pdf")
	assert.NotEmpty(t, cfg.Players.Linux)
}

func TestValidateRejectsBadPattern(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Browser.IgnorePatterns = []string{"["}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDottedExtension(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Extensions.Video = []string{".mp4"}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Settings.MountTimeoutSeconds = 0
	assert.Error(t, cfg.Validate())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	t.Setenv("SERVER_IP", "")
	t.Setenv("SHARE_NAME", "")

	cfg := config.NewTestConfig()
	cfg.Settings.MountTimeoutSeconds = 20
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.10", loaded.Server.Address)
	assert.Equal(t, 20, loaded.Settings.MountTimeoutSeconds)
}

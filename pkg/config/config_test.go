package config

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dedup/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigHome points XDG_CONFIG_HOME at a fresh temp dir so tests
// never read a developer's real config file.
func isolateConfigHome(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return configHome
}

func TestLoadDefaults(t *testing.T) {
	isolateConfigHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Scan.MinSize)
	assert.Equal(t, 0, cfg.Scan.MaxDepth)
	assert.False(t, cfg.Output.Verbose)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.False(t, cfg.Action.DryRun)
}

func TestLoadUserConfigFile(t *testing.T) {
	configHome := isolateConfigHome(t)
	testutil.CreateFile(t, configHome, "dedup/config.toml", `
[scan]
min_size = 512
max_depth = 3

[output]
verbose = true
format = "text"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(512), cfg.Scan.MinSize)
	assert.Equal(t, 3, cfg.Scan.MaxDepth)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "text", cfg.Output.Format)
	// Untouched sections keep their defaults
	assert.False(t, cfg.Action.DryRun)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	configHome := isolateConfigHome(t)
	testutil.CreateFile(t, configHome, "dedup/config.toml", `
[scan]
min_size = 512
`)
	t.Setenv("DEDUP_SCAN_MIN_SIZE", "2048")
	t.Setenv("DEDUP_ACTION_DRY_RUN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(2048), cfg.Scan.MinSize)
	assert.True(t, cfg.Action.DryRun)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	configHome := isolateConfigHome(t)
	testutil.CreateFile(t, configHome, "dedup/config.toml", "not toml at all [")

	_, err := Load()
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(0), cfg.Scan.MinSize)
	assert.Equal(t, "auto", cfg.Output.Format)
}

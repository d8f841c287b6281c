package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"showroom-audit/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "showroom", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "stock_items", cfg.Database.Table)
	assert.Equal(t, 0, cfg.Scan.HistoryLimit)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, 64, cfg.Export.CacheSize)
	assert.Equal(t, 256, cfg.RFID.MaxBatch)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCAN_HISTORY_LIMIT", "5")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Scan.HistoryLimit)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPORT_DIR=/tmp/reports\nINVENTORY_SEED_DEMO=true\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("EXPORT_DIR")
		os.Unsetenv("INVENTORY_SEED_DEMO")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
	assert.True(t, cfg.Inventory.SeedDemo)
}

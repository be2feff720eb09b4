package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.Equal(t, 22, cfg.SFTP.Port)
	assert.Equal(t, "valid_category_paths.yaml", cfg.Data.PathsFile)
	assert.Equal(t, "products.js", cfg.Data.ProductsFile)
	assert.Equal(t, "Rewind the Finds", cfg.Data.Vendor)
}

func TestInitializeConfigReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "log:\n  level: debug\ndata:\n  vendor: Test Vendor\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	chdir(t, dir)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Test Vendor", cfg.Data.Vendor)
	assert.Equal(t, "products.js", cfg.Data.ProductsFile, "defaults survive partial config files")
}

func TestInitializeConfigBindsCredentialEnvVars(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHOPIFY_SHOP", "rewind-finds.myshopify.com")
	t.Setenv("SHOPIFY_TOKEN", "shpat_test")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "rewind-finds.myshopify.com", cfg.Shopify.Shop)
	assert.Equal(t, "shpat_test", cfg.Shopify.Token)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	base := func() *Config {
		var c Config
		c.Log.Level = "info"
		c.CSV.Delimiter = ","
		c.SFTP.Port = 22
		return &c
	}

	cfg := base()
	cfg.Log.Level = "loud"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.SFTP.Port = 70000
	assert.Error(t, validateConfig(cfg))

	assert.NoError(t, validateConfig(base()))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "models", cfg.OutputDir)
	assert.Equal(t, "models", cfg.PackageName)
	assert.False(t, cfg.QueryAccessors)
	assert.Empty(t, cfg.Tables)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablegen.yaml")
	content := `output_dir: gen
package: entities
query_accessors: true
tables:
  - users
  - orders
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gen", cfg.OutputDir)
	assert.Equal(t, "entities", cfg.PackageName)
	assert.True(t, cfg.QueryAccessors)
	assert.Equal(t, []string{"users", "orders"}, cfg.Tables)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: app\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.PackageName)
	assert.Equal(t, "models", cfg.OutputDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestIncludes(t *testing.T) {
	cfg := Config{}
	assert.True(t, cfg.Includes("anything"))

	cfg.Tables = []string{"users"}
	assert.True(t, cfg.Includes("users"))
	assert.False(t, cfg.Includes("orders"))
}

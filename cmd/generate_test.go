package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGenerateFlags restores every generate flag to its default and
// clears the Changed markers, so tests can layer flags independently.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		generateCmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
}

func setGenerateFlag(t *testing.T, name, value string) {
	t.Helper()
	require.NoError(t, generateCmd.Flags().Set(name, value))
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	resetGenerateFlags(t)

	cfg, err := loadConfig(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, "models", cfg.OutputDir)
	assert.Equal(t, "models", cfg.PackageName)
	assert.False(t, cfg.QueryAccessors)
}

func TestLoadConfigFromFile(t *testing.T) {
	resetGenerateFlags(t)
	path := writeConfigFile(t, "output_dir: gen\npackage: store\nquery_accessors: true\n")
	setGenerateFlag(t, "config", path)

	cfg, err := loadConfig(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, "gen", cfg.OutputDir)
	assert.Equal(t, "store", cfg.PackageName)
	assert.True(t, cfg.QueryAccessors)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	resetGenerateFlags(t)
	path := writeConfigFile(t, "output_dir: gen\npackage: store\nquery_accessors: true\n")
	setGenerateFlag(t, "config", path)
	setGenerateFlag(t, "package", "override")
	setGenerateFlag(t, "query-accessors", "false")

	cfg, err := loadConfig(generateCmd)
	require.NoError(t, err)
	// unset flags keep the file's value, set flags win even at their default
	assert.Equal(t, "gen", cfg.OutputDir)
	assert.Equal(t, "override", cfg.PackageName)
	assert.False(t, cfg.QueryAccessors)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	resetGenerateFlags(t)
	setGenerateFlag(t, "config", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := loadConfig(generateCmd)
	assert.Error(t, err)
}

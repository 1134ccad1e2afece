package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmonorepo/monorepo/pkg/workspace/core/config"
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/exception"
)

// unsetEnv removes name for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	require.NoError(t, os.Unsetenv(name))
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, "app", cfg.Workspace.App.Name)
	assert.Equal(t, "INFO", cfg.Workspace.System.Logging.Level)
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	unsetEnv(t, "WORKSPACE_APP_NAME")
	unsetEnv(t, "WORKSPACE_SYSTEM_LOGGING_LEVEL")

	yamlConfig := []byte(`
workspace:
  app:
    name: app_a
  system:
    logging:
      level: DEBUG
`)
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"), yamlConfig)

	require.NoError(t, err)
	assert.Equal(t, "app_a", cfg.Workspace.App.Name)
	assert.Equal(t, "DEBUG", cfg.Workspace.System.Logging.Level)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	unsetEnv(t, "WORKSPACE_APP_NAME")
	t.Setenv("WORKSPACE_SYSTEM_LOGGING_LEVEL", "ERROR")

	yamlConfig := []byte("workspace:\n  system:\n    logging:\n      level: DEBUG\n")
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"), yamlConfig)

	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Workspace.System.Logging.Level)
	assert.Equal(t, "app", cfg.Workspace.App.Name)
}

func TestLoadConfig_ExpandsPlaceholders(t *testing.T) {
	unsetEnv(t, "WORKSPACE_APP_NAME")
	unsetEnv(t, "WORKSPACE_SYSTEM_LOGGING_LEVEL")
	t.Setenv("APP_UNDER_TEST", "app_from_placeholder")

	yamlConfig := []byte("workspace:\n  app:\n    name: ${APP_UNDER_TEST}\n")
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"), yamlConfig)

	require.NoError(t, err)
	assert.Equal(t, "app_from_placeholder", cfg.Workspace.App.Name)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	unsetEnv(t, "WORKSPACE_SYSTEM_LOGGING_LEVEL")
	unsetEnv(t, "WORKSPACE_APP_NAME")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("WORKSPACE_APP_NAME=app_from_dotenv\n"), 0o600))

	cfg, err := config.LoadConfig(envFile, []byte("workspace:\n  app:\n    name: app_a\n"))

	require.NoError(t, err)
	assert.Equal(t, "app_from_dotenv", cfg.Workspace.App.Name)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"), []byte("workspace: [unterminated"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal embedded config")
	assert.False(t, exception.IsResolutionError(err))
}

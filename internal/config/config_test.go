package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "prisma", "schema.prisma"), cfg.SchemaPath())
	assert.Equal(t, filepath.Join(root, "src"), cfg.Paths().SourceDir)
	assert.Equal(t, "zap", cfg.LoggerConfig().Type)
	assert.Equal(t, "error", cfg.LoggerConfig().Level)
}

func TestLoadFileThenEnv(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, FileName), "schema: db/schema.prisma\nsource_dir: app\nlog:\n  type: default\n  level: info\n")
	write(t, filepath.Join(root, ".env"), EnvSourceDir+"=server\n")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "db", "schema.prisma"), cfg.SchemaPath())
	assert.Equal(t, "server", cfg.SourceDir)
	assert.Equal(t, "default", cfg.Log.Type)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvironmentBeatsDotEnv(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".env"), EnvSchema+"=from-dotenv.prisma\n")
	t.Setenv(EnvSchema, "/abs/schema.prisma")

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, "/abs/schema.prisma", cfg.SchemaPath())
}

func TestLoadErrors(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root, filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)

	write(t, filepath.Join(root, FileName), "schema: [unterminated\n")
	_, err = Load(root, "")
	assert.Error(t, err)
}

// Package config resolves the settings of a generator run: defaults, then
// .expressgen.yaml, then the project .env and the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Skyenought/expressgen/internal/common"
	"github.com/Skyenought/expressgen/internal/logger"
)

const (
	FileName = ".expressgen.yaml"

	EnvSchema    = "EXPRESSGEN_SCHEMA"
	EnvSourceDir = "EXPRESSGEN_SOURCE_DIR"
	EnvLogLevel  = "EXPRESSGEN_LOG_LEVEL"
)

type Log struct {
	Type  string `yaml:"type"`
	Level string `yaml:"level"`
}

type Config struct {
	// Root is the TypeScript project directory. It is never read from the file.
	Root      string `yaml:"-"`
	Schema    string `yaml:"schema"`
	SourceDir string `yaml:"source_dir"`
	Log       Log    `yaml:"log"`
}

func Default(root string) *Config {
	return &Config{
		Root:      root,
		Schema:    filepath.Join("prisma", "schema.prisma"),
		SourceDir: "src",
		Log:       Log{Type: "zap", Level: "error"},
	}
}

// Load builds the configuration of the project at root. file may be empty, in which
// case <root>/.expressgen.yaml is used when present. An explicitly named file must
// exist.
func Load(root, file string) (*Config, error) {
	cfg := Default(root)

	explicit := file != ""
	if !explicit {
		file = filepath.Join(root, FileName)
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", file)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, errors.Wrapf(err, "read %s", file)
	}

	env, err := godotenv.Read(filepath.Join(root, ".env"))
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "read .env")
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return env[key]
	}
	if v := lookup(EnvSchema); v != "" {
		cfg.Schema = v
	}
	if v := lookup(EnvSourceDir); v != "" {
		cfg.SourceDir = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}

// SchemaPath resolves the schema file against the project root.
func (c *Config) SchemaPath() string {
	if filepath.IsAbs(c.Schema) {
		return c.Schema
	}
	return filepath.Join(c.Root, c.Schema)
}

func (c *Config) Paths() common.ProjectPaths {
	return common.NewProjectPaths(c.Root, c.SourceDir)
}

func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Type: c.Log.Type, Level: c.Log.Level}
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/classware/gbctl/pkg/data"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	formatDefault   = "json"
	logLevelDefault = "info"
)

// Config holds the user-level defaults, flags still override these.
type Config struct {
	// PassThreshold of 0 is treated as unset and falls back to the
	// default; an everyone-passes threshold of 0 has to come through
	// the --threshold flag.
	PassThreshold int    `yaml:"pass_threshold"`
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log_level"`
}

func getDefaultConfig() *Config {
	return &Config{
		PassThreshold: data.PassThresholdDefault,
		Format:        formatDefault,
		LogLevel:      logLevelDefault,
	}
}

// Save writes the config into dirPath.
func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}

// ReadOrCreate reads the config from dirPath, writing one with defaults
// when none exists yet.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dirPath, dirMode); err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(dirPath, getDefaultConfig()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	// tolerate hand-edited files with missing keys
	if c.PassThreshold == 0 {
		c.PassThreshold = data.PassThresholdDefault
	}
	if c.Format == "" {
		c.Format = formatDefault
	}
	if c.LogLevel == "" {
		c.LogLevel = logLevelDefault
	}

	return &c, nil
}

// GetOrCreateHomeDir returns the app directory under the user home,
// creating it on first use. The created flag reports whether it was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}
	return dir, created, nil
}

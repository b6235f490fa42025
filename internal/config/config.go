package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds application configuration.
type Config struct {
	Store      StoreConfig      `mapstructure:"store"`
	Search     SearchConfig     `mapstructure:"search"`
	Log        LogConfig        `mapstructure:"log"`
	Predefined PredefinedConfig `mapstructure:"predefined"`
}

// StoreConfig selects the alias storage backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type SearchConfig struct {
	URLTemplate string `mapstructure:"url_template"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// PredefinedConfig points at a user list of starter aliases. Empty means
// the bundled list.
type PredefinedConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix ALIASBAR_.
func Load() (Config, error) {
	v := viper.New()
	home := homeDir()

	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.path", "")
	v.SetDefault("search.url_template", "https://www.google.com/search?q=%s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("predefined.path", "")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("ALIASBAR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "aliasbar"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ALIASBAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !isConfigMissing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath(home, c.Store.Backend)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultStorePath returns the per-backend alias store location under home.
func DefaultStorePath(home, backend string) string {
	name := "aliases.db"
	if backend == BackendFile {
		name = "aliases.yaml"
	}
	return filepath.Join(home, ".aliasbar", name)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("invalid store.backend %q: want %q or %q", c.Store.Backend, BackendSQLite, BackendFile)
	}
	if c.Store.Path == "" {
		return errors.New("store.path cannot be empty")
	}
	if !strings.Contains(c.Search.URLTemplate, "%s") {
		return fmt.Errorf("invalid search.url_template %q: missing %%s placeholder", c.Search.URLTemplate)
	}
	return nil
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return "."
}

// isConfigMissing covers both lookup modes: a search path that finds nothing
// and an explicit ALIASBAR_CONFIG that does not exist.
func isConfigMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

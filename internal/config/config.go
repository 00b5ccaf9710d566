// Package config resolves runtime settings from defaults, an optional TOML
// file, TASKLIST_* environment variables and command-line flags, in that
// order of increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type Config struct {
	DBPath          string   `toml:"db_path"`
	LogPath         string   `toml:"log_path"`
	LogLevel        string   `toml:"log_level"`
	DefaultCategory string   `toml:"default_category"`
	Categories      []string `toml:"categories"`
}

func Default() Config {
	cats := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		cats = append(cats, string(c))
	}
	return Config{
		DBPath:          "tasklist.db",
		LogLevel:        "info",
		DefaultCategory: string(model.CategoryPersonal),
		Categories:      cats,
	}
}

// Load builds a Config. args are parsed with fs, which must not have been
// used for these flag names already.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	configPath := fs.String("config", "", "path to a TOML config file")
	dbPath := fs.String("db", "", "path to the sqlite database")
	logPath := fs.String("log", "", "path to the log file")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	path := strings.TrimSpace(*configPath)
	if path == "" {
		path = strings.TrimSpace(os.Getenv("TASKLIST_CONFIG"))
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	cfg = FromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.DBPath = *dbPath
		case "log":
			cfg.LogPath = *logPath
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv overlays TASKLIST_* variables on base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("TASKLIST_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TASKLIST_LOG_PATH"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvString("TASKLIST_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("TASKLIST_DEFAULT_CATEGORY"); ok {
		cfg.DefaultCategory = v
	}
	if v, ok := getEnvString("TASKLIST_CATEGORIES"); ok {
		cats := make([]string, 0)
		for _, part := range strings.Split(v, ",") {
			if c := strings.TrimSpace(part); c != "" {
				cats = append(cats, c)
			}
		}
		if len(cats) > 0 {
			cfg.Categories = cats
		}
	}
	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("config: db path is required")
	}
	if len(c.Categories) == 0 {
		return errors.New("config: at least one category is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// CategoryTags returns the configured categories normalised as task tags.
func (c Config) CategoryTags() []model.Category {
	out := make([]model.Category, 0, len(c.Categories))
	for _, raw := range c.Categories {
		out = append(out, model.NormalizeCategory(raw))
	}
	return out
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

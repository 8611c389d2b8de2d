package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultHeatmapDays is the compact dashboard window. The full-year
// view uses 365; both are reachable through the heatmap_days setting.
const DefaultHeatmapDays = 14

type Config struct {
	HeatmapDays int    `toml:"heatmap_days"`
	DataDir     string `toml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		HeatmapDays: DefaultHeatmapDays,
	}
}

func CommitflowDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".commitflow"), nil
}

func ConfigPath() (string, error) {
	dir, err := CommitflowDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DatabasePath resolves the SQLite file location, honoring a data_dir
// override from the config file.
func (c *Config) DatabasePath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		base, err := CommitflowDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "db")
	}
	return filepath.Join(dir, "commitflow.sqlite"), nil
}

func ErrorLogPath() (string, error) {
	dir, err := CommitflowDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "errors.log"), nil
}

// EnsureDirectories creates the app directory tree.
func (c *Config) EnsureDirectories() error {
	dir, err := CommitflowDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	dbPath, err := c.DatabasePath()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(dbPath), 0755)
}

// Load reads the config file, creating it with defaults on first run.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, err
	}

	if cfg.HeatmapDays <= 0 {
		cfg.HeatmapDays = DefaultHeatmapDays
	}
	cfg.DataDir = expandPath(cfg.DataDir)

	return cfg, nil
}

func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

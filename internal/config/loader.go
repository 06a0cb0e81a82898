package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/oukeidos/ydt/internal/files"
	"github.com/pelletier/go-toml/v2"
)

// PathEnv overrides the config file location.
const PathEnv = "YDT_CONFIG"

// Path returns the config file location: $YDT_CONFIG, or config.toml in
// the user config directory.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(dir, "ydt", "config.toml"), nil
}

// Load reads .env (if present), the TOML file, then environment variables
// and defaults. A missing file is fine unless YDT_CONFIG names it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && os.Getenv(PathEnv) == "" {
			cfg = &Config{}
		} else {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// LoadFile decodes the TOML file at path without applying env or defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Defaults returns the built-in settings without consulting the
// environment. It must agree with the env-default tags on Config.
func Defaults() *Config {
	return &Config{
		Mode:     ModeAPI,
		Endpoint: DefaultEndpoint,
		WebURL:   DefaultWebURL,
		Timeout:  Duration(DefaultTimeout),
		Color:    "auto",
	}
}

// LoadFileOrDefaults is LoadFile, falling back to Defaults when the file
// does not exist yet.
func LoadFileOrDefaults(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Save writes cfg to path atomically with owner-only permissions.
func Save(path string, cfg *Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := files.AtomicWrite(path, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

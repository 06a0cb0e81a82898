package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oukeidos/ydt/internal/language"
)

const (
	ModeAPI = "api"
	ModeWeb = "web"

	DefaultEndpoint = "https://openapi.youdao.com/api"
	DefaultWebURL   = "https://www.youdao.com/result"
	DefaultTimeout  = 10 * time.Second
)

// Config holds user settings. The app secret is deliberately absent: it
// lives in the OS keychain or, when allowed, in YDT_APP_SECRET.
// Priority: ENV > file > defaults (env-default tags).
type Config struct {
	AppKey   string   `toml:"app_key"   env:"YDT_APP_KEY"`
	From     string   `toml:"from"      env:"YDT_FROM"`
	To       string   `toml:"to"        env:"YDT_TO"`
	Mode     string   `toml:"mode"      env:"YDT_MODE"      env-default:"api"`
	Endpoint string   `toml:"endpoint"  env:"YDT_ENDPOINT"  env-default:"https://openapi.youdao.com/api"`
	WebURL   string   `toml:"web_url"   env:"YDT_WEB_URL"   env-default:"https://www.youdao.com/result"`
	Timeout  Duration `toml:"timeout"   env:"YDT_TIMEOUT"   env-default:"10s"`
	Color    string   `toml:"color"     env:"YDT_COLOR"     env-default:"auto"`
	AllowEnv bool     `toml:"allow_env" env:"YDT_ALLOW_ENV"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"app_key", "from", "to", "mode", "endpoint", "web_url", "timeout", "color", "allow_env"}

// normalize folds the case of enumerated settings so file, env and Set
// agree.
func (c *Config) normalize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
}

// Validate checks enumerations and the timeout bound.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeAPI, ModeWeb:
	default:
		return fmt.Errorf("invalid mode %q (want %q or %q)", c.Mode, ModeAPI, ModeWeb)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	for _, code := range []string{c.From, c.To} {
		if code == "" {
			continue
		}
		if _, err := language.Resolve(code); err != nil {
			return err
		}
	}
	if c.Timeout.Duration() <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Set assigns one setting from its string form. c is left unchanged when
// the key is unknown or the result does not validate.
func (c *Config) Set(key, value string) error {
	next := *c
	if err := next.set(key, strings.TrimSpace(value)); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "app_key":
		c.AppKey = value
	case "from":
		c.From = value
	case "to":
		c.To = value
	case "mode":
		c.Mode = strings.ToLower(value)
	case "endpoint":
		c.Endpoint = value
	case "web_url":
		c.WebURL = value
	case "timeout":
		if err := c.Timeout.SetValue(value); err != nil {
			return err
		}
	case "color":
		c.Color = strings.ToLower(value)
	case "allow_env":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("allow_env must be true or false: %w", err)
		}
		c.AllowEnv = b
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Duration is a time.Duration that reads and writes as "10s" in both TOML
// and environment variables.
type Duration time.Duration

func (d Duration) Duration() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// SetValue implements cleanenv.Setter.
func (d *Duration) SetValue(s string) error {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	return d.SetValue(string(text))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

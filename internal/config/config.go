// apps/go-server/internal/config/config.go
//
// Server configuration.
// Sources, later ones win:
//   1. DefaultConfig(): safe local-dev defaults.
//   2. Optional YAML file (CONFIG_FILE, default ./turdle.yaml); a missing file is not an error.
//   3. Environment variables (a .env file is loaded by main via godotenv).
//
// Environment variables:
//   PORT, CLIENT_ORIGIN, DB_PATH, LOG_LEVEL, LOG_FILE, LOG_PRETTY,
//   DAILY_SALT, DAILY_EPOCH, PLAYER_SECRET, COOKIE_NAME, NODE_ENV, REQUEST_TIMEOUT
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Port           string        `yaml:"port"`
	ClientOrigin   string        `yaml:"client_origin"`
	DBPath         string        `yaml:"db_path"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Log            LogConfig     `yaml:"log"`
	Daily          DailyConfig   `yaml:"daily"`
	Player         PlayerConfig  `yaml:"player"`
}

// LogConfig controls zerolog output and optional file rotation.
type LogConfig struct {
	Level string `yaml:"level"`

	// Pretty switches stderr to zerolog's human readable console writer.
	Pretty bool `yaml:"pretty"`

	// File enables a rotating log file when non-empty.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DailyConfig selects the daily answer schedule.
type DailyConfig struct {
	// Salt keys the daily hash. Empty means one corpus entry per day from Epoch.
	Salt string `yaml:"salt"`

	// Epoch is the launch day (YYYY-MM-DD), puzzle #0.
	Epoch string `yaml:"epoch"`
}

// PlayerConfig controls the anonymous player token cookie.
type PlayerConfig struct {
	Secret     string `yaml:"secret"`
	CookieName string `yaml:"cookie_name"`
	TTLDays    int    `yaml:"ttl_days"`
	Secure     bool   `yaml:"secure"`
}

// DevPlayerSecret signs player tokens in local development only.
const DevPlayerSecret = "dev_secret_change_me"

// DefaultConfig returns a Config with local-dev defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           "5175",
		ClientOrigin:   "http://localhost:5173",
		DBPath:         "./data/turdle.db",
		RequestTimeout: 10 * time.Second,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Daily: DailyConfig{
			Epoch: "2022-01-01",
		},
		Player: PlayerConfig{
			Secret:     DevPlayerSecret,
			CookieName: "turdle_player",
			TTLDays:    180,
		},
	}
}

// Load builds the config from defaults, the YAML file at path and the
// environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setStr(&c.Port, "PORT")
	setStr(&c.ClientOrigin, "CLIENT_ORIGIN")
	setStr(&c.DBPath, "DB_PATH")
	setStr(&c.Log.Level, "LOG_LEVEL")
	setStr(&c.Log.File, "LOG_FILE")
	setStr(&c.Daily.Salt, "DAILY_SALT")
	setStr(&c.Daily.Epoch, "DAILY_EPOCH")
	setStr(&c.Player.Secret, "PLAYER_SECRET")
	setStr(&c.Player.CookieName, "COOKIE_NAME")

	if v := os.Getenv("LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LOG_PRETTY %q: %w", v, err)
		}
		c.Log.Pretty = b
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		c.RequestTimeout = d
	}
	if os.Getenv("NODE_ENV") == "production" {
		c.Player.Secure = true
	}
	return nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must be set")
	}
	if _, err := c.EpochTime(); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.Player.Secret == "" {
		return errors.New("player secret must be set")
	}
	if c.Player.Secure && c.Player.Secret == DevPlayerSecret {
		return errors.New("player secret must be changed from the development default when cookies are secure")
	}
	if c.Player.TTLDays <= 0 {
		c.Player.TTLDays = DefaultConfig().Player.TTLDays
	}
	return nil
}

// EpochTime parses Daily.Epoch as a UTC day.
func (c *Config) EpochTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Daily.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid daily epoch %q: %w", c.Daily.Epoch, err)
	}
	return t, nil
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

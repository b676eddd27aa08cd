package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/xeptore/dcue/constant"
)

const (
	DefaultBaseURL                = "https://api.discogs.com"
	DefaultAnonRequestsPerMinute  = 25
	DefaultTokenRequestsPerMinute = 60
	DefaultCacheTTL               = 1 * time.Hour
	EnvToken                      = "DISCOGS_TOKEN"
)

type Config struct {
	Discogs Discogs `json:"discogs" yaml:"discogs"`
	Cache   Cache   `json:"cache"   yaml:"cache"`
	Cue     Cue     `json:"cue"     yaml:"cue"`
	Log     Log     `json:"log"     yaml:"log"`
}

type Discogs struct {
	BaseURL           string `json:"base_url"            yaml:"base_url"`
	Token             string `json:"token"               yaml:"token"`
	UserAgent         string `json:"user_agent"          yaml:"user_agent"`
	RequestsPerMinute int    `json:"requests_per_minute" yaml:"requests_per_minute"`
}

type Cache struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

type Cue struct {
	Comment string `json:"comment" yaml:"comment"`
}

type Log struct {
	Level      string `json:"level"        yaml:"level"`
	File       string `json:"file"         yaml:"file"`
	MaxSizeMB  int    `json:"max_size_mb"  yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups"  yaml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `json:"compress"     yaml:"compress"`
}

func Default() *Config {
	return &Config{
		Discogs: Discogs{
			BaseURL:           DefaultBaseURL,
			Token:             "",
			UserAgent:         "dcue/" + constant.Version,
			RequestsPerMinute: 0,
		},
		Cache: Cache{TTL: DefaultCacheTTL},
		Cue:   Cue{Comment: "dcue " + constant.Version},
		Log: Log{
			Level:      zerolog.LevelInfoValue,
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
	}
}

// applyEnv lets the environment override secrets that should not live in
// the config file.
func (cfg *Config) applyEnv() {
	if token := os.Getenv(EnvToken); token != "" {
		cfg.Discogs.Token = token
	}
	if cfg.Discogs.RequestsPerMinute == 0 {
		if cfg.Discogs.Token != "" {
			cfg.Discogs.RequestsPerMinute = DefaultTokenRequestsPerMinute
		} else {
			cfg.Discogs.RequestsPerMinute = DefaultAnonRequestsPerMinute
		}
	}
}

func (cfg *Config) validate() error {
	u, err := url.Parse(cfg.Discogs.BaseURL)
	if nil != err {
		return fmt.Errorf("invalid discogs base url %q: %v", cfg.Discogs.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("discogs base url %q must be an absolute http(s) url", cfg.Discogs.BaseURL)
	}

	if cfg.Discogs.UserAgent == "" {
		return errors.New("discogs user agent is empty")
	}

	if cfg.Discogs.RequestsPerMinute < 0 {
		return errors.New("discogs requests per minute must be positive")
	}

	if cfg.Cache.TTL <= 0 {
		return errors.New("cache ttl must be positive")
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); nil != err {
		return fmt.Errorf("invalid log level %q: %v", cfg.Log.Level, err)
	}

	return nil
}

// ZerologLevel is the parsed level, falling back to info.
func (l Log) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(l.Level)
	if nil != err {
		return zerolog.InfoLevel
	}
	return level
}

func Load() (*Config, error) {
	cfg := Default()
	return finalize(cfg)
}

func FromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if nil != err {
		return nil, fmt.Errorf("failed to read config file %q: %v", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config file %q: %v", filePath, err)
	}

	return finalize(cfg)
}

func FromString(data string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(data), cfg); nil != err {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return finalize(cfg)
}

func finalize(cfg *Config) (*Config, error) {
	cfg.applyEnv()
	if err := cfg.validate(); nil != err {
		return nil, fmt.Errorf("validation failed: %v", err)
	}
	return cfg, nil
}

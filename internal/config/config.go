package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server struct {
		Host                 string
		JWTSecret            string `toml:"jwt_secret"`
		TokenTTL             time.Duration
		ReadTimeout          time.Duration
		WriteTimeout         time.Duration
		ReadHeaderTimeout    time.Duration
		StrTokenTTL          string `toml:"token_ttl"`
		StrReadTimeout       string `toml:"read_timeout"`
		StrWriteTimeout      string `toml:"write_timeout"`
		StrReadHeaderTimeout string `toml:"read_header_timeout"`
	}
	Store struct {
		Backend string
	}
	Database struct {
		Host     string
		User     string
		Password string
		Database string
	}
	Redis struct {
		RedisAddr     string `toml:"redis_addr"`
		RedisPassword string `toml:"redis_password"`
		RedisDB       int    `toml:"redis_db"`
	}
	Seed struct {
		Enabled bool
	}
}

const defaultTokenTTL = 24 * time.Hour

func GetConfig(logger *slog.Logger) (*Config, error) {
	path := os.Getenv("HRMS_CONFIG")
	if path == "" {
		path = "configs/config.toml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error read config.toml file", slog.String("error", err.Error()))
		return nil, err
	}

	var cfg *Config

	if _, tomlErr := toml.Decode(string(data), &cfg); tomlErr != nil {
		logger.Error("Error decode config.toml file", slog.String("error", tomlErr.Error()))
		return nil, tomlErr
	}

	cfg.Server.TokenTTL = defaultTokenTTL
	if cfg.Server.StrTokenTTL != "" {
		cfg.Server.TokenTTL, err = time.ParseDuration(cfg.Server.StrTokenTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid token_ttl: %w", err)
		}
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"read_timeout", cfg.Server.StrReadTimeout, &cfg.Server.ReadTimeout},
		{"write_timeout", cfg.Server.StrWriteTimeout, &cfg.Server.WriteTimeout},
		{"read_header_timeout", cfg.Server.StrReadHeaderTimeout, &cfg.Server.ReadHeaderTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		if *d.dst, err = time.ParseDuration(d.raw); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
	}

	if cfg.Server.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}

	switch cfg.Store.Backend {
	case "":
		cfg.Store.Backend = "memory"
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	logger.Info("Config is loaded", slog.String("store", cfg.Store.Backend))
	return cfg, nil
}

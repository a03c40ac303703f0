package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Store kinds understood by ServerConfig
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// RedisConfig holds connection settings for the Redis scenario store
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// StoreConfig selects and configures the scenario store
type StoreConfig struct {
	Kind  string      `yaml:"kind"`
	Path  string      `yaml:"path,omitempty"`
	Redis RedisConfig `yaml:"redis"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr        string      `yaml:"addr"`
	CatalogFile string      `yaml:"catalog_file,omitempty"`
	Store       StoreConfig `yaml:"store"`
}

// DefaultServerConfig returns an in-memory server on :8080
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr: ":8080",
		Store: StoreConfig{
			Kind: StoreMemory,
			Path: "scenarios.json",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "futurefunds",
			},
		},
	}
}

// LoadServerConfig reads filename over the defaults (an empty name skips the file),
// applies FUTUREFUNDS_* environment overrides and validates the result.
func LoadServerConfig(filename string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return cfg, fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("server configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *ServerConfig) applyEnv(getenv func(string) string) error {
	if v := getenv("FUTUREFUNDS_ADDR"); v != "" {
		c.Addr = v
	} else if port := getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := getenv("FUTUREFUNDS_CATALOG_FILE"); v != "" {
		c.CatalogFile = v
	}
	if v := getenv("FUTUREFUNDS_STORE"); v != "" {
		c.Store.Kind = v
	}
	if v := getenv("FUTUREFUNDS_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := getenv("FUTUREFUNDS_REDIS_ADDR"); v != "" {
		c.Store.Redis.Addr = v
	}
	if v := getenv("FUTUREFUNDS_REDIS_PASSWORD"); v != "" {
		c.Store.Redis.Password = v
	}
	if v := getenv("FUTUREFUNDS_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FUTUREFUNDS_REDIS_DB: %w", err)
		}
		c.Store.Redis.DB = db
	}
	return nil
}

// Validate checks the server configuration
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.Store.Kind {
	case StoreMemory:
	case StoreFile:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the file store")
		}
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required for the redis store")
		}
	default:
		return fmt.Errorf("store kind must be '%s', '%s', or '%s'", StoreMemory, StoreFile, StoreRedis)
	}
	return nil
}

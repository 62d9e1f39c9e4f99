package config

import (
	"os"
)

type Config struct {
	Env      string
	HTTPAddr string
	Database DatabaseConfig
	Redis    RedisConfig
	Otel     OtelConfig
}

type DatabaseConfig struct {
	// Path to the SQLite database file.
	Path string
}

type RedisConfig struct {
	// Addr empty disables the list cache entirely.
	Addr     string
	Password string
}

type OtelConfig struct {
	// Endpoint empty disables trace export.
	Endpoint string
}

func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		HTTPAddr: normalizeAddr(getEnv("HTTP_ADDR", ":8080")),
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "wanderlist.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Otel: OtelConfig{
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}

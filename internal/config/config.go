package config

import (
	"os"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	Env          string
	LogLevel     string
	DatabaseURL  string // SurrealDB RPC endpoint (e.g. ws://localhost:8000/rpc); empty disables the store
	DatabaseName string
	Namespace    string
	DatabaseUser string
	DatabasePass string
}

// Load builds Config from environment with sensible defaults. DATABASE_URL has
// no default: deployments without a database run with the store disabled.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("PORT", "8000"),
		Env:          getEnv("ENV", "production"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "oilsaas"),
		Namespace:    getEnv("DATABASE_NAMESPACE", "oilsaas"),
		DatabaseUser: getEnv("DATABASE_USER", "root"),
		DatabasePass: os.Getenv("DATABASE_PASS"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

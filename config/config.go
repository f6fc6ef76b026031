package config

import (
	"os"

	"github.com/chefassist/kitchen-backend/utils"
)

type Config struct {
	Port        string
	DatabaseURL string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		utils.ErrorLogger.Fatal("DATABASE_URL not configured")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

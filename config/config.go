package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBDSN       string // MySQL DSN; empty means local sqlite
	DBPath      string
	AdminSecret string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "5001"),
		DBDSN:       get("DB_DSN", ""),
		DBPath:      get("DB_PATH", "lifehub.db"),
		AdminSecret: get("ADMIN_SECRET_KEY", "dominique2024"),
	}
	log.Printf("[cfg] port=%s mysql=%t secret key loaded (length: %d)", cfg.Port, cfg.DBDSN != "", len(cfg.AdminSecret))
	return cfg
}

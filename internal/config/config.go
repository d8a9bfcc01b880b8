// README: Config loader with env defaults for HTTP, Gemini, DB, and cache settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type GeminiConfig struct {
	APIKey         string
	PreferredModel string
	APIVersion     string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Cache struct {
		PlanTTL time.Duration
	}
	Gemini GeminiConfig
}

func Load() (Config, error) {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("NEVAPLAN_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("NEVAPLAN_DB_DSN")
	cfg.Redis.Addr = os.Getenv("NEVAPLAN_REDIS_ADDR")
	cfg.Cache.PlanTTL = time.Duration(envOrDefaultInt("NEVAPLAN_PLAN_TTL_SEC", 3600)) * time.Second

	// The API key is checked per request, not at boot, so the service can
	// start without it and report a clear error through the API.
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Gemini.PreferredModel = os.Getenv("GEMINI_MODEL")
	cfg.Gemini.APIVersion = envOrDefault("GEMINI_API_VERSION", "v1")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

package config

import (
	"os"
	"strings"
)

// Config is read once at startup and passed into the handlers; nothing reads
// the environment after Load returns.
type Config struct {
	Port        string
	BotUsername string
	DatabaseURL string
	GeoIPPath   string
	Prelander   bool
	FallbackBot string
}

// Load builds the configuration from the environment. BOT_USERNAME and
// DATABASE_URL are deliberately not required here: the capture endpoints
// report the missing value per request instead of refusing to start, so
// /health stays available on a misconfigured deploy.
func Load() *Config {
	cfg := &Config{
		Port:        envOrDefault("PORT", "5000"),
		BotUsername: os.Getenv("BOT_USERNAME"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GeoIPPath:   os.Getenv("GEOIP_PATH"),
		Prelander:   envBool("PRELANDER", true),
		FallbackBot: os.Getenv("FALLBACK_BOT"),
	}

	// The pre-lander needs somewhere to send visitors when /save-click fails.
	if cfg.FallbackBot == "" {
		cfg.FallbackBot = cfg.BotUsername
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

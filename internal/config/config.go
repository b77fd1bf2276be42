package config

import (
	"os"
	"strings"
	"time"
)

type Mode string

const (
	ModeDev    Mode = "dev"
	ModeOnline Mode = "online"
)

type Config struct {
	Mode      Mode
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	AuthSecret string
	OTPTTL     time.Duration

	CORSOriginsOnline []string
	CORSOriginsDev    []string

	LogLevel string // debug|info|warn|error
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeDev
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:              mode,
		HTTPAddr:          addr,
		PublicURL:         os.Getenv("PUBLIC_URL"),
		DBDriver:          envOr("DB_DRIVER", "sqlite"),
		DBDSN:             envOr("DB_DSN", ""),
		AuthSecret:        envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		OTPTTL:            envDuration("OTP_TTL", 5*time.Minute),
		CORSOriginsOnline: csvOr("CORS_ORIGINS_ONLINE", "https://app.growthlens.io"),
		CORSOriginsDev:    csvOr("CORS_ORIGINS_DEV", "http://localhost:3000,http://localhost:5173"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

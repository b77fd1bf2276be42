package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MODE", "HTTP_ADDR", "DB_DRIVER", "OTP_TTL", "CORS_ORIGINS_DEV"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.Mode != ModeDev {
		t.Errorf("Mode = %q, want dev", cfg.Mode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.OTPTTL != 5*time.Minute {
		t.Errorf("OTPTTL = %v", cfg.OTPTTL)
	}
	if len(cfg.CORSOriginsDev) != 2 {
		t.Errorf("CORSOriginsDev = %v", cfg.CORSOriginsDev)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("OTP_TTL", "90s")
	t.Setenv("CORS_ORIGINS_ONLINE", "https://a.example, https://b.example ,")

	cfg := FromEnv()
	if cfg.Mode != ModeOnline {
		t.Errorf("Mode = %q", cfg.Mode)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.OTPTTL != 90*time.Second {
		t.Errorf("OTPTTL = %v", cfg.OTPTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSOriginsOnline) != len(want) {
		t.Fatalf("CORSOriginsOnline = %v", cfg.CORSOriginsOnline)
	}
	for i := range want {
		if cfg.CORSOriginsOnline[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.CORSOriginsOnline[i], want[i])
		}
	}
}

func TestEnvDurationBadValue(t *testing.T) {
	t.Setenv("OTP_TTL", "not-a-duration")
	if got := FromEnv().OTPTTL; got != 5*time.Minute {
		t.Errorf("bad duration should fall back to default, got %v", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("RANKING_POLICY", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected storage driver: %s", cfg.StorageDriver)
	}
	if cfg.RankingPolicy != "manual" {
		t.Fatalf("unexpected ranking policy: %s", cfg.RankingPolicy)
	}
	if cfg.SessionTTL != 7*24*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.CookieSecure {
		t.Fatalf("expected insecure cookies in dev by default")
	}
	if cfg.CacheTTL != 60*time.Second || !cfg.CacheEnabled {
		t.Fatalf("unexpected cache config: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
}

func TestLoad_ProdDefaultsToSecureCookies(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.CookieSecure {
		t.Fatalf("expected secure cookies in prod")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_DRIVER=postgres without DB_URL")
	}
}

func TestLoad_RankingPolicyValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("leapfrog", func(t *testing.T) {
		t.Setenv("RANKING_POLICY", "LEAPFROG")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RankingPolicy != "leapfrog" {
			t.Fatalf("unexpected ranking policy: %s", cfg.RankingPolicy)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("RANKING_POLICY", "elo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown ranking policy")
		}
	})

	t.Run("workers must be positive", func(t *testing.T) {
		t.Setenv("RANKING_POLICY", "")
		t.Setenv("RANKING_RECALC_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for RANKING_RECALC_WORKERS=0")
		}
	})
}

func TestLoad_SiteAdminSeedMustBeComplete(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SITE_ADMIN_USERNAME", "admin")
	t.Setenv("SITE_ADMIN_PASSWORD_HASH", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for username without password hash")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "ladder-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "ladder-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_InvalidDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	for _, key := range []string{"CACHE_TTL", "SESSION_TTL", "APP_READ_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "bad")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for invalid %s", key)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LADDER_DOTENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("LADDER_DOTENV_PROBE", "")
	os.Unsetenv("LADDER_DOTENV_PROBE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("LADDER_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file must be ignored: %v", err)
	}
}

func TestLoad_DBCircuitBreaker(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_CIRCUIT_BREAKER_ENABLED", "false")
	t.Setenv("DB_CIRCUIT_BREAKER_FAILURE_THRESHOLD", "0")
	t.Setenv("DB_CIRCUIT_BREAKER_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBCircuitBreaker.Enabled {
		t.Fatalf("expected breaker disabled")
	}
	if cfg.DBCircuitBreaker.FailureThreshold != 5 {
		t.Fatalf("expected default threshold for 0, got %d", cfg.DBCircuitBreaker.FailureThreshold)
	}
	if cfg.DBCircuitBreaker.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected open timeout: %s", cfg.DBCircuitBreaker.OpenTimeout)
	}

	t.Setenv("DB_CIRCUIT_BREAKER_ENABLED", "maybe")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid DB_CIRCUIT_BREAKER_ENABLED")
	}
}

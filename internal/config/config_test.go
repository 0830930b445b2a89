package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SyncRequestDelay != 250*time.Millisecond {
		t.Fatalf("unexpected SyncRequestDelay: %s", cfg.SyncRequestDelay)
	}
	if len(cfg.SyncOffseasonMonths) != 3 || cfg.SyncOffseasonMonths[0] != time.July {
		t.Fatalf("unexpected offseason months: %v", cfg.SyncOffseasonMonths)
	}
	if !cfg.IsOffseason(time.August) || cfg.IsOffseason(time.January) {
		t.Fatalf("unexpected offseason evaluation")
	}
	if cfg.AIGlobalCooldown != 30*time.Second || cfg.AIRateLimitCooldown != 5*time.Minute {
		t.Fatalf("unexpected AI cooldowns: %s %s", cfg.AIGlobalCooldown, cfg.AIRateLimitCooldown)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected storage driver: %s", cfg.StorageDriver)
	}
	if cfg.ProviderMaxRetries != 0 || cfg.ProviderCircuit.Enabled {
		t.Fatalf("unexpected provider resilience defaults: %+v", cfg)
	}
	if cfg.SyncWorkers != 1 {
		t.Fatalf("unexpected SyncWorkers: %d", cfg.SyncWorkers)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SyncRequestDelayRange(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "100ms"},
		{value: "1s"},
		{value: "99ms", wantErr: true},
		{value: "1500ms", wantErr: true},
		{value: "soon", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("SYNC_REQUEST_DELAY", tc.value)

			_, err := Load()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %s", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %s: %v", tc.value, err)
			}
		})
	}
}

func TestLoad_OffseasonMonthsValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_OFFSEASON_MONTHS", "7,13")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported storage driver")
	}

	t.Setenv("STORAGE_DRIVER", "Memory")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory driver, got %s", cfg.StorageDriver)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_ProviderCircuitValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PROVIDER_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero failure count")
	}
}

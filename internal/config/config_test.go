package config

import (
	"reflect"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	env := map[string]string{
		"USERSVC_PRIMARY__ENV":                 "production",
		"USERSVC_SERVER__PORT":                 "8080",
		"USERSVC_SERVER__READ_TIMEOUT":         "30",
		"USERSVC_SERVER__WRITE_TIMEOUT":        "30",
		"USERSVC_SERVER__IDLE_TIMEOUT":         "60",
		"USERSVC_SERVER__CORS_ALLOWED_ORIGINS": "http://localhost:3000, https://app.example.com",
		"USERSVC_DATABASE__HOST":               "localhost",
		"USERSVC_DATABASE__PORT":               "5432",
		"USERSVC_DATABASE__USER":               "postgres",
		"USERSVC_DATABASE__PASSWORD":           "postgres",
		"USERSVC_DATABASE__NAME":               "usersvc",
		"USERSVC_DATABASE__SSL_MODE":           "disable",
		"USERSVC_DATABASE__MAX_OPEN_CONNS":     "25",
		"USERSVC_DATABASE__MAX_IDLE_CONNS":     "25",
		"USERSVC_DATABASE__CONN_MAX_LIFETIME":  "300",
		"USERSVC_DATABASE__CONN_MAX_IDLE_TIME": "300",
		"USERSVC_REDIS__ADDRESS":               "localhost:6379",
		"USERSVC_INTEGRATION__RESEND_API_KEY":  "re_test",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERSVC_OBSERVABILITY__LOGGING__LEVEL", "debug")
	t.Setenv("USERSVC_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" || cfg.Server.ReadTimeout != 30 {
		t.Errorf("server not loaded: %+v", cfg.Server)
	}

	wantOrigins := []string{"http://localhost:3000", "https://app.example.com"}
	if !reflect.DeepEqual(cfg.Server.CORSAllowedOrigins, wantOrigins) {
		t.Errorf("CORSAllowedOrigins = %v, want %v", cfg.Server.CORSAllowedOrigins, wantOrigins)
	}

	if cfg.Server.RateLimit != DefaultRateLimit {
		t.Errorf("RateLimit = %v, want default %v", cfg.Server.RateLimit, DefaultRateLimit)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d", cfg.Database.Port)
	}

	obs := cfg.Observability
	if obs.ServiceName != ServiceName || obs.Environment != "production" {
		t.Errorf("service/env not forced: %s/%s", obs.ServiceName, obs.Environment)
	}
	if obs.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", obs.Logging.Level)
	}
	if obs.Logging.SlowQueryThreshold != 250*time.Millisecond {
		t.Errorf("SlowQueryThreshold = %s", obs.Logging.SlowQueryThreshold)
	}
	// Untouched blocks keep their defaults.
	if obs.HealthChecks.Timeout != 5*time.Second || len(obs.HealthChecks.Checks) != 2 {
		t.Errorf("health check defaults lost: %+v", obs.HealthChecks)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERSVC_DATABASE__HOST", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected validation error for missing database host")
	}
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("USERSVC_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.HealthChecks.Checks = []string{HealthCheckDatabase}

	if !cfg.HealthCheckEnabled(HealthCheckDatabase) {
		t.Error("database check should be enabled")
	}
	if cfg.HealthCheckEnabled(HealthCheckRedis) {
		t.Error("redis check should be disabled")
	}

	cfg.HealthChecks.Enabled = false
	if cfg.HealthCheckEnabled(HealthCheckDatabase) {
		t.Error("checks must be off when health checks are disabled")
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("production default = %s, want info", got)
	}

	cfg.Environment = "development"
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("development default = %s, want debug", got)
	}
}

func TestEnvKeyValue(t *testing.T) {
	key, value := envKeyValue("USERSVC_OBSERVABILITY__NEW_RELIC__LICENSE_KEY", "abc")
	if key != "observability.new_relic.license_key" || value != "abc" {
		t.Errorf("got %s=%v", key, value)
	}
}

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deppfellow/usersvc/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("db_code", "P2002").Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line written at warn level: %s", out)
	}
	for _, want := range []string{`"message":"kept"`, `"db_code":"P2002"`, `"service":"usersvc"`, `"environment":"production"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestNewLogger_DevelopmentUsesConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %s, want debug", log.GetLevel())
	}

	log.Debug().Msg("hello")
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected console output, got JSON: %s", buf.String())
	}
}

func TestLoggerService_Disabled(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	svc := NewLoggerService(cfg)
	if svc.GetApplication() != nil {
		t.Fatal("New Relic must stay disabled without a license key")
	}
	svc.Shutdown()

	var nilSvc *LoggerService
	if nilSvc.GetApplication() != nil {
		t.Fatal("nil service must report no application")
	}
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := WithTraceContext(zerolog.New(&buf), nil)

	log.Info().Msg("x")
	if strings.Contains(buf.String(), "trace.id") {
		t.Errorf("unexpected trace fields: %s", buf.String())
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		if got := GetPgxTraceLogLevel(tt.in); got != tt.want {
			t.Errorf("GetPgxTraceLogLevel(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package database

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/usersvc/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "app",
		Password: "pa:ss@word",
		Name:     "usersvc",
		SSLMode:  "disable",
	}

	want := "postgres://app:pa%3Ass%40word@[::1]:5432/usersvc?sslmode=disable"
	if got := DSN(cfg); got != want {
		t.Errorf("DSN = %s, want %s", got, want)
	}
}

func newTestSlowTracer(buf *bytes.Buffer, threshold time.Duration, elapsed time.Duration) *slowQueryTracer {
	logger := zerolog.New(buf)
	tracer := newSlowQueryTracer(&logger, threshold)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	tracer.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(elapsed)
	}
	return tracer
}

func TestSlowQueryTracer(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		err      error
		wantLog  bool
		wantText []string
	}{
		{name: "fast query", elapsed: 10 * time.Millisecond},
		{name: "slow query", elapsed: 150 * time.Millisecond, wantLog: true, wantText: []string{`"message":"slow query"`, `"sql":"SELECT 1"`}},
		{name: "slow failed query", elapsed: time.Second, err: errors.New("boom"), wantLog: true, wantText: []string{`"error":"boom"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tracer := newTestSlowTracer(&buf, 100*time.Millisecond, tt.elapsed)

			ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
			tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: tt.err})

			out := buf.String()
			if !tt.wantLog {
				if out != "" {
					t.Errorf("unexpected log: %s", out)
				}
				return
			}
			for _, want := range tt.wantText {
				if !strings.Contains(out, want) {
					t.Errorf("log missing %s: %s", want, out)
				}
			}
		})
	}
}

type recordingTracer struct {
	name  string
	calls *[]string
}

type tracerKey struct{}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, "start:"+r.name)
	return context.WithValue(ctx, tracerKey{}, r.name)
}

func (r recordingTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, "end:"+r.name+":"+ctx.Value(tracerKey{}).(string))
}

func TestMultiTracer_ThreadsContext(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []any{
		recordingTracer{name: "a", calls: &calls},
		"not a tracer",
		recordingTracer{name: "b", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	want := []string{"start:a", "start:b", "end:a:b", "end:b:b"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

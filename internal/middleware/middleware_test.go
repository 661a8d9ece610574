package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	action := Logger(newTestLogger(&buf))("list_employees", func(context.Context) error { return nil })

	if err := action(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"action":"list_employees"`) {
		t.Errorf("expected action name in log, got %s", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	action := Logger(newTestLogger(&buf))("delete_employee", func(context.Context) error { return boom })

	if err := action(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected error passed through, got %v", err)
	}
	if !strings.Contains(buf.String(), `"level":"WARN"`) || !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected warning with error, got %s", buf.String())
	}
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	action := Recoverer(newTestLogger(&buf))("explode", func(context.Context) error { panic("kaboom") })

	err := action(context.Background())
	if !errors.Is(err, ErrRecovered) {
		t.Fatalf("expected ErrRecovered, got %v", err)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
}

func TestChain_Order(t *testing.T) {
	var calls []string
	mark := func(label string) Middleware {
		return func(name string, next ActionFunc) ActionFunc {
			return func(ctx context.Context) error {
				calls = append(calls, label)
				return next(ctx)
			}
		}
	}

	action := Chain("noop", func(context.Context) error {
		calls = append(calls, "action")
		return nil
	}, mark("outer"), mark("inner"))

	if err := action(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(calls, ",") != "outer,inner,action" {
		t.Errorf("unexpected order: %v", calls)
	}
}

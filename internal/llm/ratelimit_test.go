package llm

import (
	"context"
	"testing"
	"time"
)

func TestRPSLimiterDisabled(t *testing.T) {
	l := newRPSLimiter(0, 0)
	if l != nil {
		t.Fatalf("expected nil limiter for rps<=0")
	}
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("nil limiter Acquire: %v", err)
	}
	l.Stop()
}

func TestRPSLimiterBurstThenBlocks(t *testing.T) {
	l := newRPSLimiter(1, 2)
	defer l.Stop()

	ctx := context.Background()
	if err := l.Acquire(ctx); err != nil {
		t.Fatal(err)
	}
	if err := l.Acquire(ctx); err != nil {
		t.Fatal(err)
	}

	timed, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if err := l.Acquire(timed); err == nil {
		t.Fatalf("expected the third acquire to block past the burst")
	}
}

func TestRPSLimiterStopUnblocks(t *testing.T) {
	l := newRPSLimiter(0.001, 1)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- l.Acquire(context.Background())
	}()
	l.Stop()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected an error from a stopped limiter")
		}
	case <-time.After(time.Second):
		t.Fatalf("Acquire did not return after Stop")
	}
}

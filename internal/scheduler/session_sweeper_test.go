package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"moviefinder/internal/auth"
	"moviefinder/internal/logger"
)

func TestSessionSweeper_Sweep(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := base
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	sessions := auth.NewMemorySessionStore(time.Hour, clock)
	ctx := context.Background()

	live, err := sessions.Create(ctx, 1)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := sessions.Create(ctx, 2); err != nil {
		t.Fatalf("create session: %v", err)
	}

	sweeper := NewSessionSweeper(sessions, logger.NewNop(), time.Minute)

	// Nothing expired yet.
	if err := sweeper.Sweep(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if s, _ := sessions.Get(ctx, live.Token); s == nil {
		t.Fatal("live session swept too early")
	}

	// Let the first session expire, then open a fresh one.
	mu.Lock()
	now = base.Add(90 * time.Minute)
	mu.Unlock()
	fresh, err := sessions.Create(ctx, 3)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := sweeper.Sweep(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if s, _ := sessions.Get(ctx, live.Token); s != nil {
		t.Error("expired session survived the sweep")
	}
	if s, _ := sessions.Get(ctx, fresh.Token); s == nil {
		t.Error("fresh session was swept")
	}
}

func TestSessionSweeper_DefaultInterval(t *testing.T) {
	sessions := auth.NewMemorySessionStore(time.Hour, time.Now)
	sweeper := NewSessionSweeper(sessions, logger.NewNop(), 0)
	if sweeper.interval != DefaultSweepInterval {
		t.Errorf("interval = %v, want %v", sweeper.interval, DefaultSweepInterval)
	}
}

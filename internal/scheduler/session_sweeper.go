package scheduler

import (
	"context"
	"time"

	"moviefinder/internal/auth"
	"moviefinder/internal/logger"
)

const (
	// DefaultSweepInterval is how often expired sessions are removed.
	DefaultSweepInterval = 1 * time.Hour
)

// SessionSweeper periodically removes expired sessions from the store.
// Redis-backed sessions expire on their own; the sweeper matters for the
// in-memory store, which otherwise keeps dead sessions forever.
type SessionSweeper struct {
	sessions auth.SessionStore
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewSessionSweeper creates a new session sweeper.
func NewSessionSweeper(sessions auth.SessionStore, log logger.Logger, interval time.Duration) *SessionSweeper {
	if interval == 0 {
		interval = DefaultSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep.
func (s *SessionSweeper) Start(ctx context.Context) {
	if err := s.Sweep(ctx); err != nil {
		s.logger.Warn("initial session sweep failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.Sweep(ctx); err != nil {
					s.logger.Error("session sweep failed",
						logger.Error(err))
				}
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the sweeper.
func (s *SessionSweeper) Stop() {
	close(s.stopCh)
}

// Sweep removes expired sessions once.
func (s *SessionSweeper) Sweep(ctx context.Context) error {
	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		s.logger.Info("removed expired sessions",
			logger.Int("count", removed))
	}
	return nil
}

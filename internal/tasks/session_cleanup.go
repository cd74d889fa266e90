package tasks

import (
	"context"
	"time"

	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/repository"
)

// SessionCleanup handles periodic removal of idle console sessions
type SessionCleanup struct {
	sessions    repository.SessionRepository
	idleTimeout time.Duration
	interval    time.Duration
	logger      *logging.Logger
	now         func() time.Time
}

// NewSessionCleanup creates a new session cleanup task
func NewSessionCleanup(sessions repository.SessionRepository, idleTimeout, interval time.Duration, logger *logging.Logger) *SessionCleanup {
	return &SessionCleanup{
		sessions:    sessions,
		idleTimeout: idleTimeout,
		interval:    interval,
		logger:      logger,
		now:         time.Now,
	}
}

// Start runs the cleanup in the background until ctx is done
func (sc *SessionCleanup) Start(ctx context.Context) {
	go sc.runPeriodically(ctx)
}

func (sc *SessionCleanup) runPeriodically(ctx context.Context) {
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sc.Cleanup(ctx)
		}
	}
}

// Cleanup deletes every session idle for longer than the timeout
func (sc *SessionCleanup) Cleanup(ctx context.Context) int {
	cutoff := sc.now().Add(-sc.idleTimeout)
	n, err := sc.sessions.DeleteIdle(ctx, cutoff)
	if err != nil {
		sc.logger.Error("Session cleanup failed: %v", err)
		return 0
	}
	if n > 0 {
		sc.logger.Info("Deleted %d idle sessions", n)
	}
	return n
}

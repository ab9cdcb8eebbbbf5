package workers

import (
	"context"
	"time"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/store"
)

// unlockWorker periodically clears account lockouts whose last failed login
// attempt is older than the configured lockout duration. An account locked
// after too many failed logins therefore becomes usable again without
// operator intervention once the lockout window has passed.
type unlockWorker struct {
	userRepository  store.UserRepository
	interval        time.Duration
	lockoutDuration time.Duration
	logger          *logger.Logger
}

func newUnlockWorker(userRepository store.UserRepository, interval, lockoutDuration time.Duration, log *logger.Logger) *unlockWorker {
	return &unlockWorker{
		userRepository:  userRepository,
		interval:        interval,
		lockoutDuration: lockoutDuration,
		logger:          log,
	}
}

// Run starts the sweeper loop in its own goroutine.
func (w *unlockWorker) Run() {
	w.logger.Info().
		Dur("interval", w.interval).
		Dur("lockout_duration", w.lockoutDuration).
		Msg("starting account unlock worker")

	go w.loop()
}

func (w *unlockWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		w.sweep(context.Background())
	}
}

// sweep unlocks every account whose lockout has expired.
func (w *unlockWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.lockoutDuration)

	unlocked, err := w.userRepository.UnlockStale(ctx, cutoff)
	if err != nil {
		w.logger.Error().Err(err).Msg("error unlocking stale accounts")
		return
	}

	if unlocked > 0 {
		w.logger.Info().Int64("unlocked", unlocked).Msg("stale account lockouts cleared")
	}
}

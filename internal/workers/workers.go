package workers

import (
	"github.com/mkarev/userhub/internal/config"
	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers constructs the application's background workers: currently the
// account-unlock sweeper that clears stale login lockouts.
func NewWorkers(storages store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newUnlockWorker(storages.UserRepository, cfg.Workers.UnlockInterval, cfg.Auth.LockoutDuration, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

package workers

import (
	"context"

	"github.com/MKhiriev/author-haven/internal/config"
	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application. Currently
// that is the expired-token sweeper keeping the revocation set small.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newTokenSweeper(ctx, storages.TokenRepository, cfg.TokenSweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

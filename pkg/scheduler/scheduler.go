// Package scheduler triggers ingestion of all sources periodically.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedmix/pkg/domain"
)

//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester

// Ingester fetches all non-muted sources and reports aggregate stats
type Ingester interface {
	FetchAllSources(ctx context.Context) (domain.BatchStats, error)
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Ingester       Ingester
	UpdateInterval time.Duration
}

// Scheduler runs ingestion on start and then every update interval. Runs never overlap,
// a tick arriving while a run is in progress is skipped.
type Scheduler struct {
	ingester       Ingester
	updateInterval time.Duration

	runMu  sync.Mutex
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval <= 0 {
		params.UpdateInterval = 30 * time.Minute
	}
	return &Scheduler{
		ingester:       params.Ingester,
		updateInterval: params.UpdateInterval,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.updateWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v", s.updateInterval)
}

// Stop gracefully stops the scheduler and waits for the current run
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// UpdateNow runs ingestion immediately, waiting for a run in progress to finish first
func (s *Scheduler) UpdateNow(ctx context.Context) (domain.BatchStats, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	stats, err := s.ingester.FetchAllSources(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch all sources: %w", err)
	}
	return stats, nil
}

// updateWorker runs ingestion on start and on every tick
func (s *Scheduler) updateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	s.tryUpdate(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tryUpdate(ctx)
		}
	}
}

// tryUpdate runs ingestion unless another run is active
func (s *Scheduler) tryUpdate(ctx context.Context) {
	if !s.runMu.TryLock() {
		lgr.Printf("[DEBUG] ingestion is already running, skip scheduled run")
		return
	}
	defer s.runMu.Unlock()

	stats, err := s.ingester.FetchAllSources(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduled ingestion failed: %v", err)
		return
	}
	if stats.ErrorCount > 0 {
		lgr.Printf("[WARN] scheduled ingestion %s: %d of %d sources failed", stats.RunID, stats.ErrorCount, stats.TotalSources)
	}
}

// Package ingest fetches content from sources through provider adapters and stores it
// in the shared content store. A failing source never stops its siblings in a batch.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/provider"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore

// SourceStore loads sources and records fetch outcomes
type SourceStore interface {
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	ListSources(ctx context.Context, userID string, activeOnly bool) ([]*domain.Source, error)
	UpdateFetchSuccess(ctx context.Context, id int64, at time.Time) error
	UpdateFetchError(ctx context.Context, id int64, at time.Time, msg string) error
}

// ContentStore upserts normalized items by natural key and returns the number of inserted rows
type ContentStore interface {
	UpsertItems(ctx context.Context, provider domain.ProviderType, sourceExternalID string,
		items []domain.NormalizedItem, now time.Time) (int, error)
}

// AdapterResolver returns adapter registered for a provider type
type AdapterResolver interface {
	Get(p domain.ProviderType) (provider.Adapter, error)
}

// Config holds orchestrator dependencies and parameters
type Config struct {
	Sources      SourceStore
	Content      ContentStore
	Adapters     AdapterResolver
	MaxWorkers   int
	RecentWindow time.Duration // window passed to FetchRecent
	BacklogAfter time.Duration // backlog is fetched when the last fetch is older than this
	FetchTimeout time.Duration // per adapter call
	RetryFunc    func(ctx context.Context, operation func() error) error
}

// Orchestrator runs ingestion for single sources and batches of sources
type Orchestrator struct {
	sources      SourceStore
	content      ContentStore
	adapters     AdapterResolver
	maxWorkers   int
	recentWindow time.Duration
	backlogAfter time.Duration
	fetchTimeout time.Duration
	retryFunc    func(ctx context.Context, operation func() error) error
	now          func() time.Time
}

// NewOrchestrator makes orchestrator, zero parameters get defaults
func NewOrchestrator(cfg Config) *Orchestrator {
	res := &Orchestrator{
		sources:      cfg.Sources,
		content:      cfg.Content,
		adapters:     cfg.Adapters,
		maxWorkers:   cfg.MaxWorkers,
		recentWindow: cfg.RecentWindow,
		backlogAfter: cfg.BacklogAfter,
		fetchTimeout: cfg.FetchTimeout,
		retryFunc:    cfg.RetryFunc,
		now:          time.Now,
	}
	if res.maxWorkers <= 0 {
		res.maxWorkers = 5
	}
	if res.recentWindow <= 0 {
		res.recentWindow = 72 * time.Hour
	}
	if res.backlogAfter <= 0 {
		res.backlogAfter = 7 * 24 * time.Hour
	}
	if res.fetchTimeout <= 0 {
		res.fetchTimeout = 30 * time.Second
	}
	if res.retryFunc == nil {
		res.retryFunc = func(ctx context.Context, op func() error) error { return op() }
	}
	return res
}

// FetchSource ingests a single source and returns the number of new content items.
// Adapter and storage failures are recorded on the source and returned.
func (o *Orchestrator) FetchSource(ctx context.Context, sourceID int64, forceBacklog bool) (int, error) {
	src, err := o.sources.GetSource(ctx, sourceID)
	if err != nil {
		return 0, fmt.Errorf("load source %d: %w", sourceID, err)
	}
	return o.fetch(ctx, src, forceBacklog)
}

// FetchAllSources ingests all non-muted sources of all users
func (o *Orchestrator) FetchAllSources(ctx context.Context) (domain.BatchStats, error) {
	return o.fetchBatch(ctx, "")
}

// FetchUserSources ingests all non-muted sources of the user
func (o *Orchestrator) FetchUserSources(ctx context.Context, userID string) (domain.BatchStats, error) {
	return o.fetchBatch(ctx, userID)
}

// fetchBatch runs sources concurrently on a bounded pool. Per-source failures are counted,
// the only returned error is a failure to list sources; stats are returned in both cases.
func (o *Orchestrator) fetchBatch(ctx context.Context, userID string) (domain.BatchStats, error) {
	start := o.now()
	stats := domain.BatchStats{RunID: uuid.NewString()}

	sources, err := o.sources.ListSources(ctx, userID, true)
	if err != nil {
		stats.Duration = o.now().Sub(start)
		return stats, fmt.Errorf("list sources: %w", err)
	}
	stats.TotalSources = len(sources)
	lgr.Printf("[INFO] ingestion run %s: fetching %d sources", stats.RunID, len(sources))

	var mu sync.Mutex
	var g errgroup.Group // no shared context, one failed source must not cancel the others
	g.SetLimit(o.maxWorkers)
	for _, src := range sources {
		g.Go(func() error {
			n, err := o.fetch(ctx, src, false)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.ErrorCount++
				return nil
			}
			stats.SuccessCount++
			stats.NewItemsCount += n
			return nil
		})
	}
	_ = g.Wait()

	stats.Duration = o.now().Sub(start)
	lgr.Printf("[INFO] ingestion run %s completed: %d ok, %d failed, %d new items in %v",
		stats.RunID, stats.SuccessCount, stats.ErrorCount, stats.NewItemsCount, stats.Duration)
	return stats, nil
}

// fetch ingests a loaded source and records the outcome on it
func (o *Orchestrator) fetch(ctx context.Context, src *domain.Source, forceBacklog bool) (int, error) {
	now := o.now().UTC()
	inserted, err := o.ingest(ctx, src, now, forceBacklog)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch source %d (%s %s): %v", src.ID, src.ProviderType, src.ExternalID, err)
		if uerr := o.sources.UpdateFetchError(ctx, src.ID, now, err.Error()); uerr != nil {
			lgr.Printf("[WARN] failed to record fetch error for source %d: %v", src.ID, uerr)
		}
		return 0, fmt.Errorf("source %d: %w", src.ID, err)
	}

	if err := o.sources.UpdateFetchSuccess(ctx, src.ID, now); err != nil {
		return inserted, fmt.Errorf("record fetch success for source %d: %w", src.ID, err)
	}
	lgr.Printf("[DEBUG] source %d (%s %s): %d new items", src.ID, src.ProviderType, src.ExternalID, inserted)
	return inserted, nil
}

func (o *Orchestrator) ingest(ctx context.Context, src *domain.Source, now time.Time, forceBacklog bool) (int, error) {
	adapter, err := o.adapters.Get(src.ProviderType)
	if err != nil {
		return 0, err
	}

	items, err := o.call(ctx, func(ctx context.Context) ([]domain.NormalizedItem, error) {
		return adapter.FetchRecent(ctx, src.ExternalID, now.Add(-o.recentWindow))
	})
	if err != nil {
		return 0, fmt.Errorf("fetch recent: %w", err)
	}

	if o.needsBacklog(src, now, forceBacklog) {
		backlog, err := o.call(ctx, func(ctx context.Context) ([]domain.NormalizedItem, error) {
			return adapter.FetchBacklog(ctx, src.ExternalID)
		})
		if err != nil {
			return 0, fmt.Errorf("fetch backlog: %w", err)
		}
		items = append(items, backlog...)
	}

	inserted, err := o.content.UpsertItems(ctx, src.ProviderType, src.ExternalID, items, now)
	if err != nil {
		return 0, fmt.Errorf("store items: %w", err)
	}
	return inserted, nil
}

// needsBacklog is true when forced, for sources without a successful last fetch,
// and for sources not fetched for backlogAfter. A failed fetch, the initial one included,
// gets the backlog retried on the next run.
func (o *Orchestrator) needsBacklog(src *domain.Source, now time.Time, force bool) bool {
	if force || src.LastFetchAt == nil || src.LastFetchStatus != domain.FetchStatusSuccess {
		return true
	}
	return now.Sub(*src.LastFetchAt) > o.backlogAfter
}

// call runs adapter call through retry func, each attempt gets its own timeout
func (o *Orchestrator) call(ctx context.Context, fn func(ctx context.Context) ([]domain.NormalizedItem, error)) ([]domain.NormalizedItem, error) {
	var res []domain.NormalizedItem
	err := o.retryFunc(ctx, func() error {
		actx, cancel := context.WithTimeout(ctx, o.fetchTimeout)
		defer cancel()
		items, err := fn(actx)
		if err != nil {
			return err
		}
		res = items
		return nil
	})
	return res, err
}

// errStopRetry is matched by terminalError so repeater gives up right away
var errStopRetry = errors.New("stop retry")

type terminalError struct{ err error }

func (e *terminalError) Error() string        { return e.err.Error() }
func (e *terminalError) Unwrap() error        { return e.err }
func (e *terminalError) Is(target error) bool { return target == errStopRetry }

// RateLimitRetry makes a retry func repeating operations that failed with ErrRateLimited,
// with exponential backoff starting at delay. Other errors are returned after the first attempt.
// When attempts are exhausted the last rate limit error is returned.
func RateLimitRetry(attempts int, delay time.Duration) func(ctx context.Context, operation func() error) error {
	if attempts <= 0 {
		attempts = 1
	}
	return func(ctx context.Context, operation func() error) error {
		retrier := repeater.NewBackoff(attempts, delay, repeater.WithMaxDelay(30*time.Second))
		err := retrier.Do(ctx, func() error {
			err := operation()
			if err == nil || errors.Is(err, domain.ErrRateLimited) {
				return err
			}
			return &terminalError{err: err}
		}, errStopRetry)

		var te *terminalError
		if errors.As(err, &te) {
			return te.err
		}
		return err
	}
}

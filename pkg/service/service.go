// Package service implements user operations on sources, interactions, keywords, preferences
// and collections. Every operation changing what a user's feed may contain invalidates that
// user's cached feed.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/provider"
	"github.com/umputun/feedmix/pkg/repository"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/invalidator.go -pkg mocks -skip-ensure -fmt goimports . FeedInvalidator

// Fetcher runs ingestion for a single source or all sources of a user
type Fetcher interface {
	FetchSource(ctx context.Context, sourceID int64, forceBacklog bool) (int, error)
	FetchUserSources(ctx context.Context, userID string) (domain.BatchStats, error)
}

// FeedInvalidator drops a user's cached feed
type FeedInvalidator interface {
	RefreshFeed(userID string)
}

// AdapterResolver returns adapter registered for a provider type
type AdapterResolver interface {
	Get(p domain.ProviderType) (provider.Adapter, error)
}

// Config holds service dependencies
type Config struct {
	Repos        *repository.Repositories
	Adapters     AdapterResolver
	Fetcher      Fetcher
	Feed         FeedInvalidator
	FetchTimeout time.Duration // limit for the initial fetch of a new source
}

// Service provides user operations over repositories, adapters and ingestion
type Service struct {
	repos        *repository.Repositories
	adapters     AdapterResolver
	fetcher      Fetcher
	feed         FeedInvalidator
	fetchTimeout time.Duration

	wg sync.WaitGroup // background fetches of new sources
}

// NewService creates a new service
func NewService(cfg Config) *Service {
	res := &Service{
		repos:        cfg.Repos,
		adapters:     cfg.Adapters,
		fetcher:      cfg.Fetcher,
		feed:         cfg.Feed,
		fetchTimeout: cfg.FetchTimeout,
	}
	if res.fetchTimeout <= 0 {
		res.fetchTimeout = 2 * time.Minute
	}
	return res
}

// Wait blocks until background fetches started by AddSource complete
func (s *Service) Wait() {
	s.wg.Wait()
}

// invalidate drops cached feed of the user
func (s *Service) invalidate(userID string) {
	s.feed.RefreshFeed(userID)
}

// fetchInBackground ingests a new source with backlog and refreshes the feed once items are stored
func (s *Service) fetchInBackground(ctx context.Context, src *domain.Source) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		n, err := s.fetcher.FetchSource(fctx, src.ID, true)
		if err != nil {
			lgr.Printf("[WARN] initial fetch of source %d failed: %v", src.ID, err)
			return
		}
		lgr.Printf("[INFO] initial fetch of source %d (%s): %d items", src.ID, src.DisplayName, n)
		s.invalidate(src.UserID)
	}()
}

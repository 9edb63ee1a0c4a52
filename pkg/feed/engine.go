// Package feed computes per-user feeds from stored content and renders them as RSS.
package feed

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/filter"
)

//go:generate moq -out mocks/candidate_store.go -pkg mocks -skip-ensure -fmt goimports . CandidateStore
//go:generate moq -out mocks/interaction_store.go -pkg mocks -skip-ensure -fmt goimports . InteractionStore
//go:generate moq -out mocks/keyword_store.go -pkg mocks -skip-ensure -fmt goimports . KeywordStore
//go:generate moq -out mocks/preferences_store.go -pkg mocks -skip-ensure -fmt goimports . PreferencesStore
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// CandidateStore lists eligible content of the user's non-muted sources, newest first
type CandidateStore interface {
	ListCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error)
}

// InteractionStore lists the user's interactions of the given types
type InteractionStore interface {
	ListInteractions(ctx context.Context, userID string, types ...domain.InteractionType) ([]domain.Interaction, error)
}

// KeywordStore lists the user's block-list
type KeywordStore interface {
	ListKeywords(ctx context.Context, userID string) ([]domain.FilterKeyword, error)
}

// PreferencesStore returns user preferences, defaults for users without stored ones
type PreferencesStore interface {
	GetPreferences(ctx context.Context, userID string) (domain.UserPreferences, error)
}

// Cache keeps computed feeds for a short time, expiry is up to the cache
type Cache interface {
	Get(key string) ([]domain.FeedItem, bool)
	Set(key string, value []domain.FeedItem)
	Delete(key string)
}

// Config holds engine dependencies and parameters
type Config struct {
	Candidates     CandidateStore
	Interactions   InteractionStore
	Keywords       KeywordStore
	Preferences    PreferencesStore
	Cache          Cache
	Limit          int           // max items in a feed
	CandidateLimit int           // max candidates loaded per partition (recent and backlog)
	RecencyWindow  time.Duration // items published within it are recent, older ones are backlog
	NotNowCooldown time.Duration // NOT_NOW items re-surface after it
	ComputeTimeout time.Duration // bounds a shared computation, independent of callers' contexts
}

// Engine computes user feeds with a read-through cache. Concurrent misses for the same user
// share a single computation.
type Engine struct {
	candidates     CandidateStore
	interactions   InteractionStore
	keywords       KeywordStore
	preferences    PreferencesStore
	cache          Cache
	limit          int
	candidateLimit int
	recencyWindow  time.Duration
	notNowCooldown time.Duration
	computeTimeout time.Duration

	group singleflight.Group
	now   func() time.Time
}

// NewEngine makes feed engine, zero parameters get defaults
func NewEngine(cfg Config) *Engine {
	res := &Engine{
		candidates:     cfg.Candidates,
		interactions:   cfg.Interactions,
		keywords:       cfg.Keywords,
		preferences:    cfg.Preferences,
		cache:          cfg.Cache,
		limit:          cfg.Limit,
		candidateLimit: cfg.CandidateLimit,
		recencyWindow:  cfg.RecencyWindow,
		notNowCooldown: cfg.NotNowCooldown,
		computeTimeout: cfg.ComputeTimeout,
		now:            time.Now,
	}
	if res.limit <= 0 {
		res.limit = 50
	}
	if res.candidateLimit <= 0 {
		res.candidateLimit = 2000
	}
	if res.recencyWindow <= 0 {
		res.recencyWindow = 7 * 24 * time.Hour
	}
	if res.notNowCooldown <= 0 {
		res.notNowCooldown = 72 * time.Hour
	}
	if res.computeTimeout <= 0 {
		res.computeTimeout = 30 * time.Second
	}
	return res
}

func cacheKey(userID string) string { return "feed:" + userID }

// GetUserFeed returns the user's feed, from cache when present. The returned slice is shared
// with the cache and other callers and must not be modified.
func (e *Engine) GetUserFeed(ctx context.Context, userID string) ([]domain.FeedItem, error) {
	key := cacheKey(userID)
	if items, ok := e.cache.Get(key); ok {
		return items, nil
	}

	// the computation is shared, so it runs detached from the caller who started it.
	// a caller whose ctx ends stops waiting, the others still get the result.
	ch := e.group.DoChan(key, func() (any, error) {
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.computeTimeout)
		defer cancel()
		items, err := e.compute(cctx, userID)
		if err != nil {
			return nil, err
		}
		e.cache.Set(key, items)
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("compute feed for %s: %w", userID, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("compute feed for %s: %w", userID, res.Err)
		}
		if res.Shared {
			lgr.Printf("[DEBUG] feed for %s shared with concurrent request", userID)
		}
		return res.Val.([]domain.FeedItem), nil
	}
}

// RefreshFeed drops the cached feed of the user, the next GetUserFeed recomputes it
func (e *Engine) RefreshFeed(userID string) {
	e.cache.Delete(cacheKey(userID))
}

// compute builds the feed: exclusions, filters, backlog mix, diversity cap and interleave
func (e *Engine) compute(ctx context.Context, userID string) ([]domain.FeedItem, error) {
	prefs, err := e.preferences.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	keywords, err := e.keywords.ListKeywords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	interactions, err := e.interactions.ListInteractions(ctx, userID, domain.InteractionDismissed,
		domain.InteractionBlocked, domain.InteractionWatched, domain.InteractionNotNow)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	now := e.now()
	recentSince := now.Add(-e.recencyWindow)
	candidates, err := e.loadCandidates(ctx, userID, prefs, now, recentSince)
	if err != nil {
		return nil, err
	}
	excluded := e.exclusions(interactions, now)

	seen := make(map[int64]bool, len(candidates))
	var recent, backlog []domain.Candidate
	for _, c := range candidates {
		if seen[c.ID] || excluded[c.ID] {
			continue
		}
		seen[c.ID] = true
		if !filter.Allowed(c, keywords, prefs) {
			continue
		}
		if c.PublishedAt.Before(recentSince) {
			backlog = append(backlog, c)
			continue
		}
		recent = append(recent, c)
	}

	sortNewest(recent)
	sortNewest(backlog)
	selected := selectMix(recent, backlog, e.limit, prefs.BacklogRatio)
	capped := capPerSource(selected, prefs.DiversityLimit)
	ordered := interleave(capped)

	res := make([]domain.FeedItem, 0, len(ordered))
	for _, c := range ordered {
		res = append(res, toFeedItem(c, c.PublishedAt.Before(recentSince)))
	}
	lgr.Printf("[DEBUG] feed for %s: %d candidates, %d recent, %d backlog, %d items",
		userID, len(candidates), len(recent), len(backlog), len(res))
	return res, nil
}

// loadCandidates queries recent and backlog partitions separately, so a burst of new content
// never pushes the backlog out of the candidate limit
func (e *Engine) loadCandidates(ctx context.Context, userID string, prefs domain.UserPreferences,
	now, recentSince time.Time) ([]domain.Candidate, error) {
	q := domain.CandidateQuery{
		UserID:      userID,
		NotNowSince: now.Add(-e.notNowCooldown),
		MinDuration: prefs.MinDuration,
		MaxDuration: prefs.MaxDuration,
		Limit:       e.candidateLimit,
	}
	recentQ, backlogQ := q, q
	recentQ.PublishedAfter = recentSince
	backlogQ.PublishedBefore = recentSince

	recent, err := e.candidates.ListCandidates(ctx, recentQ)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	backlog, err := e.candidates.ListCandidates(ctx, backlogQ)
	if err != nil {
		return nil, fmt.Errorf("list backlog candidates: %w", err)
	}
	return append(recent, backlog...), nil
}

// exclusions returns ids of content hidden by interactions. NOT_NOW hides the item until
// the cool-down since its last update has passed.
func (e *Engine) exclusions(interactions []domain.Interaction, now time.Time) map[int64]bool {
	res := make(map[int64]bool, len(interactions))
	for _, in := range interactions {
		switch in.Type {
		case domain.InteractionDismissed, domain.InteractionBlocked, domain.InteractionWatched:
			res[in.ContentItemID] = true
		case domain.InteractionNotNow:
			if now.Sub(in.UpdatedAt) < e.notNowCooldown {
				res[in.ContentItemID] = true
			}
		}
	}
	return res
}

// selectMix takes round(limit*ratio) items from backlog and the rest from recent, both lists
// newest first. A short partition is topped up from the other one.
func selectMix(recent, backlog []domain.Candidate, limit int, ratio float64) []domain.Candidate {
	wantBacklog := int(math.Round(float64(limit) * ratio))
	nb := min(wantBacklog, len(backlog))
	nr := min(limit-wantBacklog, len(recent))

	short := limit - nb - nr
	if extra := min(short, len(backlog)-nb); extra > 0 {
		nb += extra
		short -= extra
	}
	if extra := min(short, len(recent)-nr); extra > 0 {
		nr += extra
	}

	res := make([]domain.Candidate, 0, nr+nb)
	res = append(res, recent[:nr]...)
	res = append(res, backlog[:nb]...)
	return res
}

// capPerSource keeps at most limit newest items per source, the rest is dropped
func capPerSource(items []domain.Candidate, limit int) []domain.Candidate {
	if limit <= 0 {
		limit = domain.DefaultDiversityLimit
	}
	sorted := make([]domain.Candidate, len(items))
	copy(sorted, items)
	sortNewest(sorted)

	counts := make(map[int64]int)
	res := make([]domain.Candidate, 0, len(sorted))
	for _, c := range sorted {
		if counts[c.SourceID] >= limit {
			continue
		}
		counts[c.SourceID]++
		res = append(res, c)
	}
	return res
}

// interleave orders items newest first while avoiding consecutive items from the same source
// when another source still has items. Items of one source keep their newest-first order.
func interleave(items []domain.Candidate) []domain.Candidate {
	queues := make(map[int64][]domain.Candidate)
	var order []int64
	for _, c := range items { // items are sorted newest first by capPerSource
		if _, ok := queues[c.SourceID]; !ok {
			order = append(order, c.SourceID)
		}
		queues[c.SourceID] = append(queues[c.SourceID], c)
	}

	res := make([]domain.Candidate, 0, len(items))
	last := int64(-1)
	for len(res) < len(items) {
		pick := int64(-1)
		for _, sid := range order {
			q := queues[sid]
			if len(q) == 0 || sid == last {
				continue
			}
			if pick == -1 || newer(q[0], queues[pick][0]) {
				pick = sid
			}
		}
		if pick == -1 { // only the last emitted source has items left
			pick = last
		}
		res = append(res, queues[pick][0])
		queues[pick] = queues[pick][1:]
		last = pick
	}
	return res
}

// newer orders by published time descending, then by id descending
func newer(a, b domain.Candidate) bool {
	if !a.PublishedAt.Equal(b.PublishedAt) {
		return a.PublishedAt.After(b.PublishedAt)
	}
	return a.ID > b.ID
}

func sortNewest(items []domain.Candidate) {
	sort.SliceStable(items, func(i, j int) bool { return newer(items[i], items[j]) })
}

func toFeedItem(c domain.Candidate, backlog bool) domain.FeedItem {
	return domain.FeedItem{
		ContentID:    c.ID,
		SourceID:     c.SourceID,
		SourceName:   c.SourceName,
		ProviderType: c.ProviderType,
		Title:        c.Title,
		Description:  c.Description,
		ThumbnailURL: c.ThumbnailURL,
		URL:          c.URL,
		Duration:     c.Duration,
		PublishedAt:  c.PublishedAt,
		Backlog:      backlog,
	}
}

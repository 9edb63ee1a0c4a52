// Package provider implements source adapters for external content providers.
// Each adapter normalizes provider data into domain.NormalizedItem with durations in whole seconds
// and reports throttling as *domain.RateLimitError, every other failure as *domain.ProviderError.
package provider

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/umputun/feedmix/pkg/domain"
)

//go:generate moq -out mocks/adapter.go -pkg mocks -skip-ensure -fmt goimports . Adapter

// Adapter is the capability contract every content provider implements
type Adapter interface {
	Type() domain.ProviderType
	ValidateSource(ctx context.Context, rawID string) (domain.SourceValidation, error)
	FetchRecent(ctx context.Context, canonicalID string, since time.Time) ([]domain.NormalizedItem, error)
	FetchBacklog(ctx context.Context, canonicalID string) ([]domain.NormalizedItem, error)
	GetSourceMetadata(ctx context.Context, canonicalID string) (domain.SourceMetadata, error)
}

// Options configures the default set of adapters
type Options struct {
	Timeout   time.Duration
	UserAgent string
	VideoA    VideoAOptions
	VideoB    VideoBOptions
}

// Registry maps provider types to adapters, built once at startup and read-only afterwards
type Registry struct {
	adapters map[domain.ProviderType]Adapter
}

// NewRegistry makes a registry from adapters, a later adapter for the same type replaces an earlier one
func NewRegistry(adapters ...Adapter) *Registry {
	res := &Registry{adapters: make(map[domain.ProviderType]Adapter, len(adapters))}
	for _, a := range adapters {
		res.adapters[a.Type()] = a
	}
	return res
}

// NewDefaultRegistry makes a registry with all supported adapters sharing one http client
func NewDefaultRegistry(opts Options) *Registry {
	client := newHTTPClient(opts.Timeout, opts.UserAgent)
	return NewRegistry(
		NewRSS(client),
		NewPodcast(client),
		NewVideoA(client, opts.VideoA),
		NewVideoB(client, opts.VideoB),
	)
}

// Get returns adapter for the provider type or ErrUnsupportedProvider
func (r *Registry) Get(p domain.ProviderType) (Adapter, error) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, domain.ErrUnsupportedProvider)
	}
	return a, nil
}

// Types returns registered provider types in stable order
func (r *Registry) Types() []domain.ProviderType {
	res := make([]domain.ProviderType, 0, len(r.adapters))
	for p := range r.adapters {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

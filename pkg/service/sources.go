package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedmix/pkg/domain"
)

// AddSource validates raw id with the provider and subscribes the user to the canonical source.
// The source is fetched with backlog in background.
func (s *Service) AddSource(ctx context.Context, userID string, p domain.ProviderType, rawID string) (*domain.Source, error) {
	if strings.TrimSpace(rawID) == "" {
		return nil, &domain.ValidationError{Field: "external_id", Message: "is required"}
	}
	adapter, err := s.adapters.Get(p)
	if err != nil {
		return nil, err
	}
	v, err := adapter.ValidateSource(ctx, rawID)
	if err != nil {
		return nil, fmt.Errorf("validate source: %w", err)
	}
	if !v.IsValid {
		return nil, &domain.ValidationError{Field: "external_id", Message: fmt.Sprintf("%q is not a valid %s source", rawID, p)}
	}

	src := &domain.Source{
		UserID:       userID,
		ProviderType: p,
		ExternalID:   v.CanonicalID,
		DisplayName:  v.DisplayName,
		AvatarURL:    v.AvatarURL,
	}
	if src.DisplayName == "" {
		src.DisplayName = v.CanonicalID
	}
	if err := s.repos.Source.CreateSource(ctx, src); err != nil {
		return nil, err
	}
	lgr.Printf("[INFO] user %s added %s source %s", userID, p, src.ExternalID)

	s.invalidate(userID)
	s.fetchInBackground(ctx, src)
	return src, nil
}

// GetSource returns the user's source
func (s *Service) GetSource(ctx context.Context, userID string, id int64) (*domain.Source, error) {
	return s.repos.Source.GetUserSource(ctx, userID, id)
}

// ListSources returns all sources of the user including muted ones
func (s *Service) ListSources(ctx context.Context, userID string) ([]*domain.Source, error) {
	return s.repos.Source.ListSources(ctx, userID, false)
}

// UpdateSource renames, mutes or marks source always-safe
func (s *Service) UpdateSource(ctx context.Context, userID string, id int64, upd domain.SourceUpdate) (*domain.Source, error) {
	if upd.DisplayName != nil {
		name := strings.TrimSpace(*upd.DisplayName)
		if name == "" {
			return nil, &domain.ValidationError{Field: "display_name", Message: "must not be empty"}
		}
		upd.DisplayName = &name
	}
	if err := s.repos.Source.UpdateSource(ctx, userID, id, upd); err != nil {
		return nil, err
	}
	s.invalidate(userID)
	return s.repos.Source.GetUserSource(ctx, userID, id)
}

// DeleteSource unsubscribes the user, shared content stays in the store
func (s *Service) DeleteSource(ctx context.Context, userID string, id int64) error {
	if err := s.repos.Source.DeleteSource(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(userID)
	return nil
}

// SourceMetadata returns provider metadata of the user's source
func (s *Service) SourceMetadata(ctx context.Context, userID string, id int64) (domain.SourceMetadata, error) {
	src, err := s.repos.Source.GetUserSource(ctx, userID, id)
	if err != nil {
		return domain.SourceMetadata{}, err
	}
	adapter, err := s.adapters.Get(src.ProviderType)
	if err != nil {
		return domain.SourceMetadata{}, err
	}
	return adapter.GetSourceMetadata(ctx, src.ExternalID)
}

// FetchSource ingests the user's source now and returns the number of new items
func (s *Service) FetchSource(ctx context.Context, userID string, id int64, forceBacklog bool) (int, error) {
	if _, err := s.repos.Source.GetUserSource(ctx, userID, id); err != nil {
		return 0, err
	}
	n, err := s.fetcher.FetchSource(ctx, id, forceBacklog)
	s.invalidate(userID) // fetch status changed even on failure
	return n, err
}

// FetchUserSources ingests all non-muted sources of the user
func (s *Service) FetchUserSources(ctx context.Context, userID string) (domain.BatchStats, error) {
	stats, err := s.fetcher.FetchUserSources(ctx, userID)
	s.invalidate(userID)
	return stats, err
}

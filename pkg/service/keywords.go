package service

import (
	"context"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/filter"
)

// AddKeyword normalizes and stores a block-list keyword
func (s *Service) AddKeyword(ctx context.Context, userID, raw string, wildcard bool) (*domain.FilterKeyword, error) {
	norm, err := filter.NormalizeKeyword(raw)
	if err != nil {
		return nil, err
	}
	kw := &domain.FilterKeyword{UserID: userID, Keyword: norm, IsWildcard: wildcard}
	if err := s.repos.Keyword.CreateKeyword(ctx, kw); err != nil {
		return nil, err
	}
	s.invalidate(userID)
	return kw, nil
}

// ListKeywords returns the user's block-list
func (s *Service) ListKeywords(ctx context.Context, userID string) ([]domain.FilterKeyword, error) {
	return s.repos.Keyword.ListKeywords(ctx, userID)
}

// DeleteKeyword removes a keyword, ErrNotFound if the user has no such keyword
func (s *Service) DeleteKeyword(ctx context.Context, userID string, id int64) error {
	if err := s.repos.Keyword.DeleteKeyword(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(userID)
	return nil
}

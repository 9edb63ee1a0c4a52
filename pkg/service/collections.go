package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/umputun/feedmix/pkg/domain"
)

// CreateCollection makes a named collection for saved content
func (s *Service) CreateCollection(ctx context.Context, userID, name string) (*domain.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "must not be empty"}
	}
	c := &domain.Collection{UserID: userID, Name: name}
	if err := s.repos.Collection.CreateCollection(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCollections returns the user's collections
func (s *Service) ListCollections(ctx context.Context, userID string) ([]domain.Collection, error) {
	return s.repos.Collection.ListCollections(ctx, userID)
}

// AddToCollection puts content the user saved into the user's collection
func (s *Service) AddToCollection(ctx context.Context, userID string, collectionID, contentID int64) error {
	if _, err := s.repos.Collection.GetCollection(ctx, userID, collectionID); err != nil {
		return err
	}
	saved, err := s.repos.Interaction.HasInteraction(ctx, userID, contentID, domain.InteractionSaved)
	if err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("saved content %d: %w", contentID, domain.ErrNotFound)
	}
	return s.repos.Collection.AddItem(ctx, collectionID, contentID)
}

// CollectionItems returns content of the user's collection
func (s *Service) CollectionItems(ctx context.Context, userID string, collectionID int64) ([]domain.ContentItem, error) {
	if _, err := s.repos.Collection.GetCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}
	return s.repos.Collection.ListItems(ctx, collectionID)
}

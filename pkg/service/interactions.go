package service

import (
	"context"
	"fmt"

	"github.com/umputun/feedmix/pkg/domain"
)

// defaultListLimit caps saved and history lists when no limit is given
const defaultListLimit = 100

// RecordInteraction stores the user's action on a content item. Watch details are accepted
// for WATCHED only. Unknown content is reported as ErrNotFound.
func (s *Service) RecordInteraction(ctx context.Context, userID string, contentID int64, typ domain.InteractionType,
	details domain.WatchDetails) (*domain.Interaction, error) {
	if typ != domain.InteractionWatched && (details.WatchDuration != nil || details.CompletionRate != nil) {
		return nil, &domain.ValidationError{Field: "type", Message: "watch details are allowed for WATCHED only"}
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repos.Content.GetItem(ctx, contentID); err != nil {
		return nil, err
	}

	in := &domain.Interaction{
		UserID:         userID,
		ContentItemID:  contentID,
		Type:           typ,
		WatchDuration:  details.WatchDuration,
		CompletionRate: details.CompletionRate,
	}
	if err := s.repos.Interaction.UpsertInteraction(ctx, in); err != nil {
		return nil, fmt.Errorf("record %s: %w", typ, err)
	}
	s.invalidate(userID)
	return in, nil
}

// ClearHistory removes WATCHED interactions, or every interaction type when all is set
func (s *Service) ClearHistory(ctx context.Context, userID string, all bool) (int64, error) {
	var types []domain.InteractionType
	if !all {
		types = []domain.InteractionType{domain.InteractionWatched}
	}
	n, err := s.repos.Interaction.ClearInteractions(ctx, userID, types...)
	if err != nil {
		return 0, err
	}
	s.invalidate(userID)
	return n, nil
}

// Saved returns content the user saved, most recent first
func (s *Service) Saved(ctx context.Context, userID string, limit int) ([]domain.InteractionRecord, error) {
	return s.repos.Interaction.ListRecords(ctx, userID, domain.InteractionSaved, listLimit(limit))
}

// History returns content the user watched, most recent first
func (s *Service) History(ctx context.Context, userID string, limit int) ([]domain.InteractionRecord, error) {
	return s.repos.Interaction.ListRecords(ctx, userID, domain.InteractionWatched, listLimit(limit))
}

func listLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return defaultListLimit
	}
	return limit
}

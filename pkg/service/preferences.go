package service

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/feedmix/pkg/domain"
)

var themes = map[string]bool{"system": true, "light": true, "dark": true}

// GetPreferences returns stored preferences or defaults
func (s *Service) GetPreferences(ctx context.Context, userID string) (domain.UserPreferences, error) {
	return s.repos.Preferences.GetPreferences(ctx, userID)
}

// UpdatePreferences validates and replaces the user's preferences
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	prefs.UserID = userID
	if prefs.Theme == "" {
		prefs.Theme = domain.DefaultTheme
	}
	if !themes[prefs.Theme] {
		return domain.UserPreferences{}, &domain.ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q", prefs.Theme)}
	}
	if err := prefs.Validate(); err != nil {
		return domain.UserPreferences{}, err
	}
	prefs.UpdatedAt = time.Time{}
	if err := s.repos.Preferences.UpsertPreferences(ctx, prefs); err != nil {
		return domain.UserPreferences{}, err
	}
	s.invalidate(userID)
	return s.repos.Preferences.GetPreferences(ctx, userID)
}

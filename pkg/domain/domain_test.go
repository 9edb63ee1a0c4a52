package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteractionType(t *testing.T) {
	tests := []struct {
		in      string
		want    InteractionType
		wantErr bool
	}{
		{in: "WATCHED", want: InteractionWatched},
		{in: "watched", want: InteractionWatched},
		{in: "watch", want: InteractionWatched},
		{in: "save", want: InteractionSaved},
		{in: "dismiss", want: InteractionDismissed},
		{in: "not-now", want: InteractionNotNow},
		{in: " not_now ", want: InteractionNotNow},
		{in: "block", want: InteractionBlocked},
		{in: "like", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInteractionType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "type", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProviderType(t *testing.T) {
	got, err := ParseProviderType(" rss ")
	require.NoError(t, err)
	assert.Equal(t, ProviderRSS, got)

	got, err = ParseProviderType("video_platform_b")
	require.NoError(t, err)
	assert.Equal(t, ProviderVideoB, got)

	_, err = ParseProviderType("VIDEO_PLATFORM_C")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "provider_type")
}

func TestWatchDetails_Validate(t *testing.T) {
	i64 := func(v int64) *int64 { return &v }
	f64 := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		details WatchDetails
		field   string
	}{
		{name: "empty", details: WatchDetails{}},
		{name: "bounds inclusive", details: WatchDetails{WatchDuration: i64(0), CompletionRate: f64(1)}},
		{name: "negative duration", details: WatchDetails{WatchDuration: i64(-1)}, field: "watch_duration"},
		{name: "rate above one", details: WatchDetails{CompletionRate: f64(1.01)}, field: "completion_rate"},
		{name: "negative rate", details: WatchDetails{CompletionRate: f64(-0.1)}, field: "completion_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestUserPreferences_Validate(t *testing.T) {
	i64 := func(v int64) *int64 { return &v }

	tests := []struct {
		name   string
		modify func(p *UserPreferences)
		field  string
	}{
		{name: "defaults", modify: func(p *UserPreferences) {}},
		{name: "equal bounds", modify: func(p *UserPreferences) { p.MinDuration, p.MaxDuration = i64(60), i64(60) }},
		{name: "ratio edges", modify: func(p *UserPreferences) { p.BacklogRatio = 1 }},
		{name: "negative min", modify: func(p *UserPreferences) { p.MinDuration = i64(-1) }, field: "min_duration"},
		{name: "negative max", modify: func(p *UserPreferences) { p.MaxDuration = i64(-1) }, field: "max_duration"},
		{name: "min above max", modify: func(p *UserPreferences) { p.MinDuration, p.MaxDuration = i64(600), i64(60) },
			field: "max_duration"},
		{name: "ratio above one", modify: func(p *UserPreferences) { p.BacklogRatio = 1.5 }, field: "backlog_ratio"},
		{name: "zero diversity", modify: func(p *UserPreferences) { p.DiversityLimit = 0 }, field: "diversity_limit"},
		{name: "diversity above ten", modify: func(p *UserPreferences) { p.DiversityLimit = 11 }, field: "diversity_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPreferences("u1")
			tt.modify(&p)
			err := p.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences("u1")
	assert.Equal(t, "u1", p.UserID)
	assert.InDelta(t, 0.2, p.BacklogRatio, 1e-9)
	assert.Equal(t, 3, p.DiversityLimit)
	assert.Equal(t, "system", p.Theme)
	assert.Nil(t, p.MinDuration)
	assert.Nil(t, p.MaxDuration)
}

func TestErrors(t *testing.T) {
	t.Run("rate limit matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetch source 1: %w", &RateLimitError{Provider: ProviderVideoA, Message: "quota"})
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Equal(t, "fetch source 1: provider VIDEO_PLATFORM_A: rate limited: quota", err.Error())
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("provider error unwraps", func(t *testing.T) {
		inner := errors.New("bad gateway")
		err := &ProviderError{Provider: ProviderRSS, Err: inner}
		assert.ErrorIs(t, err, inner)
		assert.Equal(t, "provider RSS: bad gateway", err.Error())
	})

	t.Run("validation message", func(t *testing.T) {
		assert.Equal(t, "validation: name must not be empty", (&ValidationError{Field: "name", Message: "must not be empty"}).Error())
		assert.Equal(t, "validation: bad input", (&ValidationError{Message: "bad input"}).Error())
		assert.False(t, IsValidation(errors.New("other")))
		assert.True(t, IsValidation(fmt.Errorf("wrap: %w", &ValidationError{Message: "x"})))
	})

	t.Run("content key", func(t *testing.T) {
		item := ContentItem{ProviderType: ProviderPodcast, OriginalID: "ep-1"}
		assert.Equal(t, ContentKey{ProviderType: ProviderPodcast, OriginalID: "ep-1"}, item.Key())
	})
}

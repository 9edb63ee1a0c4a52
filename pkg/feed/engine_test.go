package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/feed/mocks"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func candidate(id, sourceID int64, age time.Duration) domain.Candidate {
	return domain.Candidate{
		ContentItem: domain.ContentItem{
			ID:           id,
			ProviderType: domain.ProviderRSS,
			OriginalID:   fmt.Sprintf("item-%d", id),
			Title:        fmt.Sprintf("title %d", id),
			PublishedAt:  testNow.Add(-age),
		},
		SourceID:   sourceID,
		SourceName: fmt.Sprintf("source %d", sourceID),
	}
}

func int64p(v int64) *int64 { return &v }

// storeCandidates emulates the store: published window and limit of the query
func storeCandidates(candidates []domain.Candidate, q domain.CandidateQuery) []domain.Candidate {
	res := []domain.Candidate{}
	for _, c := range candidates {
		if !q.PublishedAfter.IsZero() && c.PublishedAt.Before(q.PublishedAfter) {
			continue
		}
		if !q.PublishedBefore.IsZero() && !c.PublishedAt.Before(q.PublishedBefore) {
			continue
		}
		if q.Limit > 0 && len(res) >= q.Limit {
			break
		}
		res = append(res, c)
	}
	return res
}

type engineDeps struct {
	candidates   *mocks.CandidateStoreMock
	interactions *mocks.InteractionStoreMock
	keywords     *mocks.KeywordStoreMock
	prefs        *mocks.PreferencesStoreMock
	cache        *mocks.CacheMock
}

func newEngineDeps(candidates []domain.Candidate, prefs domain.UserPreferences) *engineDeps {
	return &engineDeps{
		candidates: &mocks.CandidateStoreMock{
			ListCandidatesFunc: func(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
				return storeCandidates(candidates, q), nil
			},
		},
		interactions: &mocks.InteractionStoreMock{
			ListInteractionsFunc: func(ctx context.Context, userID string, types ...domain.InteractionType) ([]domain.Interaction, error) {
				return nil, nil
			},
		},
		keywords: &mocks.KeywordStoreMock{
			ListKeywordsFunc: func(ctx context.Context, userID string) ([]domain.FilterKeyword, error) { return nil, nil },
		},
		prefs: &mocks.PreferencesStoreMock{
			GetPreferencesFunc: func(ctx context.Context, userID string) (domain.UserPreferences, error) { return prefs, nil },
		},
		cache: &mocks.CacheMock{
			GetFunc:    func(key string) ([]domain.FeedItem, bool) { return nil, false },
			SetFunc:    func(key string, value []domain.FeedItem) {},
			DeleteFunc: func(key string) {},
		},
	}
}

func (d *engineDeps) engine(cfg Config) *Engine {
	cfg.Candidates, cfg.Interactions, cfg.Keywords, cfg.Preferences, cfg.Cache =
		d.candidates, d.interactions, d.keywords, d.prefs, d.cache
	e := NewEngine(cfg)
	e.now = func() time.Time { return testNow }
	return e
}

func contentIDs(items []domain.FeedItem) []int64 {
	res := make([]int64, len(items))
	for i, it := range items {
		res[i] = it.ContentID
	}
	return res
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(Config{})
	assert.Equal(t, 50, e.limit)
	assert.Equal(t, 2000, e.candidateLimit)
	assert.Equal(t, 7*24*time.Hour, e.recencyWindow)
	assert.Equal(t, 72*time.Hour, e.notNowCooldown)
	assert.Equal(t, 30*time.Second, e.computeTimeout)
}

func TestEngine_GetUserFeed_DiversityScenario(t *testing.T) {
	// source A has 2 items, source B has 3, diversity limit 2, no backlog
	candidates := []domain.Candidate{
		candidate(1, 10, 1*time.Hour), candidate(2, 10, 3*time.Hour),
		candidate(3, 20, 2*time.Hour), candidate(4, 20, 4*time.Hour), candidate(5, 20, 5*time.Hour),
	}
	prefs := domain.DefaultPreferences("u1")
	prefs.DiversityLimit = 2
	prefs.BacklogRatio = 0
	deps := newEngineDeps(candidates, prefs)
	e := deps.engine(Config{})

	items, err := e.GetUserFeed(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, []int64{1, 3, 2, 4}, contentIDs(items))

	perSource := map[int64][]int64{}
	for _, it := range items {
		perSource[it.SourceID] = append(perSource[it.SourceID], it.ContentID)
	}
	assert.Equal(t, []int64{1, 2}, perSource[10])
	assert.Equal(t, []int64{3, 4}, perSource[20], "newest first within source, oldest of B dropped")

	require.Len(t, deps.cache.SetCalls(), 1)
	assert.Equal(t, "feed:u1", deps.cache.SetCalls()[0].Key)
	assert.Equal(t, items, deps.cache.SetCalls()[0].Value)

	calls := deps.candidates.ListCandidatesCalls()
	require.Len(t, calls, 2, "recent and backlog are queried separately")
	recentSince := testNow.Add(-7 * 24 * time.Hour)
	assert.Equal(t, domain.CandidateQuery{UserID: "u1", PublishedAfter: recentSince,
		NotNowSince: testNow.Add(-72 * time.Hour), Limit: 2000}, calls[0].Q)
	assert.Equal(t, domain.CandidateQuery{UserID: "u1", PublishedBefore: recentSince,
		NotNowSince: testNow.Add(-72 * time.Hour), Limit: 2000}, calls[1].Q)
}

func TestEngine_GetUserFeed_BacklogNotStarvedByRecent(t *testing.T) {
	var candidates []domain.Candidate
	for i := range 10 {
		candidates = append(candidates, candidate(int64(i+1), int64(i+1), time.Duration(i+1)*time.Hour))
	}
	candidates = append(candidates, candidate(100, 100, 30*24*time.Hour), candidate(101, 101, 31*24*time.Hour))

	prefs := domain.DefaultPreferences("u1")
	prefs.BacklogRatio = 0.5
	deps := newEngineDeps(candidates, prefs)
	e := deps.engine(Config{Limit: 4, CandidateLimit: 4})

	items, err := e.GetUserFeed(context.Background(), "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 100, 101}, contentIDs(items))
}

func TestEngine_GetUserFeed_Exclusions(t *testing.T) {
	candidates := []domain.Candidate{
		candidate(1, 10, time.Hour), candidate(2, 10, 2*time.Hour), candidate(3, 20, 3*time.Hour),
		candidate(4, 20, 4*time.Hour), candidate(5, 30, 5*time.Hour), candidate(6, 30, 6*time.Hour),
		candidate(7, 40, 7*time.Hour),
	}
	prefs := domain.DefaultPreferences("u1")
	prefs.DiversityLimit = 10
	deps := newEngineDeps(candidates, prefs)
	deps.interactions.ListInteractionsFunc = func(ctx context.Context, userID string, types ...domain.InteractionType) ([]domain.Interaction, error) {
		return []domain.Interaction{
			{ContentItemID: 1, Type: domain.InteractionDismissed, UpdatedAt: testNow.Add(-365 * 24 * time.Hour)},
			{ContentItemID: 2, Type: domain.InteractionBlocked, UpdatedAt: testNow},
			{ContentItemID: 3, Type: domain.InteractionWatched, UpdatedAt: testNow},
			{ContentItemID: 4, Type: domain.InteractionNotNow, UpdatedAt: testNow.Add(-time.Hour)},      // within cool-down
			{ContentItemID: 5, Type: domain.InteractionNotNow, UpdatedAt: testNow.Add(-73 * time.Hour)}, // cool-down passed
			{ContentItemID: 6, Type: domain.InteractionSaved, UpdatedAt: testNow},                       // saved is not excluded
		}, nil
	}
	e := deps.engine(Config{})

	items, err := e.GetUserFeed(context.Background(), "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{5, 6, 7}, contentIDs(items))

	require.Len(t, deps.interactions.ListInteractionsCalls(), 1)
	assert.ElementsMatch(t, []domain.InteractionType{domain.InteractionDismissed, domain.InteractionBlocked,
		domain.InteractionWatched, domain.InteractionNotNow}, deps.interactions.ListInteractionsCalls()[0].Types)
}

func TestEngine_GetUserFeed_Filters(t *testing.T) {
	blocked := candidate(1, 10, time.Hour)
	blocked.Title = "Crypto news today"
	safe := candidate(2, 20, 2*time.Hour)
	safe.Title = "Crypto weekly"
	safe.AlwaysSafe = true
	wildcard := candidate(3, 30, 3*time.Hour)
	wildcard.Description = "all about SPOILERS inside"
	atMin := candidate(4, 40, 4*time.Hour)
	atMin.Duration = int64p(60)
	belowMin := candidate(5, 40, 5*time.Hour)
	belowMin.Duration = int64p(59)
	atMax := candidate(6, 50, 6*time.Hour)
	atMax.Duration = int64p(600)
	aboveMax := candidate(7, 50, 7*time.Hour)
	aboveMax.Duration = int64p(601)
	safeTooLong := candidate(8, 20, 8*time.Hour)
	safeTooLong.AlwaysSafe = true
	safeTooLong.Duration = int64p(1000)
	unknown := candidate(9, 60, 9*time.Hour)

	prefs := domain.DefaultPreferences("u1")
	prefs.MinDuration, prefs.MaxDuration = int64p(60), int64p(600)
	prefs.DiversityLimit = 10
	deps := newEngineDeps([]domain.Candidate{blocked, safe, wildcard, atMin, belowMin, atMax, aboveMax, safeTooLong, unknown}, prefs)
	deps.keywords.ListKeywordsFunc = func(ctx context.Context, userID string) ([]domain.FilterKeyword, error) {
		return []domain.FilterKeyword{{Keyword: "crypto"}, {Keyword: "spoiler", IsWildcard: true}}, nil
	}
	e := deps.engine(Config{})

	items, err := e.GetUserFeed(context.Background(), "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 4, 6, 9}, contentIDs(items))
}

func TestEngine_GetUserFeed_BacklogMix(t *testing.T) {
	recentOnly := func(n int, startID int64) []domain.Candidate {
		res := make([]domain.Candidate, n)
		for i := range res {
			res[i] = candidate(startID+int64(i), startID+int64(i), time.Duration(i+1)*time.Hour)
		}
		return res
	}
	old := func(n int, startID int64) []domain.Candidate {
		res := make([]domain.Candidate, n)
		for i := range res {
			res[i] = candidate(startID+int64(i), startID+int64(i), 10*24*time.Hour+time.Duration(i)*time.Hour)
		}
		return res
	}

	tests := []struct {
		name        string
		recent      int
		backlog     int
		ratio       float64
		limit       int
		wantRecent  int
		wantBacklog int
	}{
		{name: "ratio split", recent: 20, backlog: 20, ratio: 0.3, limit: 10, wantRecent: 7, wantBacklog: 3},
		{name: "rounding", recent: 20, backlog: 20, ratio: 0.25, limit: 10, wantRecent: 7, wantBacklog: 3},
		{name: "no backlog wanted", recent: 20, backlog: 20, ratio: 0, limit: 10, wantRecent: 10, wantBacklog: 0},
		{name: "all backlog", recent: 20, backlog: 20, ratio: 1, limit: 10, wantRecent: 0, wantBacklog: 10},
		{name: "recent short filled from backlog", recent: 2, backlog: 20, ratio: 0.2, limit: 10, wantRecent: 2, wantBacklog: 8},
		{name: "backlog short filled from recent", recent: 20, backlog: 1, ratio: 0.5, limit: 10, wantRecent: 9, wantBacklog: 1},
		{name: "both short", recent: 3, backlog: 2, ratio: 0.5, limit: 10, wantRecent: 3, wantBacklog: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := append(recentOnly(tt.recent, 1), old(tt.backlog, 1000)...)
			prefs := domain.DefaultPreferences("u1")
			prefs.BacklogRatio = tt.ratio
			deps := newEngineDeps(candidates, prefs)
			e := deps.engine(Config{Limit: tt.limit})

			items, err := e.GetUserFeed(context.Background(), "u1")
			require.NoError(t, err)
			var gotRecent, gotBacklog int
			for _, it := range items {
				if it.Backlog {
					gotBacklog++
					continue
				}
				gotRecent++
			}
			assert.Equal(t, tt.wantRecent, gotRecent)
			assert.Equal(t, tt.wantBacklog, gotBacklog)
		})
	}
}

func TestEngine_GetUserFeed_CacheHit(t *testing.T) {
	cached := []domain.FeedItem{{ContentID: 42, Title: "cached"}}
	deps := newEngineDeps(nil, domain.DefaultPreferences("u1"))
	deps.cache.GetFunc = func(key string) ([]domain.FeedItem, bool) { return cached, key == "feed:u1" }
	e := deps.engine(Config{})

	items, err := e.GetUserFeed(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, cached, items)
	assert.Empty(t, deps.candidates.ListCandidatesCalls())
	assert.Empty(t, deps.prefs.GetPreferencesCalls())
	assert.Empty(t, deps.cache.SetCalls())
}

func TestEngine_GetUserFeed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(d *engineDeps)
		wantErr string
	}{
		{name: "preferences", wantErr: "get preferences", setup: func(d *engineDeps) {
			d.prefs.GetPreferencesFunc = func(ctx context.Context, userID string) (domain.UserPreferences, error) {
				return domain.UserPreferences{}, errors.New("db error")
			}
		}},
		{name: "keywords", wantErr: "list keywords", setup: func(d *engineDeps) {
			d.keywords.ListKeywordsFunc = func(ctx context.Context, userID string) ([]domain.FilterKeyword, error) {
				return nil, errors.New("db error")
			}
		}},
		{name: "interactions", wantErr: "list interactions", setup: func(d *engineDeps) {
			d.interactions.ListInteractionsFunc = func(ctx context.Context, userID string, types ...domain.InteractionType) ([]domain.Interaction, error) {
				return nil, errors.New("db error")
			}
		}},
		{name: "candidates", wantErr: "list candidates", setup: func(d *engineDeps) {
			d.candidates.ListCandidatesFunc = func(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
				return nil, errors.New("db error")
			}
		}},
		{name: "backlog candidates", wantErr: "list backlog candidates", setup: func(d *engineDeps) {
			d.candidates.ListCandidatesFunc = func(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
				if q.PublishedBefore.IsZero() {
					return nil, nil
				}
				return nil, errors.New("db error")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newEngineDeps(nil, domain.DefaultPreferences("u1"))
			tt.setup(deps)
			e := deps.engine(Config{})
			_, err := e.GetUserFeed(context.Background(), "u1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "db error")
			assert.Empty(t, deps.cache.SetCalls(), "failed computation is not cached")
		})
	}
}

func TestEngine_GetUserFeed_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	deps := newEngineDeps(nil, domain.DefaultPreferences("u1"))
	deps.candidates.ListCandidatesFunc = func(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
		if !q.PublishedBefore.IsZero() {
			return nil, nil
		}
		atomic.AddInt32(&calls, 1)
		<-release
		return []domain.Candidate{candidate(1, 10, time.Hour)}, nil
	}
	e := deps.engine(Config{})

	const n = 10
	results := make([][]domain.FeedItem, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := e.GetUserFeed(context.Background(), "u1")
			assert.NoError(t, err)
			results[i] = items
		}()
	}
	time.Sleep(100 * time.Millisecond) // let all callers join the in-flight computation
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, []int64{1}, contentIDs(r))
	}
}

func TestEngine_GetUserFeed_CallerCancelDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var computeCtxErr atomic.Value
	deps := newEngineDeps(nil, domain.DefaultPreferences("u1"))
	deps.candidates.ListCandidatesFunc = func(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
		if !q.PublishedBefore.IsZero() {
			return nil, nil
		}
		close(started)
		<-release
		computeCtxErr.Store(fmt.Sprint(ctx.Err()))
		return []domain.Candidate{candidate(1, 10, time.Hour)}, nil
	}
	e := deps.engine(Config{})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := e.GetUserFeed(firstCtx, "u1")
		firstErr <- err
	}()
	<-started

	secondRes := make(chan []domain.FeedItem, 1)
	go func() {
		items, err := e.GetUserFeed(context.Background(), "u1")
		assert.NoError(t, err)
		secondRes <- items
	}()
	time.Sleep(50 * time.Millisecond) // let the second caller join the in-flight computation

	cancelFirst()
	err := <-firstErr
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	assert.Equal(t, []int64{1}, contentIDs(<-secondRes))
	assert.Equal(t, "<nil>", computeCtxErr.Load(), "computation is not canceled with the first caller")
	require.Len(t, deps.cache.SetCalls(), 1)
}

func TestEngine_RefreshFeed(t *testing.T) {
	deps := newEngineDeps(nil, domain.DefaultPreferences("u1"))
	e := deps.engine(Config{})
	e.RefreshFeed("u1")
	require.Len(t, deps.cache.DeleteCalls(), 1)
	assert.Equal(t, "feed:u1", deps.cache.DeleteCalls()[0].Key)
}

func TestSelectMix(t *testing.T) {
	recent := []domain.Candidate{candidate(1, 1, time.Hour), candidate(2, 1, 2*time.Hour)}
	backlog := []domain.Candidate{candidate(3, 1, 300*time.Hour), candidate(4, 1, 400*time.Hour)}

	res := selectMix(recent, backlog, 3, 0.5)
	ids := make([]int64, len(res))
	for i, c := range res {
		ids[i] = c.ID
	}
	// round(1.5) = 2 backlog, 1 recent
	assert.Equal(t, []int64{1, 3, 4}, ids)

	assert.Empty(t, selectMix(nil, nil, 10, 0.2))
	assert.Len(t, selectMix(recent, backlog, 0, 0.2), 0)
}

func TestCapPerSource(t *testing.T) {
	items := []domain.Candidate{
		candidate(1, 1, 5*time.Hour), candidate(2, 1, time.Hour), candidate(3, 1, 3*time.Hour),
		candidate(4, 2, 2*time.Hour),
	}
	res := capPerSource(items, 2)
	ids := make([]int64, len(res))
	for i, c := range res {
		ids[i] = c.ID
	}
	assert.Equal(t, []int64{2, 4, 3}, ids, "oldest item of source 1 dropped")

	assert.Len(t, capPerSource(items, 0), 4, "non-positive limit falls back to default")
}

func TestInterleave(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.Candidate
		want  []int64
	}{
		{name: "empty", items: nil, want: []int64{}},
		{name: "single source keeps order",
			items: []domain.Candidate{candidate(1, 1, time.Hour), candidate(2, 1, 2*time.Hour)},
			want:  []int64{1, 2}},
		{name: "breaks runs of one source",
			items: []domain.Candidate{candidate(1, 1, time.Hour), candidate(2, 1, 2*time.Hour),
				candidate(3, 1, 3*time.Hour), candidate(4, 2, 4*time.Hour), candidate(5, 2, 5*time.Hour)},
			want: []int64{1, 4, 2, 5, 3}},
		{name: "newest head wins among other sources",
			items: []domain.Candidate{candidate(1, 1, time.Hour), candidate(2, 2, 2*time.Hour),
				candidate(3, 3, 3*time.Hour), candidate(4, 1, 4*time.Hour)},
			want: []int64{1, 2, 3, 4}},
		{name: "tie broken by id",
			items: []domain.Candidate{candidate(7, 1, time.Hour), candidate(9, 2, time.Hour)},
			want:  []int64{9, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := append([]domain.Candidate(nil), tt.items...)
			sortNewest(sorted)
			res := interleave(sorted)
			ids := make([]int64, len(res))
			for i, c := range res {
				ids[i] = c.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

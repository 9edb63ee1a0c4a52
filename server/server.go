package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedmix/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/service.go -pkg mocks -skip-ensure -fmt goimports . Service
//go:generate moq -out mocks/feed.go -pkg mocks -skip-ensure -fmt goimports . FeedProvider
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . FeedRenderer
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

const (
	userHeader = "X-User-ID"
	cronHeader = "X-Cron-Secret"
)

type ctxKey string

const userKey ctxKey = "user"

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	svc       Service
	feed      FeedProvider
	renderer  FeedRenderer
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds server dependencies
type Params struct {
	Config    ConfigProvider
	Service   Service
	Feed      FeedProvider
	Renderer  FeedRenderer
	Scheduler Scheduler
	Version   string
	Debug     bool
}

// Service is the set of user facing operations served over the api
type Service interface {
	AddSource(ctx context.Context, userID string, p domain.ProviderType, rawID string) (*domain.Source, error)
	GetSource(ctx context.Context, userID string, id int64) (*domain.Source, error)
	ListSources(ctx context.Context, userID string) ([]*domain.Source, error)
	UpdateSource(ctx context.Context, userID string, id int64, upd domain.SourceUpdate) (*domain.Source, error)
	DeleteSource(ctx context.Context, userID string, id int64) error
	SourceMetadata(ctx context.Context, userID string, id int64) (domain.SourceMetadata, error)
	FetchSource(ctx context.Context, userID string, id int64, forceBacklog bool) (int, error)
	FetchUserSources(ctx context.Context, userID string) (domain.BatchStats, error)

	RecordInteraction(ctx context.Context, userID string, contentID int64, typ domain.InteractionType, details domain.WatchDetails) (*domain.Interaction, error)
	ClearHistory(ctx context.Context, userID string, all bool) (int64, error)
	Saved(ctx context.Context, userID string, limit int) ([]domain.InteractionRecord, error)
	History(ctx context.Context, userID string, limit int) ([]domain.InteractionRecord, error)

	AddKeyword(ctx context.Context, userID, raw string, wildcard bool) (*domain.FilterKeyword, error)
	ListKeywords(ctx context.Context, userID string) ([]domain.FilterKeyword, error)
	DeleteKeyword(ctx context.Context, userID string, id int64) error

	GetPreferences(ctx context.Context, userID string) (domain.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, prefs domain.UserPreferences) (domain.UserPreferences, error)

	CreateCollection(ctx context.Context, userID, name string) (*domain.Collection, error)
	ListCollections(ctx context.Context, userID string) ([]domain.Collection, error)
	AddToCollection(ctx context.Context, userID string, collectionID, contentID int64) error
	CollectionItems(ctx context.Context, userID string, collectionID int64) ([]domain.ContentItem, error)
}

// FeedProvider builds and invalidates personal feeds
type FeedProvider interface {
	GetUserFeed(ctx context.Context, userID string) ([]domain.FeedItem, error)
	RefreshFeed(userID string)
}

// FeedRenderer renders a feed as RSS document
type FeedRenderer interface {
	GenerateRSS(userID string, items []domain.FeedItem) (string, error)
}

// Scheduler runs an on-demand ingestion of all sources
type Scheduler interface {
	UpdateNow(ctx context.Context) (domain.BatchStats, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetCronSecret() string
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		svc:       p.Service,
		feed:      p.Feed,
		renderer:  p.Renderer,
		scheduler: p.Scheduler,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedmix", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /cron/fetch", s.cronFetchHandler)

		r.Group().Route(func(u *routegroup.Bundle) {
			u.Use(s.userMiddleware)

			u.HandleFunc("GET /feed", s.getFeedHandler)
			u.HandleFunc("GET /feed/rss", s.getFeedRSSHandler)
			u.HandleFunc("POST /feed/refresh", s.refreshFeedHandler)

			u.HandleFunc("GET /sources", s.listSourcesHandler)
			u.HandleFunc("POST /sources", s.addSourceHandler)
			u.HandleFunc("POST /sources/fetch", s.fetchUserSourcesHandler)
			u.HandleFunc("GET /sources/{id}", s.getSourceHandler)
			u.HandleFunc("PATCH /sources/{id}", s.updateSourceHandler)
			u.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
			u.HandleFunc("GET /sources/{id}/metadata", s.sourceMetadataHandler)
			u.HandleFunc("POST /sources/{id}/fetch", s.fetchSourceHandler)

			u.HandleFunc("POST /content/{id}/{type}", s.recordInteractionHandler)
			u.HandleFunc("GET /saved", s.savedHandler)
			u.HandleFunc("GET /history", s.historyHandler)
			u.HandleFunc("DELETE /history", s.clearHistoryHandler)

			u.HandleFunc("GET /keywords", s.listKeywordsHandler)
			u.HandleFunc("POST /keywords", s.addKeywordHandler)
			u.HandleFunc("DELETE /keywords/{id}", s.deleteKeywordHandler)

			u.HandleFunc("GET /preferences", s.getPreferencesHandler)
			u.HandleFunc("PUT /preferences", s.updatePreferencesHandler)

			u.HandleFunc("GET /collections", s.listCollectionsHandler)
			u.HandleFunc("POST /collections", s.createCollectionHandler)
			u.HandleFunc("GET /collections/{id}/items", s.collectionItemsHandler)
			u.HandleFunc("POST /collections/{id}/items", s.addCollectionItemHandler)
		})
	})
}

// userMiddleware takes the authenticated user from the header set by the upstream auth proxy
func (s *Server) userMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userHeader)
		if userID == "" {
			renderError(w, r, errors.New("missing user"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, userID)))
	})
}

func userFrom(r *http.Request) string {
	userID, _ := r.Context().Value(userKey).(string)
	return userID
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// cronFetchHandler triggers ingestion of all sources, guarded by the shared cron secret.
// An empty configured secret disables the endpoint.
func (s *Server) cronFetchHandler(w http.ResponseWriter, r *http.Request) {
	secret := s.config.GetCronSecret()
	if secret == "" {
		renderError(w, r, errors.New("cron endpoint disabled"), http.StatusForbidden)
		return
	}
	if subtle.ConstantTimeCompare([]byte(r.Header.Get(cronHeader)), []byte(secret)) != 1 {
		renderError(w, r, errors.New("invalid cron secret"), http.StatusUnauthorized)
		return
	}
	stats, err := s.scheduler.UpdateNow(r.Context())
	if err != nil {
		lgr.Printf("[WARN] cron fetch failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// renderJSON sends data as JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderServiceError maps domain errors to status codes, unexpected errors are logged and hidden
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		renderJSON(w, r, http.StatusBadRequest, map[string]string{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, domain.ErrUnsupportedProvider):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrRateLimited):
		renderError(w, r, err, http.StatusTooManyRequests)
	default:
		lgr.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New("internal error"), http.StatusInternalServerError)
	}
}

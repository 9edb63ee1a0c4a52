package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/umputun/feedmix/pkg/domain"
)

// getFeedHandler returns the user's ranked feed
func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.feed.GetUserFeed(r.Context(), userFrom(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.FeedItem{}
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// getFeedRSSHandler returns the user's feed as RSS document
func (s *Server) getFeedRSSHandler(w http.ResponseWriter, r *http.Request) {
	userID := userFrom(r)
	items, err := s.feed.GetUserFeed(r.Context(), userID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	doc, err := s.renderer.GenerateRSS(userID, items)
	if err != nil {
		renderServiceError(w, r, fmt.Errorf("generate rss: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// refreshFeedHandler drops the cached feed so the next read recomputes it
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.feed.RefreshFeed(userFrom(r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.svc.ListSources(r.Context(), userFrom(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if sources == nil {
		sources = []*domain.Source{}
	}
	renderJSON(w, r, http.StatusOK, sources)
}

type addSourceRequest struct {
	ProviderType string `json:"provider_type"`
	ExternalID   string `json:"external_id"`
}

// addSourceHandler subscribes the user to a source, the initial fetch runs in background
func (s *Server) addSourceHandler(w http.ResponseWriter, r *http.Request) {
	var req addSourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := domain.ParseProviderType(req.ProviderType)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	src, err := s.svc.AddSource(r.Context(), userFrom(r), p, req.ExternalID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, src)
}

func (s *Server) getSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	src, err := s.svc.GetSource(r.Context(), userFrom(r), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, src)
}

func (s *Server) updateSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd domain.SourceUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	src, err := s.svc.UpdateSource(r.Context(), userFrom(r), id, upd)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, src)
}

func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteSource(r.Context(), userFrom(r), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sourceMetadataHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	meta, err := s.svc.SourceMetadata(r.Context(), userFrom(r), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, meta)
}

// fetchSourceHandler ingests one source now, ?backlog=true forces the backlog walk
func (s *Server) fetchSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	backlog, _ := strconv.ParseBool(r.URL.Query().Get("backlog"))
	n, err := s.svc.FetchSource(r.Context(), userFrom(r), id, backlog)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"new_items": n})
}

func (s *Server) fetchUserSourcesHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.FetchUserSources(r.Context(), userFrom(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// recordInteractionHandler stores watched, saved, dismissed, not-now or blocked action on content
func (s *Server) recordInteractionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	typ, err := domain.ParseInteractionType(r.PathValue("type"))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	var details domain.WatchDetails
	if r.ContentLength != 0 && !decodeJSON(w, r, &details) {
		return
	}
	in, err := s.svc.RecordInteraction(r.Context(), userFrom(r), id, typ, details)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, in)
}

func (s *Server) savedHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	records, err := s.svc.Saved(r.Context(), userFrom(r), limit)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderRecords(w, r, records)
}

func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	records, err := s.svc.History(r.Context(), userFrom(r), limit)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderRecords(w, r, records)
}

// clearHistoryHandler removes watch history, ?all=true clears every interaction type
func (s *Server) clearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
	n, err := s.svc.ClearHistory(r.Context(), userFrom(r), all)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) listKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	keywords, err := s.svc.ListKeywords(r.Context(), userFrom(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if keywords == nil {
		keywords = []domain.FilterKeyword{}
	}
	renderJSON(w, r, http.StatusOK, keywords)
}

type addKeywordRequest struct {
	Keyword    string `json:"keyword"`
	IsWildcard bool   `json:"is_wildcard"`
}

func (s *Server) addKeywordHandler(w http.ResponseWriter, r *http.Request) {
	var req addKeywordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	kw, err := s.svc.AddKeyword(r.Context(), userFrom(r), req.Keyword, req.IsWildcard)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, kw)
}

func (s *Server) deleteKeywordHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteKeyword(r.Context(), userFrom(r), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.svc.GetPreferences(r.Context(), userFrom(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, prefs)
}

func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var prefs domain.UserPreferences
	if !decodeJSON(w, r, &prefs) {
		return
	}
	res, err := s.svc.UpdatePreferences(r.Context(), userFrom(r), prefs)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) listCollectionsHandler(w http.ResponseWriter, r *http.Request) {
	cols, err := s.svc.ListCollections(r.Context(), userFrom(r))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if cols == nil {
		cols = []domain.Collection{}
	}
	renderJSON(w, r, http.StatusOK, cols)
}

func (s *Server) createCollectionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	col, err := s.svc.CreateCollection(r.Context(), userFrom(r), req.Name)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, col)
}

func (s *Server) collectionItemsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := s.svc.CollectionItems(r.Context(), userFrom(r), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.ContentItem{}
	}
	renderJSON(w, r, http.StatusOK, items)
}

// addCollectionItemHandler puts saved content into a collection
func (s *Server) addCollectionItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		ContentID int64 `json:"content_id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.svc.AddToCollection(r.Context(), userFrom(r), id, req.ContentID); err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func renderRecords(w http.ResponseWriter, r *http.Request, records []domain.InteractionRecord) {
	if records == nil {
		records = []domain.InteractionRecord{}
	}
	renderJSON(w, r, http.StatusOK, records)
}

// pathID parses {id} path value, renders 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(w, r, errors.New("invalid id"), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryLimit parses optional ?limit, zero means the service default
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
		return 0, false
	}
	return limit, true
}

// decodeJSON reads request body into dest, renders 400 on malformed input
func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return false
	}
	return true
}

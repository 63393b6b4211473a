package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/warroom/internal/session"
	"github.com/wonny/warroom/pkg/logger"
	"github.com/wonny/warroom/pkg/redis"
)

// SessionHandler serves persisted debate sessions
// ⭐ SSOT: 세션 조회 API는 이 구조체에서만
type SessionHandler struct {
	repo   *session.Repository
	cache  *redis.Cache
	logger *logger.Logger
}

// NewSessionHandler creates a new session handler. repo and cache may be
// nil; without a repository every endpoint answers 503.
func NewSessionHandler(repo *session.Repository, cache *redis.Cache, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

// List returns the most recent sessions for a ticker
// GET /api/war-room/sessions?ticker=AAPL&limit=20
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "Session persistence is not configured")
		return
	}

	ctx := r.Context()

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker query parameter is required")
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 || parsed > 100 {
			respondError(w, http.StatusBadRequest, "limit must be an integer in [1,100]")
			return
		}
		limit = parsed
	}

	var sessions []session.Session
	if h.cache != nil && limit == 20 {
		// Only the default page is cached
		found, err := h.cache.Get(ctx, redis.SessionListKey(ticker), &sessions)
		if err == nil && found {
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"ticker":   ticker,
				"sessions": sessions,
				"cached":   true,
			})
			return
		}
	}

	sessions, err := h.repo.ListByTicker(ctx, ticker, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list sessions")
		respondError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	if h.cache != nil && limit == 20 {
		if err := h.cache.Set(ctx, redis.SessionListKey(ticker), sessions, redis.TTLMedium); err != nil {
			h.logger.WithError(err).Warn("Failed to cache session list")
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":   ticker,
		"sessions": sessions,
	})
}

// Get returns one session with its full vote detail
// GET /api/war-room/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "Session persistence is not configured")
		return
	}

	ctx := r.Context()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid session id")
		return
	}

	s, err := h.repo.GetByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get session")
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	respondJSON(w, http.StatusOK, s)
}

// Stats returns aggregate consensus statistics for a ticker
// GET /api/war-room/stats?ticker=AAPL&days=30
func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "Session persistence is not configured")
		return
	}

	ctx := r.Context()

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker query parameter is required")
		return
	}

	days := 30
	if d := r.URL.Query().Get("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 || parsed > 365 {
			respondError(w, http.StatusBadRequest, "days must be an integer in [1,365]")
			return
		}
		days = parsed
	}

	since := time.Now().AddDate(0, 0, -days)
	stats, err := h.repo.GetActionStats(ctx, ticker, since)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get action stats")
		respondError(w, http.StatusInternalServerError, "Failed to get action stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

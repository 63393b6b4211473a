package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/engine"
	"github.com/wonny/warroom/internal/execution"
	"github.com/wonny/warroom/internal/session"
	"github.com/wonny/warroom/pkg/logger"
	"github.com/wonny/warroom/pkg/redis"
)

// DebateHandler runs war-room debates over the API
// ⭐ SSOT: 토론 API 핸들러는 이 구조체에서만
type DebateHandler struct {
	engine  *engine.Engine
	gate    *execution.Gate
	repo    *session.Repository
	cache   *redis.Cache
	limiter *redis.RateLimiter
	stream  *StreamHandler
	logger  *logger.Logger
}

// NewDebateHandler creates a new debate handler. repo, cache, limiter
// and stream may be nil; the corresponding features are skipped.
func NewDebateHandler(
	eng *engine.Engine,
	gate *execution.Gate,
	repo *session.Repository,
	cache *redis.Cache,
	limiter *redis.RateLimiter,
	stream *StreamHandler,
	log *logger.Logger,
) *DebateHandler {
	return &DebateHandler{
		engine:  eng,
		gate:    gate,
		repo:    repo,
		cache:   cache,
		limiter: limiter,
		stream:  stream,
		logger:  log,
	}
}

// DebateResponse is the full outcome of one debate request.
type DebateResponse struct {
	Result    *contracts.DebateResult  `json:"result"`
	Gate      *execution.GateDecision  `json:"gate"`
	SessionID int64                    `json:"session_id,omitempty"`
	Cached    bool                     `json:"cached,omitempty"`
}

// Debate runs the full scorer bench over a submitted market snapshot
// POST /api/war-room/debate
func (h *DebateHandler) Debate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var snap contracts.MarketSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if snap.Ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	// Distributed rate limit (shared across instances)
	if h.limiter != nil {
		allowed, remaining, err := h.limiter.Allow(ctx, redis.DebateRateLimit)
		if err != nil {
			h.logger.WithError(err).Warn("Rate limit check failed, allowing request")
		} else if !allowed {
			respondError(w, http.StatusTooManyRequests, "Debate rate limit exceeded")
			return
		} else {
			h.logger.WithFields(map[string]interface{}{
				"remaining": remaining,
			}).Debug("Debate rate limit checked")
		}
	}

	result := h.engine.Debate(&snap)
	gateDecision := h.gate.Check(result, snap.Risk)

	resp := DebateResponse{
		Result: result,
		Gate:   gateDecision,
	}

	if h.repo != nil {
		id, err := h.repo.Save(ctx, result)
		if err != nil {
			// A failed save must not hide the decision from the caller
			h.logger.WithError(err).Error("Failed to save debate session")
		} else {
			resp.SessionID = id
		}
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, redis.ConsensusKey(snap.Ticker), result.Consensus, redis.TTLShort); err != nil {
			h.logger.WithError(err).Warn("Failed to cache consensus")
		}
	}

	if h.stream != nil {
		h.stream.BroadcastDebate(result, gateDecision)
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetConsensus returns the cached consensus for a ticker, if any
// GET /api/war-room/consensus?ticker=AAPL
func (h *DebateHandler) GetConsensus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker query parameter is required")
		return
	}

	if h.cache == nil {
		respondError(w, http.StatusNotFound, "No cached consensus available")
		return
	}

	var consensus contracts.ConsensusResult
	found, err := h.cache.Get(ctx, redis.ConsensusKey(ticker), &consensus)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read consensus cache")
		respondError(w, http.StatusInternalServerError, "Failed to read consensus cache")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "No cached consensus for ticker")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":    ticker,
		"consensus": consensus,
		"cached":    true,
	})
}

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wonny/warroom/internal/contracts"
)

// Session is one persisted debate run.
type Session struct {
	ID         int64                    `json:"id"`
	Ticker     string                   `json:"ticker"`
	Action     contracts.Action         `json:"action"`
	Confidence float64                  `json:"confidence"`
	Consensus  contracts.ConsensusResult `json:"consensus"`
	Votes      []contracts.Vote         `json:"votes"`
	StartedAt  time.Time                `json:"started_at"`
	DurationMS int64                    `json:"duration_ms"`
	CreatedAt  time.Time                `json:"created_at"`
}

// Repository handles debate session persistence
// ⭐ SSOT: 세션 저장/조회는 여기서만
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new session repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save persists a completed debate: one session row plus one row per vote.
// Votes ride in the same transaction so a session is never half-saved.
func (r *Repository) Save(ctx context.Context, result *contracts.DebateResult) (int64, error) {
	consensusJSON, err := json.Marshal(result.Consensus)
	if err != nil {
		return 0, fmt.Errorf("marshal consensus: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO warroom.sessions (
			ticker, action, confidence, consensus, started_at, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var sessionID int64
	err = tx.QueryRow(ctx, query,
		result.Ticker, result.Consensus.Action, result.Consensus.Confidence,
		consensusJSON, result.StartedAt, result.Duration.Milliseconds(),
	).Scan(&sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}

	voteQuery := `
		INSERT INTO warroom.votes (
			session_id, domain, action, confidence, rationale, factors
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, v := range result.Votes {
		factorsJSON, err := json.Marshal(v.Factors)
		if err != nil {
			return 0, fmt.Errorf("marshal factors for %s: %w", v.Domain, err)
		}
		if _, err := tx.Exec(ctx, voteQuery,
			sessionID, v.Domain, v.Action, v.Confidence, v.Rationale, factorsJSON,
		); err != nil {
			return 0, fmt.Errorf("failed to save vote for %s: %w", v.Domain, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return sessionID, nil
}

// GetByID retrieves one session with its votes.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Session, error) {
	query := `
		SELECT id, ticker, action, confidence, consensus, started_at, duration_ms, created_at
		FROM warroom.sessions
		WHERE id = $1
	`

	var s Session
	var consensusJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Ticker, &s.Action, &s.Confidence,
		&consensusJSON, &s.StartedAt, &s.DurationMS, &s.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("session not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(consensusJSON, &s.Consensus); err != nil {
		return nil, fmt.Errorf("unmarshal consensus: %w", err)
	}

	votes, err := r.getVotes(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Votes = votes

	return &s, nil
}

// ListByTicker retrieves the most recent sessions for a ticker,
// newest first, without their vote detail.
func (r *Repository) ListByTicker(ctx context.Context, ticker string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, ticker, action, confidence, consensus, started_at, duration_ms, created_at
		FROM warroom.sessions
		WHERE ticker = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0)

	for rows.Next() {
		var s Session
		var consensusJSON []byte
		err := rows.Scan(
			&s.ID, &s.Ticker, &s.Action, &s.Confidence,
			&consensusJSON, &s.StartedAt, &s.DurationMS, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if err := json.Unmarshal(consensusJSON, &s.Consensus); err != nil {
			return nil, fmt.Errorf("unmarshal consensus: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sessions, nil
}

// getVotes loads the votes of one session in insertion order.
func (r *Repository) getVotes(ctx context.Context, sessionID int64) ([]contracts.Vote, error) {
	query := `
		SELECT domain, action, confidence, rationale, factors
		FROM warroom.votes
		WHERE session_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := make([]contracts.Vote, 0)

	for rows.Next() {
		var v contracts.Vote
		var factorsJSON []byte
		if err := rows.Scan(&v.Domain, &v.Action, &v.Confidence, &v.Rationale, &factorsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if len(factorsJSON) > 0 {
			if err := json.Unmarshal(factorsJSON, &v.Factors); err != nil {
				return nil, fmt.Errorf("unmarshal factors: %w", err)
			}
		}
		votes = append(votes, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return votes, nil
}

// ActionStats summarizes consensus outcomes over a window.
type ActionStats struct {
	Ticker        string  `json:"ticker"`
	TotalSessions int     `json:"total_sessions"`
	BuyCount      int     `json:"buy_count"`
	SellCount     int     `json:"sell_count"`
	HoldCount     int     `json:"hold_count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// GetActionStats aggregates consensus actions for a ticker since a cutoff.
func (r *Repository) GetActionStats(ctx context.Context, ticker string, since time.Time) (*ActionStats, error) {
	query := `
		SELECT
			COUNT(*) as total,
			COUNT(CASE WHEN action = 'BUY' THEN 1 END) as buys,
			COUNT(CASE WHEN action = 'SELL' THEN 1 END) as sells,
			COUNT(CASE WHEN action = 'HOLD' THEN 1 END) as holds,
			COALESCE(AVG(confidence), 0) as avg_confidence
		FROM warroom.sessions
		WHERE ticker = $1
		  AND created_at >= $2
	`

	stats := ActionStats{Ticker: ticker}
	err := r.pool.QueryRow(ctx, query, ticker, since).Scan(
		&stats.TotalSessions, &stats.BuyCount, &stats.SellCount,
		&stats.HoldCount, &stats.AvgConfidence,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get action stats: %w", err)
	}

	return &stats, nil
}

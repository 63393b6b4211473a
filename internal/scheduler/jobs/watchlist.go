package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/engine"
	"github.com/wonny/warroom/internal/execution"
	"github.com/wonny/warroom/internal/session"
	"github.com/wonny/warroom/pkg/logger"
)

// SnapshotProvider supplies the market snapshot a scheduled debate runs on.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, ticker string) (*contracts.MarketSnapshot, error)
}

// NeutralProvider returns a bare snapshot so every scorer falls back to
// its neutral defaults. Used until a live data feed is wired in.
type NeutralProvider struct{}

func (NeutralProvider) Snapshot(_ context.Context, ticker string) (*contracts.MarketSnapshot, error) {
	return &contracts.MarketSnapshot{Ticker: ticker}, nil
}

// WatchlistDebateJob runs the full scorer bench over every watchlist
// ticker and persists the resulting sessions
// ⭐ SSOT: 워치리스트 정기 토론은 이 작업에서만
type WatchlistDebateJob struct {
	engine   *engine.Engine
	gate     *execution.Gate
	repo     *session.Repository
	provider SnapshotProvider
	tickers  []string
	schedule string
	logger   *logger.Logger
}

// NewWatchlistDebateJob creates the scheduled debate job. repo may be
// nil; results are then only logged and broadcast by the caller.
func NewWatchlistDebateJob(
	eng *engine.Engine,
	gate *execution.Gate,
	repo *session.Repository,
	provider SnapshotProvider,
	tickers []string,
	schedule string,
	log *logger.Logger,
) *WatchlistDebateJob {
	if provider == nil {
		provider = NeutralProvider{}
	}
	return &WatchlistDebateJob{
		engine:   eng,
		gate:     gate,
		repo:     repo,
		provider: provider,
		tickers:  tickers,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *WatchlistDebateJob) Name() string {
	return "watchlist_debate"
}

// Schedule returns the cron schedule expression
func (j *WatchlistDebateJob) Schedule() string {
	return j.schedule
}

// Run debates every watchlist ticker. One failing ticker does not stop
// the rest; the job fails only if every ticker failed.
func (j *WatchlistDebateJob) Run(ctx context.Context) error {
	if len(j.tickers) == 0 {
		j.logger.Warn("Watchlist is empty, nothing to debate")
		return nil
	}

	j.logger.WithFields(map[string]interface{}{
		"tickers": len(j.tickers),
	}).Info("Watchlist debate started")

	var failed int
	var lastErr error

	for _, ticker := range j.tickers {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := j.debateOne(ctx, ticker); err != nil {
			failed++
			lastErr = err
			j.logger.WithError(err).WithField("ticker", ticker).Error("Watchlist debate failed for ticker")
		}
	}

	if failed == len(j.tickers) {
		return fmt.Errorf("all %d watchlist debates failed: %w", failed, lastErr)
	}

	j.logger.WithFields(map[string]interface{}{
		"succeeded": len(j.tickers) - failed,
		"failed":    failed,
	}).Info("Watchlist debate completed")

	return nil
}

func (j *WatchlistDebateJob) debateOne(ctx context.Context, ticker string) error {
	snap, err := j.provider.Snapshot(ctx, ticker)
	if err != nil {
		return fmt.Errorf("failed to build snapshot for %s: %w", ticker, err)
	}

	result := j.engine.Debate(snap)
	decision := j.gate.Check(result, snap.Risk)

	j.logger.WithFields(map[string]interface{}{
		"ticker":     ticker,
		"action":     result.Consensus.Action,
		"confidence": result.Consensus.Confidence,
		"gate_pass":  decision.Passed,
	}).Info("Scheduled debate finished")

	if j.repo != nil {
		if _, err := j.repo.Save(ctx, result); err != nil {
			return fmt.Errorf("failed to save session for %s: %w", ticker, err)
		}
	}

	return nil
}

package engine

import (
	"sync"
	"time"

	"github.com/wonny/warroom/internal/consensus"
	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/scorers"
	"github.com/wonny/warroom/pkg/config"
	"github.com/wonny/warroom/pkg/logger"
)

// Engine runs a full war-room debate: every domain scorer votes
// concurrently, then the arbiter folds the votes into one decision.
// ⭐ SSOT: 토론 오케스트레이션은 이 패키지에서만
type Engine struct {
	scorers []scorers.Scorer
	arbiter *consensus.Arbiter
	logger  *logger.Logger
}

// WeightsFromConfig builds the arbitration weight table from config.
func WeightsFromConfig(cc config.ConsensusConfig) contracts.WeightTable {
	return contracts.WeightTable{
		contracts.DomainTechnical:   cc.WeightTechnical,
		contracts.DomainFundamental: cc.WeightFundamental,
		contracts.DomainMacro:       cc.WeightMacro,
		contracts.DomainRisk:        cc.WeightRisk,
		contracts.DomainSentiment:   cc.WeightSentiment,
		contracts.DomainNews:        cc.WeightNews,
		contracts.DomainSector:      cc.WeightSector,
	}
}

// New creates an engine with the full scorer bench.
func New(cfg *config.Config, log *logger.Logger) *Engine {
	l := log.WithField("module", "engine")
	return NewWithScorers(
		[]scorers.Scorer{
			scorers.NewTechnicalScorer(l),
			scorers.NewFundamentalScorer(l),
			scorers.NewMacroScorer(l),
			scorers.NewRiskScorer(l),
			scorers.NewSentimentScorer(l),
			scorers.NewNewsScorer(l),
			scorers.NewSectorScorer(l),
		},
		consensus.NewArbiter(WeightsFromConfig(cfg.Consensus), l),
		l,
	)
}

// NewWithScorers creates an engine over an explicit scorer bench.
func NewWithScorers(bench []scorers.Scorer, arbiter *consensus.Arbiter, log *logger.Logger) *Engine {
	return &Engine{scorers: bench, arbiter: arbiter, logger: log}
}

// Debate scores the snapshot across every domain concurrently and
// arbitrates the votes. Votes come back in bench order regardless of
// which scorer finishes first, so two runs over the same snapshot are
// byte-identical. Always one vote per domain: a scorer that panics past
// its own recovery still contributes a neutral HOLD.
func (e *Engine) Debate(snap *contracts.MarketSnapshot) *contracts.DebateResult {
	started := time.Now()

	votes := make([]contracts.Vote, len(e.scorers))
	var wg sync.WaitGroup
	for i, s := range e.scorers {
		wg.Add(1)
		go func(i int, s scorers.Scorer) {
			defer wg.Done()
			defer func() {
				// Last line of defense for scorers outside the standard
				// cascade harness.
				if r := recover(); r != nil {
					if e.logger != nil {
						e.logger.WithFields(map[string]interface{}{
							"domain": s.Domain(),
							"panic":  r,
						}).Warn("Scorer escaped its own recovery")
					}
					votes[i] = scorers.FallbackVote(s.Domain(), 0.5)
				}
			}()
			votes[i] = s.Score(snap)
		}(i, s)
	}
	wg.Wait()

	result := e.arbiter.Arbitrate(votes)

	if e.logger != nil {
		e.logger.WithFields(map[string]interface{}{
			"ticker":     snap.Ticker,
			"action":     result.Action,
			"confidence": result.Confidence,
			"votes":      len(votes),
			"duration":   time.Since(started).String(),
		}).Info("Debate completed")
	}

	return &contracts.DebateResult{
		Ticker:    snap.Ticker,
		Votes:     votes,
		Consensus: result,
		StartedAt: started,
		Duration:  time.Since(started),
	}
}

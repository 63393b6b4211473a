package consensus

import (
	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/pkg/logger"
)

// canonicalOrder is the fixed tie-break precedence. When weighted scores
// tie exactly, the earlier action wins: 기회비용 > 손실회피 > 관망.
var canonicalOrder = []contracts.Action{
	contracts.ActionBuy,
	contracts.ActionSell,
	contracts.ActionHold,
}

// Arbiter folds domain votes into a single weighted consensus.
// Stateless after construction; safe for concurrent Arbitrate calls.
type Arbiter struct {
	weights contracts.WeightTable
	logger  *logger.Logger
}

// NewArbiter creates an arbiter over the given weight table.
// Domains missing from the table get contracts.DefaultDomainWeight.
func NewArbiter(weights contracts.WeightTable, log *logger.Logger) *Arbiter {
	return &Arbiter{weights: weights, logger: log}
}

// Arbitrate computes the weighted consensus over the votes.
//
// Each vote contributes weight(domain) * confidence to its remapped
// action's score. The highest score wins; exact ties break by the fixed
// BUY > SELL > HOLD precedence so results are reproducible regardless of
// vote order. Confidence is the winner's share of the total score.
// No votes (or an all-zero tally) yields HOLD at 0.5.
func (a *Arbiter) Arbitrate(votes []contracts.Vote) contracts.ConsensusResult {
	scores := map[contracts.Action]float64{
		contracts.ActionBuy:  0,
		contracts.ActionSell: 0,
		contracts.ActionHold: 0,
	}

	for _, v := range votes {
		action := Remap(v.Action)
		scores[action] += a.weights.Weight(v.Domain) * v.Confidence
	}

	total := scores[contracts.ActionBuy] + scores[contracts.ActionSell] + scores[contracts.ActionHold]
	if total <= 0 {
		return contracts.ConsensusResult{
			Action:         contracts.ActionHold,
			Confidence:     0.5,
			ScoreBreakdown: scores,
		}
	}

	winner := contracts.ActionHold
	best := -1.0
	for _, action := range canonicalOrder {
		if scores[action] > best {
			winner = action
			best = scores[action]
		}
	}

	result := contracts.ConsensusResult{
		Action:         winner,
		Confidence:     best / total,
		ScoreBreakdown: scores,
	}

	if a.logger != nil {
		a.logger.WithFields(map[string]interface{}{
			"action":     result.Action,
			"confidence": result.Confidence,
			"buy":        scores[contracts.ActionBuy],
			"sell":       scores[contracts.ActionSell],
			"hold":       scores[contracts.ActionHold],
			"votes":      len(votes),
		}).Debug("Consensus arbitrated")
	}

	return result
}

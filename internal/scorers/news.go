package scorers

import (
	"fmt"
	"math"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// News coverage trends reported by upstream collectors.
const (
	NewsTrendImproving     = "improving"
	NewsTrendDeteriorating = "deteriorating"
)

// NewsScorer votes on headline flow: aggregate sentiment, coverage trend,
// emergency flags and keyword-scanned legal/regulatory risk.
// 규제 리스크 CRITICAL은 무조건 SELL.
type NewsScorer struct {
	logger *logger.Logger
}

// NewNewsScorer creates a news scorer.
func NewNewsScorer(log *logger.Logger) *NewsScorer {
	return &NewsScorer{logger: log}
}

// Domain implements Scorer.
func (s *NewsScorer) Domain() contracts.DomainID {
	return contracts.DomainNews
}

const newsFallbackConfidence = 0.50

// Score implements Scorer.
func (s *NewsScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainNews, newsFallbackConfidence, func() contracts.Vote {
		m := snap.News

		sentiment := contracts.FloatOr(m.Sentiment, 0)
		reg := metrics.RegulatoryRisk(m.Headlines)

		trendBoost := 0.0
		switch m.Trend {
		case NewsTrendImproving:
			trendBoost = 0.1
		case NewsTrendDeteriorating:
			trendBoost = -0.1
		}

		severityPenalty := 0.0
		switch reg.Severity {
		case metrics.RegSeverityHigh:
			severityPenalty = -0.3
		case metrics.RegSeverityModerate:
			severityPenalty = -0.2
		case metrics.RegSeverityLow:
			severityPenalty = -0.1
		}

		adjusted := sentiment + trendBoost + severityPenalty

		confidence := math.Abs(adjusted)
		if m.HasEmergency {
			confidence += 0.2
		}
		if confidence > 0.95 {
			confidence = 0.95
		}

		rules := []rule{
			{
				name: "regulatory_critical",
				when: func(*cascadeState) bool { return reg.Severity == metrics.RegSeverityCritical },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.90,
						fmt.Sprintf("critical legal/regulatory exposure (%d matched headlines)", reg.Total))
				},
			},
			{
				name: "no_coverage",
				when: func(*cascadeState) bool { return len(m.Headlines) == 0 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.50, "no recent coverage to act on")
				},
			},
			{
				name: "bullish_flow",
				when: func(*cascadeState) bool { return adjusted > 0.6 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, confidence,
						fmt.Sprintf("positive news flow (adjusted %.2f)", adjusted))
				},
			},
			{
				name: "bearish_flow",
				when: func(*cascadeState) bool { return adjusted < -0.6 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, confidence,
						fmt.Sprintf("negative news flow (adjusted %.2f)", adjusted))
				},
			},
			{
				name: "mixed_flow",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.50+math.Abs(adjusted)*0.3,
						"news flow not decisive either way")
				},
			},
		}

		st := runCascade(rules, 0.40, 0.95)

		return st.vote(contracts.DomainNews, map[string]interface{}{
			"headline_count": len(m.Headlines),
			"sentiment":      sentiment,
			"trend":          m.Trend,
			"adjusted_score": adjusted,
			"has_emergency":  m.HasEmergency,
			"regulatory":     reg,
		})
	})
}

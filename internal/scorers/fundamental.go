package scorers

import (
	"fmt"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// FundamentalScorer votes on valuation and business quality: PEG,
// growth/margin/leverage thresholds and sector peer standing.
type FundamentalScorer struct {
	logger *logger.Logger
}

// NewFundamentalScorer creates a fundamental scorer.
func NewFundamentalScorer(log *logger.Logger) *FundamentalScorer {
	return &FundamentalScorer{logger: log}
}

// Domain implements Scorer.
func (s *FundamentalScorer) Domain() contracts.DomainID {
	return contracts.DomainFundamental
}

const fundamentalFallbackConfidence = 0.55

// Score implements Scorer.
func (s *FundamentalScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainFundamental, fundamentalFallbackConfidence, func() contracts.Vote {
		m := snap.Fundamental

		pe := contracts.FloatOr(m.PERatio, 20)
		growth := contracts.FloatOr(m.RevenueGrowth, 0.05)
		margin := contracts.FloatOr(m.ProfitMargin, 0.10)
		debtToEquity := contracts.FloatOr(m.DebtToEquity, 0.50)

		peg := metrics.PEGRatio(pe, growth)
		peers := metrics.ComparePeers(pe, growth, margin,
			contracts.FloatOr(m.SectorPE, 20),
			contracts.FloatOr(m.SectorGrowth, 0.05),
			contracts.FloatOr(m.SectorMargin, 0.10),
		)

		rules := []rule{
			{
				name: "peg_deep_value",
				when: func(*cascadeState) bool { return peg.Defined && peg.Value < 0.5 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.90,
						fmt.Sprintf("PEG %.2f, extremely undervalued for its growth", peg.Value))
				},
			},
			{
				name: "quality_growth",
				when: func(*cascadeState) bool { return growth > 0.15 && pe < 25 && margin > 0.20 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.88,
						fmt.Sprintf("%.0f%% growth at %.0fx earnings with %.0f%% margins",
							growth*100, pe, margin*100))
				},
			},
			{
				name: "steady_compounder",
				when: func(*cascadeState) bool { return growth > 0.10 && debtToEquity < 0.40 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.80,
						fmt.Sprintf("double-digit growth with low leverage (D/E %.2f)", debtToEquity))
				},
			},
			{
				name: "deteriorating_business",
				when: func(*cascadeState) bool { return growth < -0.05 || margin < 0.05 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.78, "shrinking revenue or compressed margins")
				},
			},
			{
				name: "expensive_and_slow",
				when: func(*cascadeState) bool { return pe > 40 && growth < 0.10 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.72,
						fmt.Sprintf("%.0fx earnings without the growth to justify it", pe))
				},
			},
			{
				name: "fairly_valued",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.65, "valuation roughly in line with fundamentals")
				},
			},
			{
				name: "peg_support",
				when: func(st *cascadeState) bool {
					return peg.Defined && peg.Value < 1.0 && st.is(contracts.ActionBuy)
				},
				apply: func(st *cascadeState) {
					st.adjust(0.20, "growth-adjusted valuation supportive")
				},
			},
			{
				name: "peg_stretch",
				when: func(*cascadeState) bool { return !peg.Defined || peg.Value > 2.0 },
				apply: func(st *cascadeState) {
					st.adjust(-0.15, "growth-adjusted valuation stretched")
				},
			},
			{
				name: "peer_leader",
				when: func(*cascadeState) bool { return peers.Standing == metrics.PeerLeader },
				apply: func(st *cascadeState) {
					if st.isHold() {
						st.overrideHold(contracts.ActionBuy, 0.75, "best-in-class versus sector peers")
					} else if st.is(contracts.ActionBuy) {
						st.adjust(0.15, "sector leader")
					}
				},
			},
			{
				name: "peer_laggard",
				when: func(*cascadeState) bool { return peers.Standing == metrics.PeerLagging },
				apply: func(st *cascadeState) {
					if st.is(contracts.ActionSell) {
						st.adjust(0.10, "lagging sector peers")
					} else if st.is(contracts.ActionBuy) {
						st.adjust(-0.15, "lagging sector peers")
					}
				},
			},
		}

		st := runCascade(rules, 0.40, 0.95)

		return st.vote(contracts.DomainFundamental, map[string]interface{}{
			"pe_ratio":       pe,
			"revenue_growth": growth,
			"profit_margin":  margin,
			"debt_to_equity": debtToEquity,
			"peg":            peg,
			"peers":          peers,
		})
	})
}

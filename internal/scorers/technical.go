package scorers

import (
	"fmt"
	"math"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// TechnicalScorer votes on price action: moving-average crosses, RSI,
// volume, Bollinger Bands, pivot levels and multi-timeframe alignment.
type TechnicalScorer struct {
	logger *logger.Logger
}

// NewTechnicalScorer creates a technical scorer.
func NewTechnicalScorer(log *logger.Logger) *TechnicalScorer {
	return &TechnicalScorer{logger: log}
}

// Domain implements Scorer.
func (s *TechnicalScorer) Domain() contracts.DomainID {
	return contracts.DomainTechnical
}

// fallback confidence when technical analysis blows up
const technicalFallbackConfidence = 0.50

// Score implements Scorer.
func (s *TechnicalScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainTechnical, technicalFallbackConfidence, func() contracts.Vote {
		m := snap.Technical

		price := m.Price
		rsi := contracts.FloatOr(m.RSI, 50)
		ma20 := contracts.FloatOr(m.MA20, price)
		ma50 := contracts.FloatOr(m.MA50, price)
		volume := contracts.FloatOr(m.VolumeRatio, 1.0)

		goldenCross := ma20 > ma50
		deathCross := ma20 < ma50

		boll := metrics.BollingerBands(m.Closes, price)
		piv := metrics.PivotLevels(m.Highs, m.Lows, price)
		align := metrics.TrendAlignment(
			metrics.TimeframeTrend(m.Closes),
			metrics.TimeframeTrend(m.WeeklyCloses),
			metrics.TimeframeTrend(m.MonthlyCloses),
		)

		nearSupport := piv.Support > 0 && price <= piv.Support*1.02
		nearResistance := piv.Resistance > 0 && price >= piv.Resistance*0.98
		brokeResistance := piv.Sufficient && len(piv.Resistances) > 0 && piv.Resistance == 0

		rules := []rule{
			{
				name: "golden_cross_momentum",
				when: func(*cascadeState) bool { return goldenCross && rsi < 50 && volume > 1.3 },
				apply: func(st *cascadeState) {
					conf := math.Min(0.90, 0.70+(volume-1.0)*0.2)
					st.decide(contracts.ActionBuy, conf,
						fmt.Sprintf("golden cross with RSI %.0f and %.1fx volume", rsi, volume))
				},
			},
			{
				name: "oversold_bounce",
				when: func(*cascadeState) bool { return rsi < 30 && volume > 1.2 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.85,
						fmt.Sprintf("oversold RSI %.0f on rising volume", rsi))
				},
			},
			{
				name: "death_cross_exhaustion",
				when: func(*cascadeState) bool { return deathCross && rsi > 70 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.80,
						fmt.Sprintf("death cross with overbought RSI %.0f", rsi))
				},
			},
			{
				name: "overbought_fade",
				when: func(*cascadeState) bool { return rsi > 75 && volume < 0.8 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.75,
						fmt.Sprintf("RSI %.0f with fading volume", rsi))
				},
			},
			{
				name: "neutral_tape",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.60, "no decisive technical setup")
				},
			},
			{
				name: "mtf_full_agreement",
				when: func(*cascadeState) bool { return align.Score == 1.0 },
				apply: func(st *cascadeState) {
					if align.Direction == metrics.TrendUp {
						st.overrideHold(contracts.ActionBuy, 0.75, "all timeframes trending up")
					} else if align.Direction == metrics.TrendDown {
						st.overrideHold(contracts.ActionSell, 0.75, "all timeframes trending down")
					}
				},
			},
			{
				name: "mtf_alignment",
				apply: func(st *cascadeState) {
					switch {
					case align.Score >= 0.8:
						st.adjust(0.20, "strong timeframe alignment")
					case align.Score >= 0.6:
						st.adjust(0.10, "")
					case align.Score <= 0.3:
						st.adjust(-0.30, "conflicting timeframes")
					}
				},
			},
			{
				name: "support_proximity",
				when: func(*cascadeState) bool { return nearSupport },
				apply: func(st *cascadeState) {
					st.adjust(0.15, fmt.Sprintf("price near support %.2f", piv.Support))
				},
			},
			{
				name: "resistance_break",
				when: func(*cascadeState) bool { return brokeResistance },
				apply: func(st *cascadeState) {
					st.adjust(0.20, "price above all recent pivot highs")
				},
			},
			{
				name: "resistance_proximity",
				when: func(*cascadeState) bool { return nearResistance },
				apply: func(st *cascadeState) {
					switch {
					case st.isHold():
						st.overrideHold(contracts.ActionSell, 0.65,
							fmt.Sprintf("stalling at resistance %.2f", piv.Resistance))
					case st.is(contracts.ActionSell):
						st.adjust(0.10, "resistance overhead")
					case st.is(contracts.ActionBuy):
						st.adjust(-0.10, "resistance overhead")
					}
				},
			},
			{
				name: "bollinger_oversold",
				when: func(*cascadeState) bool { return boll.Sufficient && boll.Position == metrics.BandBelowLower },
				apply: func(st *cascadeState) {
					if st.isHold() {
						st.overrideHold(contracts.ActionBuy, 0.75, "price below lower Bollinger band")
					} else if st.is(contracts.ActionBuy) {
						st.adjust(0.15, "price below lower Bollinger band")
					}
				},
			},
			{
				name: "bollinger_overbought",
				when: func(*cascadeState) bool { return boll.Sufficient && boll.Position == metrics.BandAboveUpper },
				apply: func(st *cascadeState) {
					if st.isHold() {
						st.overrideHold(contracts.ActionSell, 0.70, "price above upper Bollinger band")
					} else if st.is(contracts.ActionSell) {
						st.adjust(0.10, "price above upper Bollinger band")
					}
				},
			},
			{
				name: "bollinger_width",
				when: func(st *cascadeState) bool { return boll.Sufficient && !st.isHold() },
				apply: func(st *cascadeState) {
					switch boll.WidthState {
					case metrics.BandSqueeze:
						st.adjust(-0.10, "volatility squeeze, breakout direction unclear")
					case metrics.BandExpansion:
						st.adjust(0.10, "")
					}
				},
			},
		}

		st := runCascade(rules, 0.40, 0.95)

		return st.vote(contracts.DomainTechnical, map[string]interface{}{
			"rsi":          rsi,
			"ma20":         ma20,
			"ma50":         ma50,
			"volume_ratio": volume,
			"bollinger":    boll,
			"pivots":       piv,
			"alignment":    align,
		})
	})
}

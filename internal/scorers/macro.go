package scorers

import (
	"fmt"
	"strings"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// Fed policy directions understood by the macro scorer.
const (
	FedHiking  = "hiking"
	FedCutting = "cutting"
	FedHolding = "holding"
)

// MacroScorer votes on the economic regime: yield curve, Fed policy,
// inflation, growth, employment, plus oil and dollar adjustments.
// 수익률곡선 역전은 최우선 오버라이드 — 이후 룰은 신뢰도만 조정
type MacroScorer struct {
	logger *logger.Logger
}

// NewMacroScorer creates a macro scorer.
func NewMacroScorer(log *logger.Logger) *MacroScorer {
	return &MacroScorer{logger: log}
}

// Domain implements Scorer.
func (s *MacroScorer) Domain() contracts.DomainID {
	return contracts.DomainMacro
}

const macroFallbackConfidence = 0.60

// Score implements Scorer.
func (s *MacroScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainMacro, macroFallbackConfidence, func() contracts.Vote {
		m := snap.Macro

		// Feeds send the direction in either case; match case-insensitively.
		fedDirection := strings.ToLower(contracts.StringOr(m.FedDirection, FedHolding))
		cpi := contracts.FloatOr(m.CPI, 3.0)
		gdp := contracts.FloatOr(m.GDPGrowth, 2.0)
		unemployment := contracts.FloatOr(m.Unemployment, 4.0)

		curve := metrics.YieldCurveSpread(
			contracts.FloatOr(m.Yield2Y, 4.00),
			contracts.FloatOr(m.Yield10Y, 4.50),
		)
		oil := metrics.OilRegime(contracts.FloatOr(m.OilPrice, 75))
		dollar := metrics.DollarRegime(contracts.FloatOr(m.DollarIndex, 100))

		rules := []rule{
			{
				name: "yield_curve_inversion",
				when: func(*cascadeState) bool { return curve.Status == metrics.CurveInverted },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.85,
						fmt.Sprintf("yield curve inverted (%.0fbps), recession risk", curve.SpreadBps))
				},
			},
			{
				name: "easing_into_disinflation",
				when: func(*cascadeState) bool { return fedDirection == FedCutting && cpi < 3.0 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.84, "Fed easing with inflation contained")
				},
			},
			{
				name: "goldilocks",
				when: func(*cascadeState) bool { return gdp > 2.5 && unemployment < 4.0 && cpi < 3.5 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.78,
						fmt.Sprintf("solid growth (%.1f%%) with full employment and tame inflation", gdp))
				},
			},
			{
				name: "tightening_into_inflation",
				when: func(*cascadeState) bool { return fedDirection == FedHiking && cpi > 4.5 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.76,
						fmt.Sprintf("Fed hiking into %.1f%% inflation", cpi))
				},
			},
			{
				name: "slowdown",
				when: func(*cascadeState) bool { return gdp < 1.0 || unemployment > 5.0 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.72, "growth stalling or labor market cracking")
				},
			},
			{
				name: "mixed_macro",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.65, "macro picture mixed")
				},
			},
			{
				name: "curve_shape",
				apply: func(st *cascadeState) {
					switch curve.Status {
					case metrics.CurveSteep:
						st.adjust(0.15, "steep curve supports risk appetite")
					case metrics.CurveFlattening:
						st.adjust(-0.10, "curve flattening")
					}
				},
			},
			{
				name: "oil_regime",
				apply: func(st *cascadeState) {
					switch {
					case oil == metrics.OilHigh && m.EnergySector:
						st.adjust(0.10, "high oil favors energy names")
					case oil == metrics.OilHigh:
						st.adjust(-0.05, "high oil squeezes input costs")
					case oil == metrics.OilLow && !m.EnergySector:
						st.adjust(0.05, "")
					}
				},
			},
			{
				name: "dollar_regime",
				when: func(*cascadeState) bool { return m.Exporter },
				apply: func(st *cascadeState) {
					switch dollar {
					case metrics.DollarStrong:
						st.adjust(-0.10, "strong dollar pressures exports")
					case metrics.DollarWeak:
						st.adjust(0.10, "weak dollar tailwind for exports")
					}
				},
			},
		}

		st := runCascade(rules, 0.40, 0.95)

		return st.vote(contracts.DomainMacro, map[string]interface{}{
			"yield_curve":   curve,
			"fed_direction": fedDirection,
			"cpi":           cpi,
			"gdp_growth":    gdp,
			"unemployment":  unemployment,
			"oil_regime":    oil,
			"dollar_regime": dollar,
		})
	})
}

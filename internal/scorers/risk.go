package scorers

import (
	"fmt"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// RiskScorer votes on downside exposure: CDS spreads, Sharpe, historical
// VaR/CVaR, volatility, beta and drawdown. CDS CRITICAL은 절대 오버라이드.
type RiskScorer struct {
	logger *logger.Logger
}

// NewRiskScorer creates a risk scorer.
func NewRiskScorer(log *logger.Logger) *RiskScorer {
	return &RiskScorer{logger: log}
}

// Domain implements Scorer.
func (s *RiskScorer) Domain() contracts.DomainID {
	return contracts.DomainRisk
}

const riskFallbackConfidence = 0.60

// Score implements Scorer.
func (s *RiskScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainRisk, riskFallbackConfidence, func() contracts.Vote {
		m := snap.Risk

		riskFree := contracts.FloatOr(m.RiskFreeRate, 0.04)
		volatility := contracts.FloatOr(m.Volatility, 0.25)
		beta := contracts.FloatOr(m.Beta, 1.0)
		maxDrawdown := contracts.FloatOr(m.MaxDrawdown, -0.05)

		cds := metrics.CDSRisk(contracts.FloatOr(m.CDSSpread, 150))
		sharpe, sharpeOK := metrics.SharpeRatio(m.DailyReturns, riskFree)
		varResult := metrics.HistoricalVaR(m.DailyReturns, 0.95)
		kelly := metrics.KellyFraction(
			contracts.FloatOr(m.WinRate, 0.5),
			contracts.FloatOr(m.AvgWin, 0.05),
			contracts.FloatOr(m.AvgLoss, -0.05),
		)

		rules := []rule{
			{
				name: "cds_critical",
				when: func(*cascadeState) bool { return cds.Level == metrics.CDSCritical },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.90,
						fmt.Sprintf("CDS spread %.0fbps signals distress", cds.SpreadBps))
				},
			},
			{
				name: "cds_high",
				when: func(*cascadeState) bool { return cds.Level == metrics.CDSHigh },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.80,
						fmt.Sprintf("elevated credit risk (CDS %.0fbps)", cds.SpreadBps))
				},
			},
			{
				name: "poor_risk_adjusted_return",
				when: func(*cascadeState) bool { return sharpeOK && sharpe < 0.5 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.85,
						fmt.Sprintf("Sharpe %.2f, not compensated for the risk", sharpe))
				},
			},
			{
				name: "var_extreme",
				when: func(*cascadeState) bool { return varResult.Sufficient && varResult.VaR < -0.05 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.88,
						fmt.Sprintf("1-day VaR95 %.1f%%, tail too fat", varResult.VaR*100))
				},
			},
			{
				name: "high_volatility",
				when: func(*cascadeState) bool { return volatility > 0.40 || maxDrawdown < -0.10 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.85, "volatility or drawdown beyond tolerance")
				},
			},
			{
				name: "elevated_beta",
				when: func(*cascadeState) bool { return volatility > 0.30 && beta > 1.5 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.75,
						fmt.Sprintf("high beta (%.1f) in a volatile regime", beta))
				},
			},
			{
				name: "low_risk_profile",
				when: func(*cascadeState) bool { return volatility < 0.20 && maxDrawdown > -0.05 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.87, "low volatility and shallow drawdowns")
				},
			},
			{
				name: "acceptable_risk",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.65, "risk profile acceptable but unremarkable")
				},
			},
			{
				name: "cds_comfort",
				when: func(*cascadeState) bool { return cds.ConfidenceModifier != 0 },
				apply: func(st *cascadeState) {
					st.adjust(cds.ConfidenceModifier, "tight credit spreads")
				},
			},
			{
				name: "sharpe_strength",
				when: func(*cascadeState) bool { return sharpeOK && sharpe > 1.0 },
				apply: func(st *cascadeState) {
					if sharpe > 1.5 {
						st.adjust(0.15, fmt.Sprintf("excellent Sharpe %.2f", sharpe))
					} else {
						st.adjust(0.10, "")
					}
				},
			},
			{
				name: "cvar_deep_tail",
				when: func(*cascadeState) bool { return varResult.Sufficient && varResult.CVaR < -0.10 },
				apply: func(st *cascadeState) {
					st.adjust(-0.10, fmt.Sprintf("CVaR %.1f%%, tail losses severe", varResult.CVaR*100))
				},
			},
			{
				name: "var_mild",
				when: func(*cascadeState) bool { return varResult.Sufficient && varResult.VaR > -0.02 },
				apply: func(st *cascadeState) {
					st.adjust(0.05, "")
				},
			},
		}

		st := runCascade(rules, 0.40, 0.95)

		return st.vote(contracts.DomainRisk, map[string]interface{}{
			"cds":            cds,
			"sharpe":         sharpe,
			"sharpe_defined": sharpeOK,
			"var":            varResult,
			"volatility":     volatility,
			"beta":           beta,
			"max_drawdown":   maxDrawdown,
			"kelly_fraction": kelly,
		})
	})
}

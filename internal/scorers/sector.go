package scorers

import (
	"fmt"
	"math"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// Roles a ticker can play in a disruption narrative.
const (
	RoleIncumbent      = "incumbent"
	RoleChallenger     = "challenger"
	RolePartner        = "partner"
	RoleAlternative    = "alternative"
	RoleInfrastructure = "infrastructure"
)

// SectorScorer votes on competitive displacement: how a disruption score
// lands on a ticker depends on which side of the disruption it sits on.
// 커버리지 밖 종목은 기권 (HOLD 0.30).
type SectorScorer struct {
	logger *logger.Logger
}

// NewSectorScorer creates a sector-competition scorer.
func NewSectorScorer(log *logger.Logger) *SectorScorer {
	return &SectorScorer{logger: log}
}

// Domain implements Scorer.
func (s *SectorScorer) Domain() contracts.DomainID {
	return contracts.DomainSector
}

const sectorFallbackConfidence = 0.30

// Score implements Scorer.
func (s *SectorScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainSector, sectorFallbackConfidence, func() contracts.Vote {
		m := snap.Sector

		if m.Role == "" {
			// Abstention, not a cascade result: skips the usual 0.40 floor
			// so the arbiter barely weighs it.
			return contracts.Vote{
				Domain:     contracts.DomainSector,
				Action:     contracts.ActionHold,
				Confidence: 0.30,
				Rationale:  "ticker not covered by the sector playbook",
				Factors:    map[string]interface{}{"abstain": true},
			}
		}

		score := contracts.FloatOr(m.DisruptionScore, 100)
		verdict := metrics.DisruptionVerdict(score)
		threat := verdict == metrics.DisruptionThreat
		safe := verdict == metrics.DisruptionSafe

		rules := []rule{
			{
				name: "incumbent_under_threat",
				when: func(*cascadeState) bool { return m.Role == RoleIncumbent && threat },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, math.Min(0.75, (score-100)/100),
						fmt.Sprintf("incumbent losing ground, disruption score %.0f", score))
				},
			},
			{
				name: "incumbent_moat_intact",
				when: func(*cascadeState) bool { return m.Role == RoleIncumbent && safe },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, math.Min(0.85, 1-score/200),
						"incumbent moat holding against challengers")
				},
			},
			{
				name: "challenger_breaking_through",
				when: func(*cascadeState) bool { return m.Role == RoleChallenger && threat },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, math.Min(0.80, (score-100)/120),
						fmt.Sprintf("challenger gaining share, disruption score %.0f", score))
				},
			},
			{
				name: "challenger_stalled",
				when: func(*cascadeState) bool { return m.Role == RoleChallenger && safe },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.65, "challenger failing to dent the incumbents")
				},
			},
			{
				name: "partner_upside",
				when: func(*cascadeState) bool { return m.Role == RolePartner },
				apply: func(st *cascadeState) {
					if threat {
						st.decide(contracts.ActionBuy, 0.70, "disruption pulls partner demand along")
					} else {
						st.decide(contracts.ActionHold, 0.50, "partner exposure, no shift yet")
					}
				},
			},
			{
				name: "alternative_option",
				when: func(*cascadeState) bool { return m.Role == RoleAlternative },
				apply: func(st *cascadeState) {
					if threat {
						st.decide(contracts.ActionBuy, 0.60, "substitution pressure favors alternatives")
					} else {
						st.decide(contracts.ActionHold, 0.45, "alternative play without a catalyst")
					}
				},
			},
			{
				name: "infrastructure_levy",
				when: func(*cascadeState) bool { return m.Role == RoleInfrastructure },
				apply: func(st *cascadeState) {
					if threat {
						st.decide(contracts.ActionBuy, 0.65, "infrastructure sells shovels to both sides")
					} else {
						st.decide(contracts.ActionHold, 0.55, "infrastructure demand steady")
					}
				},
			},
			{
				name: "watching",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.50,
						fmt.Sprintf("monitoring disruption score %.0f", score))
				},
			},
		}

		st := runCascade(rules, 0.40, 0.95)

		return st.vote(contracts.DomainSector, map[string]interface{}{
			"role":             m.Role,
			"disruption_score": score,
			"verdict":          verdict,
		})
	})
}

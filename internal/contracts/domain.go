package contracts

import "time"

// DomainID identifies one analytical perspective in the war room
// ⭐ SSOT: 도메인 ID는 여기서만 정의
type DomainID string

const (
	DomainTechnical   DomainID = "technical"
	DomainFundamental DomainID = "fundamental"
	DomainMacro       DomainID = "macro"
	DomainRisk        DomainID = "risk"
	DomainSentiment   DomainID = "sentiment"
	DomainNews        DomainID = "news"
	DomainSector      DomainID = "sector"
)

// AllDomains returns the configured domains in their canonical order.
// Vote 목록의 순서는 이 순서를 따름 (arbiter 결과는 순서 무관)
func AllDomains() []DomainID {
	return []DomainID{
		DomainTechnical,
		DomainFundamental,
		DomainMacro,
		DomainRisk,
		DomainSentiment,
		DomainNews,
		DomainSector,
	}
}

// Action is a trade action emitted by a domain scorer.
// Scorers may emit the wider vocabulary; the arbiter remaps everything
// to {BUY, SELL, HOLD} before scoring.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"

	// Extended vocabulary (remapped by the arbiter)
	ActionMaintain Action = "MAINTAIN"
	ActionReduce   Action = "REDUCE"
	ActionIncrease Action = "INCREASE"
	ActionTrim     Action = "TRIM"
	ActionAdd      Action = "ADD"
	ActionDCA      Action = "DCA"
)

// IsCanonical reports whether the action is one of the final three.
func (a Action) IsCanonical() bool {
	return a == ActionBuy || a == ActionSell || a == ActionHold
}

// Vote is one domain's independent opinion on a ticker.
// Immutable once returned; the arbiter never mutates votes.
type Vote struct {
	Domain     DomainID               `json:"domain"`
	Action     Action                 `json:"action"`
	Confidence float64                `json:"confidence"` // always in [0,1]
	Rationale  string                 `json:"rationale"`  // non-empty
	Factors    map[string]interface{} `json:"factors,omitempty"`
}

// WeightTable maps domains to arbitration weights.
// 가중치 합이 1.0일 필요 없음 — arbiter가 비율로 정규화
// Read-only after construction; safe for concurrent use.
type WeightTable map[DomainID]float64

// DefaultDomainWeight applies when a vote's domain has no configured weight.
const DefaultDomainWeight = 0.1

// Weight returns the weight for a domain, falling back to the default.
func (w WeightTable) Weight(d DomainID) float64 {
	if v, ok := w[d]; ok {
		return v
	}
	return DefaultDomainWeight
}

// ConsensusResult is the final arbitrated decision.
// Derived entirely from the vote list and weight table — reproducible.
type ConsensusResult struct {
	Action         Action             `json:"action"` // BUY, SELL or HOLD
	Confidence     float64            `json:"confidence"`
	ScoreBreakdown map[Action]float64 `json:"score_breakdown"`
}

// DebateResult bundles one full war-room run for persistence and transport.
type DebateResult struct {
	Ticker    string          `json:"ticker"`
	Votes     []Vote          `json:"votes"` // ordered by AllDomains()
	Consensus ConsensusResult `json:"consensus"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
}

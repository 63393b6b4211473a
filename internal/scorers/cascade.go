package scorers

import (
	"strings"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// Scorer turns one domain's metric bundle into a Vote.
// ⭐ SSOT: 도메인 스코어러 인터페이스는 여기서만 정의
type Scorer interface {
	Domain() contracts.DomainID

	// Score never fails: panics are recovered into the domain's
	// documented fallback HOLD vote.
	Score(snap *contracts.MarketSnapshot) contracts.Vote
}

// rule is one step of an ordered threshold cascade.
// Slice order IS the priority order — part of each scorer's contract.
type rule struct {
	name  string
	when  func(s *cascadeState) bool
	apply func(s *cascadeState)
}

// cascadeState accumulates a vote as rules fire.
type cascadeState struct {
	action     contracts.Action
	confidence float64
	rationale  []string
	decided    bool
	fired      []string
}

// decide sets action+confidence outright. Only the first decide wins;
// once the action is fixed, later rules may only adjust confidence.
func (s *cascadeState) decide(action contracts.Action, confidence float64, rationale string) {
	if s.decided {
		return
	}
	s.action = action
	s.confidence = confidence
	s.rationale = append(s.rationale, rationale)
	s.decided = true
}

// overrideHold promotes a HOLD (or undecided) vote to a directional one.
// 이미 BUY/SELL로 결정된 액션은 절대 뒤집지 않음
func (s *cascadeState) overrideHold(action contracts.Action, confidence float64, rationale string) {
	if s.decided && s.action != contracts.ActionHold {
		return
	}
	s.action = action
	s.confidence = confidence
	s.rationale = append(s.rationale, rationale)
	s.decided = true
}

// adjust applies a signed confidence delta, never touching the action.
func (s *cascadeState) adjust(delta float64, note string) {
	s.confidence += delta
	if note != "" {
		s.rationale = append(s.rationale, note)
	}
}

// isHold reports whether the cascade currently sits on a HOLD decision.
func (s *cascadeState) isHold() bool {
	return s.decided && s.action == contracts.ActionHold
}

// is reports whether the cascade has decided the given action.
func (s *cascadeState) is(a contracts.Action) bool {
	return s.decided && s.action == a
}

// runCascade evaluates rules in order, then clamps confidence to the
// scorer-specific floor/ceiling.
func runCascade(rules []rule, floor, ceiling float64) *cascadeState {
	s := &cascadeState{}
	for _, r := range rules {
		if r.when == nil || r.when(s) {
			r.apply(s)
			s.fired = append(s.fired, r.name)
		}
	}
	s.confidence = metrics.Clamp(s.confidence, floor, ceiling)
	return s
}

// vote materializes the cascade result into an immutable Vote.
func (s *cascadeState) vote(domain contracts.DomainID, factors map[string]interface{}) contracts.Vote {
	if factors == nil {
		factors = map[string]interface{}{}
	}
	factors["rules_fired"] = s.fired

	return contracts.Vote{
		Domain:     domain,
		Action:     s.action,
		Confidence: s.confidence,
		Rationale:  strings.Join(s.rationale, "; "),
		Factors:    factors,
	}
}

// FallbackVote is the conservative vote a scorer returns when its
// computation panics. 절대 에러를 전파하지 않음 — arbiter는 항상
// 도메인당 한 표를 받는다.
func FallbackVote(domain contracts.DomainID, confidence float64) contracts.Vote {
	return contracts.Vote{
		Domain:     domain,
		Action:     contracts.ActionHold,
		Confidence: confidence,
		Rationale:  "insufficient data: falling back to conservative HOLD",
		Factors:    map[string]interface{}{"fallback": true},
	}
}

// guard wraps a scorer body with panic recovery into the fallback vote.
func guard(log *logger.Logger, domain contracts.DomainID, fallbackConfidence float64, body func() contracts.Vote) (vote contracts.Vote) {
	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.WithFields(map[string]interface{}{
					"domain": domain,
					"panic":  r,
				}).Warn("Scorer panicked, returning fallback vote")
			}
			vote = FallbackVote(domain, fallbackConfidence)
		}
	}()
	return body()
}

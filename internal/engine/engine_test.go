package engine

import (
	"reflect"
	"testing"

	"github.com/wonny/warroom/internal/consensus"
	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/scorers"
	"github.com/wonny/warroom/pkg/config"
	"github.com/wonny/warroom/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Consensus: config.ConsensusConfig{
			WeightTechnical:   0.15,
			WeightFundamental: 0.12,
			WeightMacro:       0.14,
			WeightRisk:        0.15,
			WeightSentiment:   0.08,
			WeightNews:        0.14,
			WeightSector:      0.14,
		},
	}
}

func TestDebateOneVotePerDomain(t *testing.T) {
	e := New(testConfig(), logger.Nop())

	result := e.Debate(&contracts.MarketSnapshot{Ticker: "AAPL"})

	if len(result.Votes) != len(contracts.AllDomains()) {
		t.Fatalf("got %d votes, want %d", len(result.Votes), len(contracts.AllDomains()))
	}

	for i, domain := range contracts.AllDomains() {
		if result.Votes[i].Domain != domain {
			t.Errorf("vote %d domain = %s, want %s", i, result.Votes[i].Domain, domain)
		}
		if result.Votes[i].Confidence < 0 || result.Votes[i].Confidence > 1 {
			t.Errorf("vote %d confidence %.2f out of [0,1]", i, result.Votes[i].Confidence)
		}
		if result.Votes[i].Rationale == "" {
			t.Errorf("vote %d has empty rationale", i)
		}
	}

	if !result.Consensus.Action.IsCanonical() {
		t.Errorf("consensus action %s not canonical", result.Consensus.Action)
	}
}

func TestDebateDeterministic(t *testing.T) {
	e := New(testConfig(), logger.Nop())

	snap := &contracts.MarketSnapshot{
		Ticker: "NVDA",
		Technical: contracts.TechnicalMetrics{
			Price: 105, RSI: contracts.F(45),
			MA20: contracts.F(105), MA50: contracts.F(100),
			VolumeRatio: contracts.F(1.5),
		},
		Risk:   contracts.RiskMetrics{CDSSpread: contracts.F(80)},
		Sector: contracts.SectorMetrics{Role: scorers.RoleChallenger, DisruptionScore: contracts.F(150)},
	}

	baseline := e.Debate(snap)
	for i := 0; i < 10; i++ {
		got := e.Debate(snap)
		if !reflect.DeepEqual(got.Votes, baseline.Votes) {
			t.Fatalf("run %d votes diverged from baseline", i)
		}
		if got.Consensus.Action != baseline.Consensus.Action ||
			got.Consensus.Confidence != baseline.Consensus.Confidence {
			t.Fatalf("run %d consensus diverged: %+v vs %+v", i, got.Consensus, baseline.Consensus)
		}
	}
}

type panickingScorer struct {
	domain contracts.DomainID
}

func (p panickingScorer) Domain() contracts.DomainID { return p.domain }

func (p panickingScorer) Score(*contracts.MarketSnapshot) contracts.Vote {
	panic("scorer without a harness")
}

func TestDebateSurvivesEscapedPanic(t *testing.T) {
	arb := consensus.NewArbiter(contracts.WeightTable{}, logger.Nop())
	e := NewWithScorers([]scorers.Scorer{
		scorers.NewTechnicalScorer(nil),
		panickingScorer{domain: contracts.DomainNews},
	}, arb, logger.Nop())

	result := e.Debate(&contracts.MarketSnapshot{Ticker: "TSLA"})

	if len(result.Votes) != 2 {
		t.Fatalf("got %d votes, want 2", len(result.Votes))
	}

	news := result.Votes[1]
	if news.Domain != contracts.DomainNews || news.Action != contracts.ActionHold {
		t.Errorf("escaped panic should yield a HOLD for its domain, got %+v", news)
	}
	if fb, _ := news.Factors["fallback"].(bool); !fb {
		t.Error("expected fallback factor on the substituted vote")
	}
}

func TestWeightsFromConfig(t *testing.T) {
	w := WeightsFromConfig(testConfig().Consensus)

	if w.Weight(contracts.DomainTechnical) != 0.15 {
		t.Errorf("technical weight = %.2f, want 0.15", w.Weight(contracts.DomainTechnical))
	}
	if w.Weight(contracts.DomainID("unknown")) != contracts.DefaultDomainWeight {
		t.Errorf("unknown domain should fall back to %.2f", contracts.DefaultDomainWeight)
	}
}

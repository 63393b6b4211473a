package contracts

import "testing"

func TestWeightTableDefault(t *testing.T) {
	w := WeightTable{
		DomainTechnical: 0.15,
		DomainRisk:      0.15,
	}

	if got := w.Weight(DomainTechnical); got != 0.15 {
		t.Errorf("Weight(technical) = %f, want 0.15", got)
	}

	// Unconfigured domain falls back to the default weight
	if got := w.Weight(DomainNews); got != DefaultDomainWeight {
		t.Errorf("Weight(news) = %f, want %f", got, DefaultDomainWeight)
	}

	if got := w.Weight(DomainID("unknown")); got != DefaultDomainWeight {
		t.Errorf("Weight(unknown) = %f, want %f", got, DefaultDomainWeight)
	}
}

func TestAllDomainsOrder(t *testing.T) {
	domains := AllDomains()

	if len(domains) != 7 {
		t.Fatalf("expected 7 domains, got %d", len(domains))
	}

	if domains[0] != DomainTechnical {
		t.Errorf("first domain = %s, want technical", domains[0])
	}
	if domains[6] != DomainSector {
		t.Errorf("last domain = %s, want sector", domains[6])
	}
}

func TestActionIsCanonical(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionBuy, true},
		{ActionSell, true},
		{ActionHold, true},
		{ActionMaintain, false},
		{ActionReduce, false},
		{ActionIncrease, false},
		{ActionTrim, false},
		{ActionAdd, false},
		{ActionDCA, false},
		{Action("GAMBLE"), false},
	}

	for _, tt := range tests {
		if got := tt.action.IsCanonical(); got != tt.want {
			t.Errorf("IsCanonical(%s) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestFloatOr(t *testing.T) {
	if got := FloatOr(nil, 50); got != 50 {
		t.Errorf("FloatOr(nil, 50) = %f, want 50", got)
	}
	if got := FloatOr(F(31.5), 50); got != 31.5 {
		t.Errorf("FloatOr(31.5, 50) = %f, want 31.5", got)
	}
}

func TestStringOr(t *testing.T) {
	if got := StringOr("", "normal"); got != "normal" {
		t.Errorf("StringOr empty = %q, want normal", got)
	}
	if got := StringOr("high", "normal"); got != "high" {
		t.Errorf("StringOr high = %q, want high", got)
	}
}

package metrics

import "testing"

func TestYieldCurveSpread(t *testing.T) {
	tests := []struct {
		name       string
		yield2y    float64
		yield10y   float64
		wantSpread float64
		wantStatus string
	}{
		{"inverted", 4.5, 4.2, -30, CurveInverted},
		{"steep", 3.0, 4.8, 180, CurveSteep},
		{"flattening", 4.0, 4.1, 10, CurveFlattening},
		{"normal", 4.0, 4.5, 50, CurveNormal},
		{"zero spread is flattening", 4.0, 4.0, 0, CurveFlattening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := YieldCurveSpread(tt.yield2y, tt.yield10y)
			if r.SpreadBps != tt.wantSpread {
				t.Errorf("spread = %f bps, want %f", r.SpreadBps, tt.wantSpread)
			}
			if r.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", r.Status, tt.wantStatus)
			}
		})
	}
}

func TestCDSRisk(t *testing.T) {
	tests := []struct {
		spread       float64
		wantLevel    string
		wantModifier float64
	}{
		{50, CDSLow, 0.10},
		{100, CDSModerate, 0},
		{199, CDSModerate, 0},
		{200, CDSHigh, 0},
		{499, CDSHigh, 0},
		{500, CDSCritical, 0},
		{600, CDSCritical, 0},
	}

	for _, tt := range tests {
		r := CDSRisk(tt.spread)
		if r.Level != tt.wantLevel {
			t.Errorf("CDSRisk(%f).Level = %s, want %s", tt.spread, r.Level, tt.wantLevel)
		}
		if r.ConfidenceModifier != tt.wantModifier {
			t.Errorf("CDSRisk(%f).ConfidenceModifier = %f, want %f",
				tt.spread, r.ConfidenceModifier, tt.wantModifier)
		}
	}
}

func TestOilRegime(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{95, OilHigh},
		{75, OilNormal},
		{55, OilLow},
		{90, OilNormal},
		{60, OilNormal},
	}

	for _, tt := range tests {
		if got := OilRegime(tt.price); got != tt.want {
			t.Errorf("OilRegime(%f) = %s, want %s", tt.price, got, tt.want)
		}
	}
}

func TestDollarRegime(t *testing.T) {
	tests := []struct {
		dxy  float64
		want string
	}{
		{110, DollarStrong},
		{100, DollarNeutral},
		{90, DollarWeak},
	}

	for _, tt := range tests {
		if got := DollarRegime(tt.dxy); got != tt.want {
			t.Errorf("DollarRegime(%f) = %s, want %s", tt.dxy, got, tt.want)
		}
	}
}

func TestFearGreed(t *testing.T) {
	tests := []struct {
		index      float64
		wantClass  string
		wantSignal string
	}{
		{10, ExtremeFear, ContrarianBuy},
		{24, ExtremeFear, ContrarianBuy},
		{25, Fear, ContrarianNone},
		{50, Neutral, ContrarianNone},
		{60, Greed, ContrarianNone},
		{76, ExtremeGreed, ContrarianSell},
		{90, ExtremeGreed, ContrarianSell},
	}

	for _, tt := range tests {
		r := FearGreed(tt.index)
		if r.Classification != tt.wantClass {
			t.Errorf("FearGreed(%f).Classification = %s, want %s", tt.index, r.Classification, tt.wantClass)
		}
		if r.Signal != tt.wantSignal {
			t.Errorf("FearGreed(%f).Signal = %s, want %s", tt.index, r.Signal, tt.wantSignal)
		}
	}
}

package metrics

import (
	"math"
	"testing"
)

func TestPEGRatio(t *testing.T) {
	tests := []struct {
		name      string
		pe        float64
		growth    float64
		wantValue float64
		wantClass string
	}{
		{"fair at exactly 1.5", 60, 0.40, 1.5, PEGFair},
		{"undervalued", 25, 0.30, 0.8333, PEGUndervalued},
		{"extremely undervalued", 10, 0.25, 0.4, PEGExtremelyUndervalued},
		{"slightly overvalued", 35, 0.20, 1.75, PEGSlightlyOvervalued},
		{"overvalued", 50, 0.10, 5.0, PEGOvervalued},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PEGRatio(tt.pe, tt.growth)
			if !r.Defined {
				t.Fatal("expected defined PEG")
			}
			if math.Abs(r.Value-tt.wantValue) > 0.001 {
				t.Errorf("PEG = %f, want %f", r.Value, tt.wantValue)
			}
			if r.Classification != tt.wantClass {
				t.Errorf("class = %s, want %s", r.Classification, tt.wantClass)
			}
		})
	}
}

func TestPEGRatio_LowGrowthSentinel(t *testing.T) {
	// growth below 1% → PEG undefined, sentinel "very high", N/A class
	r := PEGRatio(30, 0.005)

	if r.Defined {
		t.Error("expected undefined PEG for sub-1% growth")
	}
	if r.Classification != PEGNotApplicable {
		t.Errorf("class = %s, want %s", r.Classification, PEGNotApplicable)
	}
	if r.Value != PEGVeryHigh {
		t.Errorf("value = %f, want sentinel %f", r.Value, PEGVeryHigh)
	}
}

func TestComparePeers(t *testing.T) {
	tests := []struct {
		name         string
		pe, growth, margin float64
		wantStanding string
	}{
		// cheaper + faster growing + higher margin than sector
		{"leader", 15, 0.20, 0.25, PeerLeader},
		// pricier + slower + thinner than sector
		{"lagging", 30, 0.02, 0.05, PeerLagging},
		// in line with sector
		{"competitive", 20, 0.05, 0.10, PeerCompetitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComparePeers(tt.pe, tt.growth, tt.margin, 20, 0.05, 0.10)
			if r.Standing != tt.wantStanding {
				t.Errorf("standing = %s (score %d), want %s", r.Standing, r.Score, tt.wantStanding)
			}
		})
	}
}

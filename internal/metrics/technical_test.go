package metrics

import (
	"math"
	"testing"
)

func TestBollingerBands(t *testing.T) {
	// 20 closes oscillating around 100
	closes := make([]float64, 20)
	for i := range closes {
		if i%2 == 0 {
			closes[i] = 98
		} else {
			closes[i] = 102
		}
	}

	r := BollingerBands(closes, 100)
	if !r.Sufficient {
		t.Fatal("expected sufficient data with 20 closes")
	}
	if r.Middle != 100 {
		t.Errorf("middle = %f, want 100", r.Middle)
	}
	if r.Position != BandMiddle {
		t.Errorf("position = %s, want %s (price at the mean)", r.Position, BandMiddle)
	}
	if r.Upper <= r.Middle || r.Lower >= r.Middle {
		t.Errorf("bands not symmetric around middle: lower=%f middle=%f upper=%f",
			r.Lower, r.Middle, r.Upper)
	}
}

func TestBollingerBands_Positions(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		if i%2 == 0 {
			closes[i] = 95
		} else {
			closes[i] = 105
		}
	}
	r := BollingerBands(closes, 100)
	if !r.Sufficient {
		t.Fatal("expected sufficient data")
	}

	// Far below the lower band
	below := BollingerBands(closes, r.Lower-5)
	if below.Position != BandBelowLower {
		t.Errorf("position = %s, want %s", below.Position, BandBelowLower)
	}

	// Far above the upper band
	above := BollingerBands(closes, r.Upper+5)
	if above.Position != BandAboveUpper {
		t.Errorf("position = %s, want %s", above.Position, BandAboveUpper)
	}
}

func TestBollingerBands_WidthStates(t *testing.T) {
	// Tight series → squeeze
	tight := make([]float64, 20)
	for i := range tight {
		if i%2 == 0 {
			tight[i] = 99.9
		} else {
			tight[i] = 100.1
		}
	}
	if r := BollingerBands(tight, 100); r.WidthState != BandSqueeze {
		t.Errorf("width state = %s (%.2f%%), want %s", r.WidthState, r.WidthPct, BandSqueeze)
	}

	// Wild series → expansion
	wild := make([]float64, 20)
	for i := range wild {
		if i%2 == 0 {
			wild[i] = 90
		} else {
			wild[i] = 110
		}
	}
	if r := BollingerBands(wild, 100); r.WidthState != BandExpansion {
		t.Errorf("width state = %s (%.2f%%), want %s", r.WidthState, r.WidthPct, BandExpansion)
	}
}

func TestBollingerBands_InsufficientData(t *testing.T) {
	if r := BollingerBands(make([]float64, 19), 100); r.Sufficient {
		t.Error("expected insufficient data with 19 closes")
	}
}

func TestPivotLevels(t *testing.T) {
	// Build 21 bars with a clear swing high at index 10 and swing lows
	// at the edges of the window.
	highs := make([]float64, 21)
	lows := make([]float64, 21)
	for i := range highs {
		// tent shape peaking at i=10
		h := 100 + 10 - math.Abs(float64(i-10))
		highs[i] = h
		lows[i] = h - 2
	}

	r := PivotLevels(highs, lows, 105)
	if !r.Sufficient {
		t.Fatal("expected sufficient data with 21 bars")
	}

	if len(r.Resistances) != 1 || r.Resistances[0] != 110 {
		t.Errorf("resistances = %v, want [110]", r.Resistances)
	}
	if r.Resistance != 110 {
		t.Errorf("nearest resistance = %f, want 110", r.Resistance)
	}
	// The tent shape has no strict pivot low in the interior
	if len(r.Supports) != 0 {
		t.Errorf("supports = %v, want none", r.Supports)
	}
}

func TestPivotLevels_InsufficientData(t *testing.T) {
	highs := make([]float64, 10)
	lows := make([]float64, 10)
	if r := PivotLevels(highs, lows, 100); r.Sufficient {
		t.Error("expected insufficient data below 11 bars")
	}
}

func TestTimeframeTrend(t *testing.T) {
	up := make([]float64, 60)
	for i := range up {
		up[i] = 100 + float64(i) // steady climb
	}
	if got := TimeframeTrend(up); got != TrendUp {
		t.Errorf("trend = %s, want UP", got)
	}

	down := make([]float64, 60)
	for i := range down {
		down[i] = 200 - float64(i)
	}
	if got := TimeframeTrend(down); got != TrendDown {
		t.Errorf("trend = %s, want DOWN", got)
	}

	flat := make([]float64, 60)
	for i := range flat {
		flat[i] = 100
	}
	if got := TimeframeTrend(flat); got != TrendSideways {
		t.Errorf("trend = %s, want SIDEWAYS", got)
	}

	// Not enough bars for MA50 → neutral
	if got := TimeframeTrend(up[:30]); got != TrendSideways {
		t.Errorf("trend = %s, want SIDEWAYS on short series", got)
	}
}

func TestTrendAlignment(t *testing.T) {
	tests := []struct {
		name          string
		d, w, m       string
		wantScore     float64
		wantDirection string
	}{
		{"all up", TrendUp, TrendUp, TrendUp, 1.0, TrendUp},
		{"all down", TrendDown, TrendDown, TrendDown, 1.0, TrendDown},
		{"two up one sideways", TrendUp, TrendUp, TrendSideways, 0.75, TrendUp},
		{"one down two sideways", TrendDown, TrendSideways, TrendSideways, 0.66, TrendDown},
		{"all sideways", TrendSideways, TrendSideways, TrendSideways, 0.5, TrendSideways},
		{"two up one down", TrendUp, TrendUp, TrendDown, 0.33, TrendUp},
		{"conflicting", TrendUp, TrendDown, TrendSideways, 0.0, TrendSideways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TrendAlignment(tt.d, tt.w, tt.m)
			if r.Score != tt.wantScore {
				t.Errorf("score = %f, want %f", r.Score, tt.wantScore)
			}
			if r.Direction != tt.wantDirection {
				t.Errorf("direction = %s, want %s", r.Direction, tt.wantDirection)
			}
		})
	}
}

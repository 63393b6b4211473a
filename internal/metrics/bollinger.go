package metrics

// BollingerPeriod and BollingerK are the standard parameters.
const (
	BollingerPeriod = 20
	BollingerK      = 2.0
)

// Price position relative to the bands (5개 구간).
const (
	BandBelowLower = "BELOW_LOWER" // oversold
	BandNearLower  = "NEAR_LOWER"
	BandMiddle     = "MIDDLE"
	BandNearUpper  = "NEAR_UPPER"
	BandAboveUpper = "ABOVE_UPPER" // overbought
)

// Band width states.
const (
	BandSqueeze   = "SQUEEZE"   // width < 5% of middle
	BandNormal    = "NORMAL"
	BandExpansion = "EXPANSION" // width > 15% of middle
)

// BollingerResult holds the computed bands and classifications.
type BollingerResult struct {
	Middle     float64 `json:"middle"`
	Upper      float64 `json:"upper"`
	Lower      float64 `json:"lower"`
	Position   string  `json:"position"`
	WidthPct   float64 `json:"width_pct"`
	WidthState string  `json:"width_state"`
	Sufficient bool    `json:"sufficient"`
}

// BollingerBands computes SMA(20) ± 2σ bands and classifies the current
// price. closes는 과거→현재 순. 데이터 부족 시 Sufficient=false.
func BollingerBands(closes []float64, price float64) BollingerResult {
	middle, ok := SMA(closes, BollingerPeriod)
	if !ok {
		return BollingerResult{}
	}

	window := closes[len(closes)-BollingerPeriod:]
	std := StdDev(window)

	upper := middle + BollingerK*std
	lower := middle - BollingerK*std

	r := BollingerResult{
		Middle:     middle,
		Upper:      upper,
		Lower:      lower,
		Sufficient: true,
	}

	// %B 기반 5구간 분류
	bandRange := upper - lower
	if bandRange == 0 {
		r.Position = BandMiddle
	} else {
		pctB := (price - lower) / bandRange
		switch {
		case pctB < 0:
			r.Position = BandBelowLower
		case pctB < 0.3:
			r.Position = BandNearLower
		case pctB <= 0.7:
			r.Position = BandMiddle
		case pctB <= 1.0:
			r.Position = BandNearUpper
		default:
			r.Position = BandAboveUpper
		}
	}

	if middle != 0 {
		r.WidthPct = bandRange / middle * 100.0
	}
	switch {
	case r.WidthPct < 5:
		r.WidthState = BandSqueeze
	case r.WidthPct > 15:
		r.WidthState = BandExpansion
	default:
		r.WidthState = BandNormal
	}

	return r
}

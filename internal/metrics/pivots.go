package metrics

// PivotWindow bars on each side of a pivot candidate.
const PivotWindow = 5

// MinPivotBars required for pivot detection (window*2 + 1).
const MinPivotBars = PivotWindow*2 + 1

// MaxPivotLevels kept per side (most recent distinct).
const MaxPivotLevels = 3

// PivotResult holds detected support/resistance levels.
type PivotResult struct {
	Supports    []float64 `json:"supports"`    // most recent first
	Resistances []float64 `json:"resistances"` // most recent first
	Support     float64   `json:"support"`     // nearest below price, 0 if none
	Resistance  float64   `json:"resistance"`  // nearest above price, 0 if none
	Sufficient  bool      `json:"sufficient"`
}

// PivotLevels detects swing highs/lows: a bar is a pivot high (low) if it
// strictly exceeds (is exceeded by) every bar within PivotWindow on both
// sides. highs/lows는 과거→현재 순.
func PivotLevels(highs, lows []float64, price float64) PivotResult {
	n := len(highs)
	if n < MinPivotBars || len(lows) != n {
		return PivotResult{}
	}

	var pivotHighs, pivotLows []float64

	// 최근 피벗부터 수집
	for i := n - 1 - PivotWindow; i >= PivotWindow; i-- {
		if isPivotHigh(highs, i) {
			pivotHighs = appendDistinct(pivotHighs, highs[i])
		}
		if isPivotLow(lows, i) {
			pivotLows = appendDistinct(pivotLows, lows[i])
		}
	}

	r := PivotResult{
		Supports:    pivotLows,
		Resistances: pivotHighs,
		Sufficient:  true,
	}

	// nearest-below = support, nearest-above = resistance
	for _, lvl := range append(append([]float64{}, pivotLows...), pivotHighs...) {
		if lvl < price && lvl > r.Support {
			r.Support = lvl
		}
		if lvl > price && (r.Resistance == 0 || lvl < r.Resistance) {
			r.Resistance = lvl
		}
	}

	return r
}

func isPivotHigh(highs []float64, i int) bool {
	for j := i - PivotWindow; j <= i+PivotWindow; j++ {
		if j == i {
			continue
		}
		if highs[j] >= highs[i] {
			return false
		}
	}
	return true
}

func isPivotLow(lows []float64, i int) bool {
	for j := i - PivotWindow; j <= i+PivotWindow; j++ {
		if j == i {
			continue
		}
		if lows[j] <= lows[i] {
			return false
		}
	}
	return true
}

// appendDistinct keeps up to MaxPivotLevels distinct levels.
func appendDistinct(levels []float64, lvl float64) []float64 {
	if len(levels) >= MaxPivotLevels {
		return levels
	}
	for _, existing := range levels {
		if existing == lvl {
			return levels
		}
	}
	return append(levels, lvl)
}

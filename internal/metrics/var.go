package metrics

import (
	"math"
	"sort"
)

// =============================================================================
// VaR (Value at Risk) Calculation — Historical Simulation
// =============================================================================

// MinVaRObservations below this sample size VaR/CVaR are defined as 0.0.
const MinVaRObservations = 30

// VaRResult holds historical VaR/CVaR for one confidence level.
// VaR는 수익률 그 자체 (음수 = 손실). 충분한 데이터가 없으면 0.0.
type VaRResult struct {
	Confidence float64 `json:"confidence"`
	VaR        float64 `json:"var"`  // (1-confidence) percentile of returns
	CVaR       float64 `json:"cvar"` // mean of returns at/below VaR
	VaR10Day   float64 `json:"var_10day"`
	Sufficient bool    `json:"sufficient"` // false = insufficient data, values are 0.0
}

// HistoricalVaR computes VaR/CVaR from a daily-return sample.
// returns: 일별 수익률 배열 (양수=이익, 음수=손실)
// confidence: 신뢰수준 (예: 0.95, 0.99)
func HistoricalVaR(returns []float64, confidence float64) VaRResult {
	if len(returns) < MinVaRObservations {
		return VaRResult{Confidence: confidence}
	}

	// 수익률 정렬 (오름차순: 손실이 앞에)
	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	// VaR: (1-confidence) 백분위수
	// 예: 95% VaR = 하위 5% 백분위수
	idx := int(math.Floor((1.0 - confidence) * float64(len(sorted))))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	varValue := sorted[idx]

	// CVaR (Expected Shortfall): VaR 이하 수익률의 평균
	var sum float64
	count := 0
	for i := 0; i <= idx; i++ {
		sum += sorted[i]
		count++
	}
	cvar := sum / float64(count)

	return VaRResult{
		Confidence: confidence,
		VaR:        varValue,
		CVaR:       cvar,
		VaR10Day:   varValue * math.Sqrt(10), // square-root-of-time rule
		Sufficient: true,
	}
}

package metrics

import "math"

// MaxKellyPosition caps the recommended position size.
const MaxKellyPosition = 0.25

// KellyFraction returns the recommended position size as a fraction of
// capital: half-Kelly, capped at MaxKellyPosition.
// f = (p*b - q) / b, b = avgWin / |avgLoss|
// 음수 Kelly (엣지 없음) → 0
func KellyFraction(winRate, avgWin, avgLoss float64) float64 {
	if avgLoss == 0 || avgWin <= 0 {
		return 0
	}
	if winRate <= 0 || winRate >= 1 {
		return 0
	}

	b := avgWin / math.Abs(avgLoss)
	q := 1.0 - winRate

	kelly := (winRate*b - q) / b
	if kelly <= 0 {
		return 0
	}

	half := kelly / 2.0
	if half > MaxKellyPosition {
		return MaxKellyPosition
	}
	return half
}

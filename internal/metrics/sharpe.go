package metrics

import "math"

// MinSharpeObservations below this sample size Sharpe is defined as 0.0.
const MinSharpeObservations = 20

const tradingDaysPerYear = 252

// SharpeRatio computes the annualized Sharpe ratio from daily returns.
// riskFreeRate는 연율 (예: 0.04). 데이터 부족 또는 무변동 시 (0, false).
func SharpeRatio(dailyReturns []float64, riskFreeRate float64) (float64, bool) {
	if len(dailyReturns) < MinSharpeObservations {
		return 0, false
	}

	std := StdDev(dailyReturns)
	if std == 0 {
		return 0, false
	}

	annualReturn := Mean(dailyReturns) * tradingDaysPerYear
	annualVol := std * math.Sqrt(tradingDaysPerYear)

	return (annualReturn - riskFreeRate) / annualVol, true
}

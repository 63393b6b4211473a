package metrics

// Timeframe trend directions.
const (
	TrendUp       = "UP"
	TrendDown     = "DOWN"
	TrendSideways = "SIDEWAYS"
)

// TimeframeTrend classifies one timeframe from its close series:
// UP if MA20 > MA50*1.02, DOWN if MA20 < MA50*0.98, else SIDEWAYS.
// MA50을 만들 데이터가 없으면 SIDEWAYS (중립).
func TimeframeTrend(closes []float64) string {
	ma20, ok20 := SMA(closes, 20)
	ma50, ok50 := SMA(closes, 50)
	if !ok20 || !ok50 {
		return TrendSideways
	}

	switch {
	case ma20 > ma50*1.02:
		return TrendUp
	case ma20 < ma50*0.98:
		return TrendDown
	default:
		return TrendSideways
	}
}

// AlignmentResult holds the multi-timeframe agreement score.
type AlignmentResult struct {
	Daily     string  `json:"daily"`
	Weekly    string  `json:"weekly"`
	Monthly   string  `json:"monthly"`
	Direction string  `json:"direction"` // dominant non-sideways trend, or SIDEWAYS
	Score     float64 `json:"score"`
}

// TrendAlignment scores agreement across daily/weekly/monthly trends.
//
// 고정 조합 테이블:
//   3개 동일 추세 (UP/DOWN)        → 1.00
//   2개 동일 추세 + 1개 SIDEWAYS   → 0.75
//   1개 추세 + 2개 SIDEWAYS        → 0.66
//   3개 모두 SIDEWAYS              → 0.50
//   2개 동일 추세 + 1개 반대 추세  → 0.33
//   그 외 (추세 상충)              → 0.00
func TrendAlignment(daily, weekly, monthly string) AlignmentResult {
	r := AlignmentResult{Daily: daily, Weekly: weekly, Monthly: monthly}

	up, down, sideways := 0, 0, 0
	for _, t := range []string{daily, weekly, monthly} {
		switch t {
		case TrendUp:
			up++
		case TrendDown:
			down++
		default:
			sideways++
		}
	}

	switch {
	case up == 3 || down == 3:
		r.Score = 1.0
	case (up == 2 || down == 2) && sideways == 1:
		r.Score = 0.75
	case (up == 1 || down == 1) && sideways == 2:
		r.Score = 0.66
	case sideways == 3:
		r.Score = 0.5
	case up == 2 || down == 2: // 2 agree + 1 opposite
		r.Score = 0.33
	default: // 1 up + 1 down (+1 sideways) — conflicting
		r.Score = 0.0
	}

	switch {
	case up > down:
		r.Direction = TrendUp
	case down > up:
		r.Direction = TrendDown
	default:
		r.Direction = TrendSideways
	}

	return r
}

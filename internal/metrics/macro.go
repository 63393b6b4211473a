package metrics

// =============================================================================
// Yield Curve
// =============================================================================

// Yield curve status by 10y-2y spread.
const (
	CurveInverted   = "INVERTED"   // < 0bps, recession signal
	CurveFlattening = "FLATTENING" // [0, 25)
	CurveNormal     = "NORMAL"     // [25, 150)
	CurveSteep      = "STEEP"      // >= 150
)

// YieldCurveResult classifies the 10y-2y treasury spread.
type YieldCurveResult struct {
	SpreadBps float64 `json:"spread_bps"`
	Status    string  `json:"status"`
}

// YieldCurveSpread computes spread = yield10y - yield2y in basis points.
// yields are percent values (4.5 = 4.5%).
func YieldCurveSpread(yield2y, yield10y float64) YieldCurveResult {
	spreadBps := (yield10y - yield2y) * 100.0

	var status string
	switch {
	case spreadBps < 0:
		status = CurveInverted
	case spreadBps < 25:
		status = CurveFlattening
	case spreadBps < 150:
		status = CurveNormal
	default:
		status = CurveSteep
	}

	return YieldCurveResult{SpreadBps: spreadBps, Status: status}
}

// =============================================================================
// CDS Spread
// =============================================================================

// CDS credit risk levels.
const (
	CDSLow      = "LOW"      // < 100bps
	CDSModerate = "MODERATE" // [100, 200)
	CDSHigh     = "HIGH"     // [200, 500), strong SELL bias
	CDSCritical = "CRITICAL" // >= 500, forces SELL
)

// CDSResult classifies a credit default swap spread.
type CDSResult struct {
	SpreadBps          float64 `json:"spread_bps"`
	Level              string  `json:"level"`
	ConfidenceModifier float64 `json:"confidence_modifier"` // LOW +0.10, MODERATE 0.0
}

// CDSRisk classifies a CDS spread (bps) into a credit risk level.
// CRITICAL은 도메인 레벨에서 무조건 SELL 강제
func CDSRisk(spreadBps float64) CDSResult {
	r := CDSResult{SpreadBps: spreadBps}
	switch {
	case spreadBps < 100:
		r.Level = CDSLow
		r.ConfidenceModifier = 0.10
	case spreadBps < 200:
		r.Level = CDSModerate
	case spreadBps < 500:
		r.Level = CDSHigh
	default:
		r.Level = CDSCritical
	}
	return r
}

// =============================================================================
// Commodity / Currency Regimes
// =============================================================================

// Oil price regimes (WTI, USD).
const (
	OilHigh   = "HIGH"   // > $90
	OilNormal = "NORMAL" // [$60, $90]
	OilLow    = "LOW"    // < $60
)

// OilRegime classifies the oil price environment.
func OilRegime(price float64) string {
	switch {
	case price > 90:
		return OilHigh
	case price < 60:
		return OilLow
	default:
		return OilNormal
	}
}

// Dollar index regimes (DXY).
const (
	DollarStrong  = "STRONG"  // > 105
	DollarNeutral = "NEUTRAL" // [95, 105]
	DollarWeak    = "WEAK"    // < 95
)

// DollarRegime classifies the dollar strength environment.
func DollarRegime(dxy float64) string {
	switch {
	case dxy > 105:
		return DollarStrong
	case dxy < 95:
		return DollarWeak
	default:
		return DollarNeutral
	}
}

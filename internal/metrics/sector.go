package metrics

// Sector disruption verdicts.
const (
	DisruptionThreat     = "THREAT"     // score >= 120
	DisruptionMonitoring = "MONITORING" // (80, 120)
	DisruptionSafe       = "SAFE"       // <= 80
)

// DisruptionVerdict classifies a 0-200 sector disruption score
// (100 = 기준선).
func DisruptionVerdict(score float64) string {
	switch {
	case score >= 120:
		return DisruptionThreat
	case score <= 80:
		return DisruptionSafe
	default:
		return DisruptionMonitoring
	}
}

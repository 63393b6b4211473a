package metrics

import "strings"

// Regulatory risk severities.
const (
	RegSeverityCritical = "CRITICAL" // forces SELL at the domain level
	RegSeverityHigh     = "HIGH"
	RegSeverityModerate = "MODERATE"
	RegSeverityLow      = "LOW"
	RegSeverityNone     = "NONE"
)

// litigationKeywords match lawsuit/litigation coverage.
var litigationKeywords = []string{
	"lawsuit",
	"litigation",
	"class action",
	"court ruling",
	"settlement",
	"sued",
	"legal action",
	"antitrust",
}

// regulatoryKeywords match regulator/enforcement coverage.
var regulatoryKeywords = []string{
	"sec investigation",
	"ftc",
	"doj",
	"regulator",
	"regulatory",
	"probe",
	"subpoena",
	"fine",
	"penalty",
	"compliance violation",
	"investigation",
}

// RegulatoryResult holds keyword-matched legal/regulatory risk counts.
type RegulatoryResult struct {
	LitigationCount int    `json:"litigation_count"`
	RegulatoryCount int    `json:"regulatory_count"`
	Total           int    `json:"total"`
	Severity        string `json:"severity"`
}

// RegulatoryRisk scans headlines for litigation and regulatory keywords.
// 대소문자 무시 부분 일치; 기사 하나는 어휘당 최대 1회만 카운트.
// CRITICAL: total >= 5 또는 litigation >= 3 (도메인 레벨 SELL 강제)
func RegulatoryRisk(headlines []string) RegulatoryResult {
	var r RegulatoryResult

	for _, headline := range headlines {
		lower := strings.ToLower(headline)
		if matchesAny(lower, litigationKeywords) {
			r.LitigationCount++
		}
		if matchesAny(lower, regulatoryKeywords) {
			r.RegulatoryCount++
		}
	}

	r.Total = r.LitigationCount + r.RegulatoryCount

	switch {
	case r.Total >= 5 || r.LitigationCount >= 3:
		r.Severity = RegSeverityCritical
	case r.Total >= 3:
		r.Severity = RegSeverityHigh
	case r.Total >= 2:
		r.Severity = RegSeverityModerate
	case r.Total >= 1:
		r.Severity = RegSeverityLow
	default:
		r.Severity = RegSeverityNone
	}

	return r
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

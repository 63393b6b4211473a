package metrics

// PEG classification bands.
const (
	PEGExtremelyUndervalued = "EXTREMELY_UNDERVALUED" // < 0.5
	PEGUndervalued          = "UNDERVALUED"           // < 1.0
	PEGFair                 = "FAIR"                  // <= 1.5
	PEGSlightlyOvervalued   = "SLIGHTLY_OVERVALUED"   // < 2.0
	PEGOvervalued           = "OVERVALUED"            // >= 2.0
	PEGNotApplicable        = "N/A"                   // growth too low
)

// PEGVeryHigh is the sentinel value when growth is too low for a
// meaningful PEG (성장률 1% 미만이면 PEG 정의 불가).
const PEGVeryHigh = 999.0

// PEGResult holds the growth-adjusted valuation.
type PEGResult struct {
	Value          float64 `json:"value"`
	Classification string  `json:"classification"`
	Defined        bool    `json:"defined"`
}

// PEGRatio computes P/E ÷ growth%. growth is a fraction (0.40 = 40%).
func PEGRatio(peRatio, growth float64) PEGResult {
	growthPct := growth * 100.0
	if growthPct < 1.0 {
		return PEGResult{Value: PEGVeryHigh, Classification: PEGNotApplicable}
	}

	peg := peRatio / growthPct

	var class string
	switch {
	case peg < 0.5:
		class = PEGExtremelyUndervalued
	case peg < 1.0:
		class = PEGUndervalued
	case peg <= 1.5:
		class = PEGFair
	case peg < 2.0:
		class = PEGSlightlyOvervalued
	default:
		class = PEGOvervalued
	}

	return PEGResult{Value: peg, Classification: class, Defined: true}
}

// Peer standing relative to sector benchmarks.
const (
	PeerLeader      = "LEADER"
	PeerCompetitive = "COMPETITIVE"
	PeerLagging     = "LAGGING"
)

// PeerResult compares a company's fundamentals against sector benchmarks.
type PeerResult struct {
	Score    int    `json:"score"` // -3 .. +3
	Standing string `json:"standing"`
}

// ComparePeers scores valuation (lower P/E better), growth and margin
// (higher better) against the sector, with a 10% tolerance band per
// dimension. 합계 점수 ≥2 LEADER, ≤-2 LAGGING.
func ComparePeers(pe, growth, margin, sectorPE, sectorGrowth, sectorMargin float64) PeerResult {
	score := 0
	score -= compareDim(pe, sectorPE)          // lower is better
	score += compareDim(growth, sectorGrowth)  // higher is better
	score += compareDim(margin, sectorMargin)  // higher is better

	standing := PeerCompetitive
	switch {
	case score >= 2:
		standing = PeerLeader
	case score <= -2:
		standing = PeerLagging
	}

	return PeerResult{Score: score, Standing: standing}
}

// compareDim returns +1 if v beats the benchmark by >10%, -1 if it trails
// by >10%, 0 within the tolerance band.
func compareDim(v, benchmark float64) int {
	if benchmark == 0 {
		return 0
	}
	switch {
	case v > benchmark*1.10:
		return 1
	case v < benchmark*0.90:
		return -1
	default:
		return 0
	}
}

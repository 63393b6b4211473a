package metrics

// Fear & Greed classifications.
const (
	ExtremeFear  = "EXTREME_FEAR"  // < 25, contrarian BUY
	Fear         = "FEAR"          // < 45
	Neutral      = "NEUTRAL"       // < 56
	Greed        = "GREED"         // < 76
	ExtremeGreed = "EXTREME_GREED" // >= 76, contrarian SELL
)

// Contrarian signals derived from the index extremes.
const (
	ContrarianBuy  = "CONTRARIAN_BUY"
	ContrarianSell = "CONTRARIAN_SELL"
	ContrarianNone = "NONE"
)

// FearGreedResult classifies a 0-100 fear & greed index.
type FearGreedResult struct {
	Index          float64 `json:"index"`
	Classification string  `json:"classification"`
	Signal         string  `json:"signal"`
}

// FearGreed classifies the market mood index.
// 극단 구간은 역발상 시그널로 해석
func FearGreed(index float64) FearGreedResult {
	r := FearGreedResult{Index: index, Signal: ContrarianNone}
	switch {
	case index < 25:
		r.Classification = ExtremeFear
		r.Signal = ContrarianBuy
	case index < 45:
		r.Classification = Fear
	case index < 56:
		r.Classification = Neutral
	case index < 76:
		r.Classification = Greed
	default:
		r.Classification = ExtremeGreed
		r.Signal = ContrarianSell
	}
	return r
}

package contracts

// MarketSnapshot carries the per-domain metric bundles for one ticker.
// ⭐ SSOT: scorer 입력 데이터 계약은 여기서만 정의
// Immutable during a debate; scorers read it concurrently without locking.
// Optional fields are pointers; nil means "use the documented neutral
// default" — a contract, not a silent failure.
type MarketSnapshot struct {
	Ticker string `json:"ticker"`

	Technical   TechnicalMetrics   `json:"technical"`
	Fundamental FundamentalMetrics `json:"fundamental"`
	Macro       MacroMetrics       `json:"macro"`
	Risk        RiskMetrics        `json:"risk"`
	Sentiment   SentimentMetrics   `json:"sentiment"`
	News        NewsMetrics        `json:"news"`
	Sector      SectorMetrics      `json:"sector"`
}

// TechnicalMetrics feeds the technical scorer.
type TechnicalMetrics struct {
	Price       float64  `json:"price"`
	RSI         *float64 `json:"rsi,omitempty"`          // default 50 (neutral)
	MA20        *float64 `json:"ma20,omitempty"`         // default Price
	MA50        *float64 `json:"ma50,omitempty"`         // default Price
	VolumeRatio *float64 `json:"volume_ratio,omitempty"` // vs 20d avg, default 1.0

	// Bar history, oldest first. Closes drives Bollinger Bands;
	// Highs/Lows drive pivot support/resistance.
	Closes []float64 `json:"closes,omitempty"`
	Highs  []float64 `json:"highs,omitempty"`
	Lows   []float64 `json:"lows,omitempty"`

	// Per-timeframe close series for multi-timeframe trend alignment.
	WeeklyCloses  []float64 `json:"weekly_closes,omitempty"`
	MonthlyCloses []float64 `json:"monthly_closes,omitempty"`
}

// FundamentalMetrics feeds the fundamental scorer.
// Growth and margins are fractions (0.15 = 15%).
type FundamentalMetrics struct {
	PERatio       *float64 `json:"pe_ratio,omitempty"`       // default 20
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"` // default 0.05
	ProfitMargin  *float64 `json:"profit_margin,omitempty"`  // default 0.10
	DebtToEquity  *float64 `json:"debt_to_equity,omitempty"` // default 0.50

	// Sector benchmarks for peer comparison
	SectorPE     *float64 `json:"sector_pe,omitempty"`     // default 20
	SectorGrowth *float64 `json:"sector_growth,omitempty"` // default 0.05
	SectorMargin *float64 `json:"sector_margin,omitempty"` // default 0.10
}

// MacroMetrics feeds the macro scorer. Rates are percent values.
type MacroMetrics struct {
	FedRate      *float64 `json:"fed_rate,omitempty"`      // default 4.50
	FedDirection string   `json:"fed_direction,omitempty"` // hiking|cutting|holding (any case), default holding
	CPI          *float64 `json:"cpi,omitempty"`           // YoY %, default 3.0
	GDPGrowth    *float64 `json:"gdp_growth,omitempty"`    // %, default 2.0
	Unemployment *float64 `json:"unemployment,omitempty"`  // %, default 4.0

	Yield2Y  *float64 `json:"yield_2y,omitempty"`  // %, default 4.00
	Yield10Y *float64 `json:"yield_10y,omitempty"` // %, default 4.50

	OilPrice    *float64 `json:"oil_price,omitempty"`    // WTI USD, default 75
	DollarIndex *float64 `json:"dollar_index,omitempty"` // DXY, default 100

	// Regime adjustments apply differently per company profile
	EnergySector bool `json:"energy_sector,omitempty"`
	Exporter     bool `json:"exporter,omitempty"`
}

// RiskMetrics feeds the risk scorer.
type RiskMetrics struct {
	DailyReturns []float64 `json:"daily_returns,omitempty"` // fractions, oldest first
	RiskFreeRate *float64  `json:"risk_free_rate,omitempty"` // annual fraction, default 0.04

	Volatility  *float64 `json:"volatility,omitempty"`   // annualized fraction, default 0.25
	Beta        *float64 `json:"beta,omitempty"`         // default 1.0
	MaxDrawdown *float64 `json:"max_drawdown,omitempty"` // negative fraction, default -0.05
	CDSSpread   *float64 `json:"cds_spread,omitempty"`   // bps, default 150 (MODERATE)

	// Kelly sizing inputs
	WinRate *float64 `json:"win_rate,omitempty"`  // default 0.5
	AvgWin  *float64 `json:"avg_win,omitempty"`   // fraction, default 0.05
	AvgLoss *float64 `json:"avg_loss,omitempty"`  // negative fraction, default -0.05
}

// SentimentMetrics feeds the sentiment scorer. Scores are in [-1, 1].
type SentimentMetrics struct {
	TwitterSentiment *float64 `json:"twitter_sentiment,omitempty"` // default 0
	RedditSentiment  *float64 `json:"reddit_sentiment,omitempty"`  // default 0
	Change24H        *float64 `json:"change_24h,omitempty"`        // default 0
	VolumeLevel      string   `json:"volume_level,omitempty"`      // high|normal|low, default normal
	Trending         bool     `json:"trending,omitempty"`
	FearGreedIndex   *float64 `json:"fear_greed_index,omitempty"` // 0-100, default 50
	BullishRatio     *float64 `json:"bullish_ratio,omitempty"`    // default 0.5
}

// NewsMetrics feeds the news scorer.
type NewsMetrics struct {
	Headlines    []string `json:"headlines,omitempty"`
	Sentiment    *float64 `json:"sentiment,omitempty"` // [-1,1], default 0
	Trend        string   `json:"trend,omitempty"`     // improving|deteriorating|stable
	HasEmergency bool     `json:"has_emergency,omitempty"`
}

// SectorMetrics feeds the sector-competition scorer.
type SectorMetrics struct {
	// Role of this ticker in the sector disruption landscape.
	// incumbent|challenger|partner|alternative|infrastructure.
	// Empty = not covered; scorer abstains with a low-confidence HOLD.
	Role string `json:"role,omitempty"`

	// Disruption intensity, 0-200 scale (100 = baseline).
	DisruptionScore *float64 `json:"disruption_score,omitempty"` // default 100
}

// FloatOr resolves an optional numeric field against its documented default.
func FloatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

// StringOr resolves an optional string field against its documented default.
func StringOr(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// F is a convenience constructor for optional float fields in tests and
// snapshot builders.
func F(v float64) *float64 {
	return &v
}

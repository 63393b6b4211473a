package scorers

import (
	"fmt"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/logger"
)

// Social volume levels reported by upstream collectors.
const (
	VolumeHigh = "high"
	VolumeLow  = "low"
)

// SentimentScorer votes on crowd mood: Twitter/Reddit blend, 24h swing,
// trending status and the fear & greed index. 극단 구간은 역발상으로 처리.
type SentimentScorer struct {
	logger *logger.Logger
}

// NewSentimentScorer creates a sentiment scorer.
func NewSentimentScorer(log *logger.Logger) *SentimentScorer {
	return &SentimentScorer{logger: log}
}

// Domain implements Scorer.
func (s *SentimentScorer) Domain() contracts.DomainID {
	return contracts.DomainSentiment
}

const sentimentFallbackConfidence = 0.50

// Score implements Scorer.
func (s *SentimentScorer) Score(snap *contracts.MarketSnapshot) contracts.Vote {
	return guard(s.logger, contracts.DomainSentiment, sentimentFallbackConfidence, func() contracts.Vote {
		m := snap.Sentiment

		twitter := contracts.FloatOr(m.TwitterSentiment, 0)
		reddit := contracts.FloatOr(m.RedditSentiment, 0)
		change24h := contracts.FloatOr(m.Change24H, 0)
		bullishRatio := contracts.FloatOr(m.BullishRatio, 0.5)

		// Twitter carries more weight than Reddit in the blend.
		overall := twitter*0.6 + reddit*0.4
		fg := metrics.FearGreed(contracts.FloatOr(m.FearGreedIndex, 50))

		rules := []rule{
			{
				name: "euphoric_volume",
				when: func(*cascadeState) bool { return overall > 0.6 && m.VolumeLevel == VolumeHigh },
				apply: func(st *cascadeState) {
					conf := 0.70 + (overall-0.6)*0.5
					if conf > 0.85 {
						conf = 0.85
					}
					st.decide(contracts.ActionBuy, conf,
						fmt.Sprintf("strongly bullish chatter (%.2f) on high volume", overall))
				},
			},
			{
				name: "fear_capitulation",
				when: func(*cascadeState) bool { return fg.Index < 25 && overall > 0 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.78,
						"extreme fear while the crowd stays constructive")
				},
			},
			{
				name: "momentum_surge",
				when: func(*cascadeState) bool { return m.Trending && change24h > 0.3 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionBuy, 0.75,
						fmt.Sprintf("trending with sentiment up %.0f%% in 24h", change24h*100))
				},
			},
			{
				name: "bearish_consensus",
				when: func(*cascadeState) bool { return overall < -0.5 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.80,
						fmt.Sprintf("broadly bearish chatter (%.2f)", overall))
				},
			},
			{
				name: "crowded_long",
				when: func(*cascadeState) bool { return fg.Index > 85 && bullishRatio > 0.90 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.82,
						"everyone is already long, contrarian exit")
				},
			},
			{
				name: "sentiment_collapse",
				when: func(*cascadeState) bool { return change24h < -0.4 },
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionSell, 0.75,
						fmt.Sprintf("sentiment down %.0f%% in 24h", -change24h*100))
				},
			},
			{
				name: "muted_crowd",
				apply: func(st *cascadeState) {
					st.decide(contracts.ActionHold, 0.60, "social signal too weak to act on")
				},
			},
			{
				name: "contrarian_buy",
				when: func(*cascadeState) bool { return fg.Signal == metrics.ContrarianBuy },
				apply: func(st *cascadeState) {
					if st.isHold() {
						st.overrideHold(contracts.ActionBuy, 0.72, "extreme fear, contrarian entry")
					} else if st.is(contracts.ActionBuy) {
						st.adjust(0.10, "extreme fear confirms contrarian entry")
					}
				},
			},
			{
				name: "contrarian_sell",
				when: func(*cascadeState) bool { return fg.Signal == metrics.ContrarianSell },
				apply: func(st *cascadeState) {
					if st.isHold() {
						st.overrideHold(contracts.ActionSell, 0.70, "extreme greed, contrarian exit")
					} else if st.is(contracts.ActionSell) {
						st.adjust(0.10, "extreme greed confirms contrarian exit")
					}
				},
			},
			{
				name: "trending_boost",
				when: func(st *cascadeState) bool { return m.Trending && st.is(contracts.ActionBuy) },
				apply: func(st *cascadeState) {
					st.adjust(0.05, "")
				},
			},
			{
				name: "thin_volume",
				when: func(st *cascadeState) bool { return m.VolumeLevel == VolumeLow && st.decided },
				apply: func(st *cascadeState) {
					st.adjust(-0.10, "low social volume, signal less reliable")
				},
			},
		}

		// Sentiment is noisy so its ceiling sits below the other domains.
		st := runCascade(rules, 0.40, 0.90)

		return st.vote(contracts.DomainSentiment, map[string]interface{}{
			"overall":       overall,
			"twitter":       twitter,
			"reddit":        reddit,
			"change_24h":    change24h,
			"volume_level":  m.VolumeLevel,
			"trending":      m.Trending,
			"fear_greed":    fg,
			"bullish_ratio": bullishRatio,
		})
	})
}

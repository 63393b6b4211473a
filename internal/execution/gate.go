package execution

import (
	"fmt"
	"time"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/metrics"
	"github.com/wonny/warroom/pkg/config"
	"github.com/wonny/warroom/pkg/logger"
)

// =============================================================================
// Confidence Gate - 합의 → 주문 관문
// =============================================================================

// GateMode controls what happens when a consensus fails the check.
type GateMode string

const (
	GateModeShadow  GateMode = "shadow"  // 로깅만, 실제 차단 안함
	GateModeEnforce GateMode = "enforce" // 실제 차단
	GateModeOff     GateMode = "off"     // 비활성화
)

// Gate sits between consensus and execution: a decision only becomes an
// order when its confidence clears the configured threshold.
// ⭐ SSOT: 실행 전 신뢰도 체크는 여기서만
type Gate struct {
	mode      GateMode
	threshold float64
	logger    *logger.Logger
	runID     string
}

// NewGate builds the gate from config. GATE_ENFORCE=false runs in shadow
// mode: every consensus passes but would-be blocks are logged for tuning.
func NewGate(cfg *config.Config, log *logger.Logger) *Gate {
	mode := GateModeShadow
	if cfg.Consensus.GateEnforce {
		mode = GateModeEnforce
	}
	return &Gate{
		mode:      mode,
		threshold: cfg.Consensus.GateThreshold,
		logger:    log.WithField("module", "gate"),
		runID:     fmt.Sprintf("gate_%s", time.Now().Format("20060102_150405")),
	}
}

// GateDecision is the gate's verdict on one debate result.
type GateDecision struct {
	Ticker     string           `json:"ticker"`
	Action     contracts.Action `json:"action"`
	Confidence float64          `json:"confidence"`
	Threshold  float64          `json:"threshold"`
	Mode       GateMode         `json:"mode"`

	Passed     bool `json:"passed"`
	WouldBlock bool `json:"would_block"` // shadow 모드에서 차단됐을지 여부

	// PositionFraction is the half-Kelly sized portfolio fraction for a
	// passing BUY. Zero for SELL (full exit) and HOLD (no order).
	PositionFraction float64 `json:"position_fraction"`

	Message   string    `json:"message"`
	CheckedAt time.Time `json:"checked_at"`
	RunID     string    `json:"run_id"`
}

// Check applies the confidence threshold to a debate result and sizes
// the position for passing BUY decisions.
func (g *Gate) Check(result *contracts.DebateResult, risk contracts.RiskMetrics) *GateDecision {
	d := &GateDecision{
		Ticker:     result.Ticker,
		Action:     result.Consensus.Action,
		Confidence: result.Consensus.Confidence,
		Threshold:  g.threshold,
		Mode:       g.mode,
		CheckedAt:  time.Now(),
		RunID:      g.runID,
	}

	if g.mode == GateModeOff {
		d.Passed = true
		d.Message = "gate disabled"
		d.PositionFraction = sizePosition(d, risk)
		return d
	}

	if d.Action == contracts.ActionHold {
		d.Passed = false
		d.Message = "consensus is HOLD, nothing to execute"
		return d
	}

	if d.Confidence >= g.threshold {
		d.Passed = true
		d.Message = fmt.Sprintf("confidence %.2f clears threshold %.2f", d.Confidence, g.threshold)
		d.PositionFraction = sizePosition(d, risk)
		return d
	}

	// Below threshold
	d.WouldBlock = true
	d.Message = fmt.Sprintf("confidence %.2f below threshold %.2f", d.Confidence, g.threshold)

	switch g.mode {
	case GateModeShadow:
		d.Passed = true
		d.PositionFraction = sizePosition(d, risk)
		g.logger.WithFields(map[string]interface{}{
			"run_id":     g.runID,
			"mode":       "shadow",
			"ticker":     d.Ticker,
			"action":     d.Action,
			"confidence": d.Confidence,
			"threshold":  g.threshold,
		}).Warn("🚨 SHADOW BLOCK: Would have blocked this decision")

	case GateModeEnforce:
		d.Passed = false
		g.logger.WithFields(map[string]interface{}{
			"run_id":     g.runID,
			"mode":       "enforce",
			"ticker":     d.Ticker,
			"action":     d.Action,
			"confidence": d.Confidence,
			"threshold":  g.threshold,
		}).Error("🚫 ENFORCE BLOCK: Decision below confidence threshold")
	}

	return d
}

// sizePosition computes the half-Kelly portfolio fraction, scaled by
// consensus confidence. Only BUY opens a position.
func sizePosition(d *GateDecision, risk contracts.RiskMetrics) float64 {
	if d.Action != contracts.ActionBuy {
		return 0
	}
	kelly := metrics.KellyFraction(
		contracts.FloatOr(risk.WinRate, 0.5),
		contracts.FloatOr(risk.AvgWin, 0.05),
		contracts.FloatOr(risk.AvgLoss, -0.05),
	)
	return kelly * d.Confidence
}

// Mode returns the current gate mode.
func (g *Gate) Mode() GateMode {
	return g.mode
}

// SetMode changes the gate mode at runtime.
func (g *Gate) SetMode(mode GateMode) {
	g.mode = mode
	g.logger.WithFields(map[string]interface{}{
		"mode": mode,
	}).Info("Gate mode changed")
}

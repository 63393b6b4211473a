package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/engine"
	"github.com/wonny/warroom/internal/execution"
	"github.com/wonny/warroom/internal/session"
	"github.com/wonny/warroom/pkg/config"
	"github.com/wonny/warroom/pkg/database"
	"github.com/wonny/warroom/pkg/logger"
)

// debateCmd represents the debate command
var debateCmd = &cobra.Command{
	Use:   "debate [ticker]",
	Short: "단일 종목 토론 실행",
	Long: `하나의 종목에 대해 전체 스코어러 토론을 실행합니다.

이 명령어는:
- 7개 도메인 스코어러 투표
- 가중 합의 산출
- 실행 게이트 판정

스냅샷 파일이 없으면 모든 스코어러가 중립 기본값으로 투표합니다.

Example:
  go run ./cmd/warroom debate AAPL
  go run ./cmd/warroom debate AAPL --snapshot snapshot.json
  go run ./cmd/warroom debate AAPL --save`,
	Args: cobra.ExactArgs(1),
	RunE: runDebate,
}

var (
	snapshotFile string
	saveSession  bool
)

func init() {
	rootCmd.AddCommand(debateCmd)

	// Flags
	debateCmd.Flags().StringVar(&snapshotFile, "snapshot", "", "마켓 스냅샷 JSON 파일")
	debateCmd.Flags().BoolVar(&saveSession, "save", false, "세션을 데이터베이스에 저장")
}

func runDebate(cmd *cobra.Command, args []string) error {
	ticker := strings.ToUpper(args[0])

	fmt.Printf("=== War Room Debate: %s ===\n\n", ticker)

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Build snapshot
	snap, err := loadSnapshot(ticker)
	if err != nil {
		return err
	}

	// 4. Run the debate
	eng := engine.New(cfg, log)
	gate := execution.NewGate(cfg, log)

	result := eng.Debate(snap)
	decision := gate.Check(result, snap.Risk)

	// 5. Print votes
	fmt.Println("Votes:")
	for _, v := range result.Votes {
		fmt.Printf("  %-12s %-4s %.2f  %s\n", v.Domain, v.Action, v.Confidence, v.Rationale)
	}

	// 6. Print consensus
	fmt.Println("\nConsensus:")
	fmt.Printf("  Action:     %s\n", result.Consensus.Action)
	fmt.Printf("  Confidence: %.2f\n", result.Consensus.Confidence)
	for action, score := range result.Consensus.ScoreBreakdown {
		fmt.Printf("  Score %-4s  %.4f\n", action, score)
	}

	// 7. Print gate decision
	fmt.Println("\nExecution gate:")
	fmt.Printf("  Mode:      %s\n", decision.Mode)
	fmt.Printf("  Passed:    %v\n", decision.Passed)
	if decision.WouldBlock {
		fmt.Println("  (shadow mode: would block if enforcing)")
	}
	if decision.PositionFraction > 0 {
		fmt.Printf("  Position:  %.1f%% of capital\n", decision.PositionFraction*100)
	}
	fmt.Printf("  Message:   %s\n", decision.Message)

	// 8. Optionally persist
	if saveSession {
		if cfg.Database.URL == "" {
			return fmt.Errorf("--save requires DATABASE_URL")
		}

		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		repo := session.NewRepository(db.Pool)
		id, err := repo.Save(context.Background(), result)
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		fmt.Printf("\n✅ Session saved (id=%d)\n", id)
	}

	return nil
}

// loadSnapshot reads the snapshot file when given, otherwise returns a
// bare snapshot so every scorer votes on neutral defaults.
func loadSnapshot(ticker string) (*contracts.MarketSnapshot, error) {
	if snapshotFile == "" {
		return &contracts.MarketSnapshot{Ticker: ticker}, nil
	}

	data, err := os.ReadFile(snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap contracts.MarketSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}

	// CLI ticker wins over whatever the file says
	snap.Ticker = ticker

	return &snap, nil
}

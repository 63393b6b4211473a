package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/warroom/pkg/config"
	"github.com/wonny/warroom/pkg/database"
	"github.com/wonny/warroom/pkg/redis"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "시스템 상태 점검",
	Long: `설정과 인프라 연결 상태를 점검합니다.

표시 정보:
- 합의 엔진 설정 (도메인 가중치, 게이트 임계치/모드)
- 데이터베이스 연결 및 풀 상태
- Redis 연결 상태
- 워치리스트 스케줄

Example:
  go run ./cmd/warroom status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== War Room Status ===")
	fmt.Println()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Consensus configuration
	fmt.Println("⚖️  Consensus")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("%-15s %10.2f\n", "technical:", cfg.Consensus.WeightTechnical)
	fmt.Printf("%-15s %10.2f\n", "fundamental:", cfg.Consensus.WeightFundamental)
	fmt.Printf("%-15s %10.2f\n", "macro:", cfg.Consensus.WeightMacro)
	fmt.Printf("%-15s %10.2f\n", "risk:", cfg.Consensus.WeightRisk)
	fmt.Printf("%-15s %10.2f\n", "sentiment:", cfg.Consensus.WeightSentiment)
	fmt.Printf("%-15s %10.2f\n", "news:", cfg.Consensus.WeightNews)
	fmt.Printf("%-15s %10.2f\n", "sector:", cfg.Consensus.WeightSector)
	fmt.Println()

	gateMode := "shadow"
	if cfg.Consensus.GateEnforce {
		gateMode = "enforce"
	}
	fmt.Println("🚦 Execution gate")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("%-15s %10s\n", "mode:", gateMode)
	fmt.Printf("%-15s %10.2f\n", "threshold:", cfg.Consensus.GateThreshold)
	fmt.Println()

	// 3. Database health
	fmt.Println("🗄️  Database")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if cfg.Database.URL == "" {
		fmt.Println("not configured (DATABASE_URL unset)")
	} else {
		db, err := database.New(cfg)
		if err != nil {
			fmt.Printf("❌ unreachable: %v\n", err)
		} else {
			defer db.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			health, err := db.HealthCheck(ctx)
			if err != nil {
				fmt.Printf("❌ health check failed: %v\n", err)
			} else {
				fmt.Printf("%-15s %10s\n", "healthy:", fmt.Sprintf("%v", health.Healthy))
				fmt.Printf("%-15s %10s\n", "ping:", health.ResponseTime.Round(time.Microsecond))
				fmt.Printf("%-15s %7d/%d\n", "conns:", health.Stats.TotalConns, health.Stats.MaxConns)
				fmt.Printf("%-15s %10d\n", "idle:", health.Stats.IdleConns)
			}
		}
	}
	fmt.Println()

	// 4. Redis health
	fmt.Println("⚡ Redis")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if !cfg.Redis.Enabled {
		fmt.Println("disabled (cache and rate limit are no-ops)")
	} else {
		rdb, err := redis.New(cfg)
		if err != nil {
			fmt.Printf("❌ unreachable: %v\n", err)
		} else {
			defer rdb.Close()
			fmt.Printf("%-15s %s:%s\n", "connected:", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	fmt.Println()

	// 5. Scheduler
	fmt.Println("⏰ Scheduler")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("%-15s %10v\n", "enabled:", cfg.Scheduler.Enabled)
	fmt.Printf("%-15s %s\n", "cron:", cfg.Scheduler.Cron)
	if len(cfg.Scheduler.Watchlist) > 0 {
		fmt.Printf("%-15s %v\n", "watchlist:", cfg.Scheduler.Watchlist)
	} else {
		fmt.Printf("%-15s %s\n", "watchlist:", "(empty)")
	}

	return nil
}

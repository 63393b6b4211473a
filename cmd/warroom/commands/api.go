package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/warroom/internal/api"
	"github.com/wonny/warroom/internal/api/handlers"
	"github.com/wonny/warroom/internal/engine"
	"github.com/wonny/warroom/internal/execution"
	"github.com/wonny/warroom/internal/session"
	"github.com/wonny/warroom/pkg/config"
	"github.com/wonny/warroom/pkg/database"
	"github.com/wonny/warroom/pkg/logger"
	"github.com/wonny/warroom/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 토론 실행 및 합의 조회 엔드포인트 제공
- 웹소켓 실시간 스트림 제공

Endpoints:
  GET  /health                      - Health check
  POST /api/war-room/debate         - 토론 실행
  GET  /api/war-room/consensus      - 최근 합의 조회
  GET  /api/war-room/sessions       - 세션 목록
  GET  /api/war-room/sessions/{id}  - 세션 상세
  GET  /api/war-room/stats          - 합의 통계
  GET  /api/war-room/stream         - 실시간 스트림 (websocket)

Example:
  go run ./cmd/warroom api
  go run ./cmd/warroom api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT 환경변수)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== War Room API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database (optional; the engine runs without persistence)
	var repo *session.Repository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		repo = session.NewRepository(db.Pool)
		log.Info("Connected to database")
	} else {
		log.Warn("DATABASE_URL not set, sessions will not be persisted")
	}

	// 4. Connect to Redis (no-ops when disabled)
	rdb, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	cache := redis.NewCache(rdb, "warroom")
	limiter := redis.NewRateLimiter(rdb, "warroom")

	// 5. Create consensus engine and execution gate
	eng := engine.New(cfg, log)
	gate := execution.NewGate(cfg, log)

	// 6. Create handlers
	stream := handlers.NewStreamHandler(log)
	debateHandler := handlers.NewDebateHandler(eng, gate, repo, cache, limiter, stream, log)
	sessionHandler := handlers.NewSessionHandler(repo, cache, log)

	// 7. Create router
	router := api.NewRouter(debateHandler, sessionHandler, stream, log)

	// 8. Create server
	server := api.New(cfg, log, router)

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/war-room/debate")
	fmt.Println("  GET  /api/war-room/consensus")
	fmt.Println("  GET  /api/war-room/sessions")
	fmt.Println("  GET  /api/war-room/stats")
	fmt.Println("  GET  /api/war-room/stream")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

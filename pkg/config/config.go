package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// Consensus engine
	Consensus ConsensusConfig

	// Scheduler
	Scheduler SchedulerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// ConsensusConfig holds consensus engine configuration
// 가중치는 합이 1.0일 필요 없음 (arbiter가 비율로 정규화)
type ConsensusConfig struct {
	// Domain weights for arbitration
	WeightTechnical   float64
	WeightFundamental float64
	WeightMacro       float64
	WeightRisk        float64
	WeightSentiment   float64
	WeightNews        float64
	WeightSector      float64

	// Execution gate
	GateThreshold float64 // minimum consensus confidence to act
	GateEnforce   bool    // false = shadow mode (log only)

	// Result cache
	CacheTTL time.Duration
}

// SchedulerConfig holds watchlist scheduler configuration
type SchedulerConfig struct {
	Enabled   bool
	Watchlist []string // tickers debated on schedule
	Cron      string   // cron expression (with seconds field)
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},

		// Consensus
		Consensus: ConsensusConfig{
			WeightTechnical:   getEnvAsFloat("WEIGHT_TECHNICAL", 0.15),
			WeightFundamental: getEnvAsFloat("WEIGHT_FUNDAMENTAL", 0.12),
			WeightMacro:       getEnvAsFloat("WEIGHT_MACRO", 0.14),
			WeightRisk:        getEnvAsFloat("WEIGHT_RISK", 0.15),
			WeightSentiment:   getEnvAsFloat("WEIGHT_SENTIMENT", 0.08),
			WeightNews:        getEnvAsFloat("WEIGHT_NEWS", 0.14),
			WeightSector:      getEnvAsFloat("WEIGHT_SECTOR", 0.14),
			GateThreshold:     getEnvAsFloat("GATE_THRESHOLD", 0.70),
			GateEnforce:       getEnvAsBool("GATE_ENFORCE", false),
			CacheTTL:          getEnvAsDuration("CONSENSUS_CACHE_TTL", "1m"),
		},

		// Scheduler
		Scheduler: SchedulerConfig{
			Enabled:   getEnvAsBool("SCHEDULER_ENABLED", false),
			Watchlist: getEnvAsList("WATCHLIST", ""),
			Cron:      getEnv("WATCHLIST_CRON", "0 0 16 * * 1-5"), // 평일 16시
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	// 음수 가중치는 arbiter 계약 위반
	weights := map[string]float64{
		"WEIGHT_TECHNICAL":   c.Consensus.WeightTechnical,
		"WEIGHT_FUNDAMENTAL": c.Consensus.WeightFundamental,
		"WEIGHT_MACRO":       c.Consensus.WeightMacro,
		"WEIGHT_RISK":        c.Consensus.WeightRisk,
		"WEIGHT_SENTIMENT":   c.Consensus.WeightSentiment,
		"WEIGHT_NEWS":        c.Consensus.WeightNews,
		"WEIGHT_SECTOR":      c.Consensus.WeightSector,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", name, w)
		}
	}

	if c.Consensus.GateThreshold < 0 || c.Consensus.GateThreshold > 1 {
		return fmt.Errorf("GATE_THRESHOLD must be in [0,1], got %f", c.Consensus.GateThreshold)
	}

	if c.Scheduler.Enabled && len(c.Scheduler.Watchlist) == 0 {
		return fmt.Errorf("SCHEDULER_ENABLED requires a non-empty WATCHLIST")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

func getEnvAsList(key string, defaultValue string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	if valueStr == "" {
		return nil
	}

	parts := strings.Split(valueStr, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

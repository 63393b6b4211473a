package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Consensus.GateThreshold != 0.70 {
		t.Errorf("Expected GateThreshold to be 0.70, got %f", cfg.Consensus.GateThreshold)
	}

	if cfg.Consensus.WeightTechnical != 0.15 {
		t.Errorf("Expected WeightTechnical to be 0.15, got %f", cfg.Consensus.WeightTechnical)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("WEIGHT_RISK", "0.25")
	os.Setenv("GATE_THRESHOLD", "0.80")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("WEIGHT_RISK")
		os.Unsetenv("GATE_THRESHOLD")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Consensus.WeightRisk != 0.25 {
		t.Errorf("Expected WeightRisk to be 0.25, got %f", cfg.Consensus.WeightRisk)
	}

	if cfg.Consensus.GateThreshold != 0.80 {
		t.Errorf("Expected GateThreshold to be 0.80, got %f", cfg.Consensus.GateThreshold)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateNegativeWeight(t *testing.T) {
	os.Setenv("WEIGHT_MACRO", "-0.1")
	defer os.Unsetenv("WEIGHT_MACRO")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when a domain weight is negative, got nil")
	}
}

func TestValidateGateThresholdRange(t *testing.T) {
	os.Setenv("GATE_THRESHOLD", "1.5")
	defer os.Unsetenv("GATE_THRESHOLD")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when GATE_THRESHOLD is out of range, got nil")
	}
}

func TestValidateSchedulerNeedsWatchlist(t *testing.T) {
	os.Setenv("SCHEDULER_ENABLED", "true")
	defer os.Unsetenv("SCHEDULER_ENABLED")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when scheduler is enabled without a watchlist")
	}
}

func TestGetEnvAsList(t *testing.T) {
	os.Setenv("WATCHLIST", "AAPL, MSFT ,NVDA,")
	defer os.Unsetenv("WATCHLIST")

	list := getEnvAsList("WATCHLIST", "")
	if len(list) != 3 {
		t.Fatalf("Expected 3 tickers, got %d: %v", len(list), list)
	}
	if list[1] != "MSFT" {
		t.Errorf("Expected MSFT, got %s", list[1])
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "2h")
	defer os.Unsetenv("TEST_DURATION")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	os.Setenv("TEST_FLOAT", "0.42")
	defer os.Unsetenv("TEST_FLOAT")

	value := getEnvAsFloat("TEST_FLOAT", 0.1)
	if value != 0.42 {
		t.Errorf("Expected value to be 0.42, got %f", value)
	}
}

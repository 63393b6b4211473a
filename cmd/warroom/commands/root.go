package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "warroom",
	Short: "War Room - 멀티 에이전트 합의 엔진",
	Long: `War Room Unified CLI

7개 도메인 스코어러가 투표하고 가중 합의로 매매 판단을 내립니다.

Usage:
  go run ./cmd/warroom [command]

Examples:
  go run ./cmd/warroom api
  go run ./cmd/warroom debate AAPL
  go run ./cmd/warroom scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

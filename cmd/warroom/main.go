package main

import (
	"os"

	"github.com/wonny/warroom/cmd/warroom/commands"
)

// main is the entry point for the War Room CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/warroom [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

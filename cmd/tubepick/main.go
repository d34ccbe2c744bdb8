package main

import (
	"fmt"
	"os"

	"tubepick/cmd/tubepick/cmd"
	"tubepick/internal/config"
)

func main() {
	// Configuration problems warn instead of blocking startup; commands
	// that need a key fail fast when they run.
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Copy .env.example to .env and add your API keys\n")
	}

	cmd.Execute()
}

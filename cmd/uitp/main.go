package main

import (
	"fmt"
	"os"

	"uitp/internal/cli"
	"uitp/internal/cli/commands"
	"uitp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "uitp",
		Short:   "AI-driven UI test processor",
		Long:    `A UI test processor that turns natural-language test steps into browser actions. Test cases are plain JSON files; each step is translated by a language model and executed against a live page, ending in a pass/fail verdict.`,
		Version: version,
	}

	// Load config from environment and .env
	cfg := config.Load()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

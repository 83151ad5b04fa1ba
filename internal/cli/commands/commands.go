package commands

import (
	"context"

	"uitp/internal/browser"
	"uitp/internal/cli"
	"uitp/internal/config"
	"uitp/internal/discovery"
	"uitp/internal/executor"
	"uitp/internal/llm"
	"uitp/internal/navigation"
	"uitp/internal/orchestrator"
	"uitp/internal/storage"
	"uitp/internal/translator"
	"uitp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Results *ResultsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	caseParser := discovery.NewParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	client := llm.NewClient(cfg.CohereAPIKey, cfg.CohereModel, cfg.CohereAPIURL)
	launcher := browser.NewLauncher(browser.Options{
		Headless:       cfg.Headless,
		ViewportWidth:  config.DefaultViewportWidth,
		ViewportHeight: config.DefaultViewportHeight,
		UserAgent:      config.DefaultUserAgent,
		LogEvents:      true,
	})
	orch := orchestrator.New(cfg,
		func(ctx context.Context) (orchestrator.Session, error) {
			return launcher.NewSession(ctx)
		},
		translator.New(client),
		executor.New(),
		navigation.NewController(),
	)

	return &Commands{
		Run:     NewRunCommand(cfg, scanner, filter, caseParser, orch, jsonStorage, formatter, failureViewer),
		List:    NewListCommand(cfg, scanner, filter, caseParser, formatter),
		Results: NewResultsCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run UI test cases",
		Long:  "Discover test case files and execute them against a live browser, one case at a time",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Headed {
				cfg.Headless = false
			}
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test case detection should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test cases by file name pattern (supports wildcards, e.g., '*login*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on the first case that does not pass")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	runCmd.Flags().BoolVar(&flags.Headed, "headed", false, "Run the browser with a visible window")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test cases",
		Long:  "Scan and list all test case files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test cases by file name pattern (supports wildcards, e.g., '*login*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test case detection should start")
	listCmd.Flags().BoolVarP(&flags.ShowSteps, "steps", "s", false, "Show each case's steps and expected output")
	rootCmd.AddCommand(listCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "View last run's failures interactively",
		Long:  "Display failed and errored cases from the last run in an interactive viewer",
		RunE:  c.Results.Execute,
	}
	rootCmd.AddCommand(resultsCmd)
}

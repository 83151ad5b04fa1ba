package commands

import (
	"fmt"
	"time"

	"uitp/internal/config"
	"uitp/internal/discovery"
	"uitp/internal/domain"
	"uitp/internal/orchestrator"
	"uitp/internal/storage"
	"uitp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *discovery.Parser
	orch      *orchestrator.Orchestrator
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *discovery.Parser,
	orch *orchestrator.Orchestrator,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		parser:    parser,
		orch:      orch,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := rc.config.Validate(); err != nil {
		color.Yellow("⚠ %v", err)
		return err
	}

	// Discover test case files
	testPath := rc.config.GetTestPath()
	files, err := rc.scanner.Scan(testPath)
	if err != nil {
		return err
	}
	files = rc.filter.FilterByName(files, rc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No test cases to execute")
		return nil
	}

	cases, err := rc.parser.LoadAll(files)
	if err != nil {
		return err
	}

	totalSteps := 0
	for _, tc := range cases {
		totalSteps += len(tc.Steps)
	}
	progress := ui.NewProgressBar(totalSteps)
	var okSteps, failedSteps int
	rc.orch.SetObserver(func(step string, success bool) {
		if success {
			okSteps++
		} else {
			failedSteps++
		}
		progress.Update(okSteps, failedSteps)
	})

	// Execute cases one at a time; each case gets its own browser session
	start := time.Now()
	results := make([]domain.CaseResult, 0, len(cases))
	for _, tc := range cases {
		verdict := rc.orch.Run(cmd.Context(), tc)
		results = append(results, domain.CaseResult{
			Name:     tc.Name,
			FilePath: tc.FilePath,
			URL:      tc.URL,
			Verdict:  verdict,
		})
		if rc.config.Flags.FailFast && verdict.Result != domain.VerdictPass {
			break
		}
	}
	duration := time.Since(start)
	progress.Finish()

	// Save results
	if err := rc.storage.Save(results, duration); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}
	output := domain.NewRunOutput(results, duration)

	// Record run history when a database is configured
	if rc.config.DBDSN != "" {
		if err := storage.NewHistory(rc.config.DBDSN).Record(output); err != nil {
			color.Yellow("⚠ could not record run history: %v", err)
		}
	}

	// Print stats
	rc.formatter.PrintStats(output)

	if rc.config.Flags.OpenFailures && output.Meta.PassedCases != output.Meta.TotalCases {
		return rc.viewer.View(output)
	}
	return nil
}

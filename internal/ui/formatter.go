package ui

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"uitp/internal/config"
	"uitp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintStats displays a summary table for one run's results.
func (f *Formatter) PrintStats(output *domain.RunOutput) {
	// Clear terminal screen
	fmt.Print("\033[2J\033[H")

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Test Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Test Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Errored")
	color.Red("%-27d │\n", meta.ErroredCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print per-case verdicts
	fmt.Println()
	for _, c := range output.Cases {
		switch c.Verdict.Result {
		case domain.VerdictPass:
			color.Green("✓ %s", c.Name)
		case domain.VerdictFail:
			color.Red("✗ %s (expected %q, landed on %s)", c.Name, c.Verdict.ExpectedOutput, c.Verdict.FinalURL)
		default:
			color.Red("! %s (%s)", c.Name, c.Verdict.Error)
		}
	}

	// Print summary line
	fmt.Println()
	if meta.FailedCases == 0 && meta.ErroredCases == 0 {
		color.Green("✓ All test cases passed!")
	} else {
		color.Red("✗ %d test case(s) failed, %d errored", meta.FailedCases, meta.ErroredCases)
	}
}

// PrintCaseList prints discovered test cases, optionally with their steps.
func (f *Formatter) PrintCaseList(cases []domain.TestCase, showSteps bool) {
	color.Green("Found %d test case(s):\n", len(cases))

	for i, tc := range cases {
		relPath := tc.FilePath
		if rel, err := filepath.Rel(f.config.ProjectPath, tc.FilePath); err == nil {
			relPath = rel
		}

		isLast := i == len(cases)-1
		if isLast {
			color.Cyan("└── %s (%s)", tc.Name, relPath)
		} else {
			color.Cyan("├── %s (%s)", tc.Name, relPath)
		}

		if !showSteps {
			continue
		}

		for j, step := range tc.Steps {
			isLastStep := j == len(tc.Steps)-1
			var prefix string
			switch {
			case isLast && isLastStep:
				prefix = "    └── "
			case isLast:
				prefix = "    ├── "
			case isLastStep:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(step))
		}
		fmt.Printf("%s\n", treeStepSuffix(isLast, tc.ExpectedOutput))

		if !isLast {
			fmt.Println()
		}
	}
}

func treeStepSuffix(isLastFile bool, expected string) string {
	prefix := "│   "
	if isLastFile {
		prefix = "    "
	}
	return prefix + color.WhiteString("expects: %s", expected)
}

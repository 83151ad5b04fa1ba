package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"uitp/internal/config"
	"uitp/internal/discovery"
	"uitp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *discovery.Parser
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *discovery.Parser,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		parser:    parser,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	testPath := lc.config.GetTestPath()
	files, err := lc.scanner.Scan(testPath)
	if err != nil {
		return err
	}
	files = lc.filter.FilterByName(files, lc.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	cases, err := lc.parser.LoadAll(files)
	if err != nil {
		return err
	}

	lc.formatter.PrintCaseList(cases, lc.config.Flags.ShowSteps)
	return nil
}

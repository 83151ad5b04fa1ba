package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"uitp/internal/config"
	"uitp/internal/domain"
	"uitp/internal/storage"
)

// FailureViewer displays failed and errored test cases in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays failed and errored cases in an interactive TUI
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	// Indexes into output.Cases for everything that did not pass
	var failed []int
	for i, c := range output.Cases {
		if c.Verdict.Result != domain.VerdictPass {
			failed = append(failed, i)
		}
	}
	if len(failed) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	// Track resolved cases (by position in failed) - loaded from the results file
	resolved := make(map[int]bool)
	for pos, idx := range failed {
		if output.Cases[idx].Resolved {
			resolved[pos] = true
		}
	}

	saveResolvedStatus := func() error {
		for pos, idx := range failed {
			output.Cases[idx].Resolved = resolved[pos]
		}
		return fv.storage.SaveOutput(output)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for failed cases (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(pos int) string {
		c := output.Cases[failed[pos]]
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Case %d", pos+1)
		}
		if resolved[pos] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", pos+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", pos+1, name)
	}

	updateListItem := func(pos int) {
		if pos < 0 || pos >= list.GetItemCount() {
			return
		}
		list.SetItemText(pos, getListItemText(pos), "")
	}

	for pos := range failed {
		list.AddItem(getListItemText(pos), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows file and url info)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for failure details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for pos := range failed {
			if !resolved[pos] {
				count++
			}
		}
		return count
	}

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerText := fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(failed), countUnresolved())
		headerView.SetText(headerText)
	}
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		pos := list.GetCurrentItem()
		if pos >= 0 && pos < len(failed) {
			c := output.Cases[failed[pos]]
			statsView.SetText(fv.formatCaseStats(c, pos+1))
			detailsView.SetText(fv.formatCaseDetails(c))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				pos := list.GetCurrentItem()
				if pos >= 0 && pos < len(failed) {
					resolved[pos] = !resolved[pos]
					updateListItem(pos)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Update details when list selection changes
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatCaseDetails formats one failed case for display using tview color tags ([red], [cyan], etc.)
func (fv *FailureViewer) formatCaseDetails(c domain.CaseResult) string {
	var builder strings.Builder
	v := c.Verdict

	if v.Result == domain.VerdictError {
		fmt.Fprintf(&builder, "[red]! Case errored: %s[white]\n\n", c.Name)
	} else {
		fmt.Fprintf(&builder, "[red]✗ Case failed: %s[white]\n\n", c.Name)
	}

	fmt.Fprintf(&builder, "[cyan]Start URL: %s[white]\n", c.URL)
	if v.FinalURL != "" {
		fmt.Fprintf(&builder, "[cyan]Final URL: %s[white]\n", v.FinalURL)
	}
	fmt.Fprintf(&builder, "[yellow]Expected: %s[white]\n\n", v.ExpectedOutput)

	if v.Error != "" {
		fmt.Fprintf(&builder, "[yellow]Error:[white]\n%s\n\n", v.Error)
	}

	if len(v.StepResults) > 0 {
		fmt.Fprintf(&builder, "[yellow]Steps:[white]\n")
		for _, s := range v.StepResults {
			if s.Success {
				fmt.Fprintf(&builder, "  [green]✓[white] %s\n", s.Step)
			} else {
				fmt.Fprintf(&builder, "  [red]✗[white] %s\n", s.Step)
			}
		}
		fmt.Fprintf(&builder, "\n")
	}

	if v.ContentPreview != "" {
		fmt.Fprintf(&builder, "[yellow]Final page content:[white]\n%s\n", v.ContentPreview)
	}

	return builder.String()
}

// formatCaseStats formats the stats header for a failed case
func (fv *FailureViewer) formatCaseStats(c domain.CaseResult, number int) string {
	path := c.FilePath
	if path == "" {
		path = "Unknown path"
	}
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Case %d", number)
	}
	return fmt.Sprintf("[cyan]file:[white] [yellow]%s[white]::[yellow]%s[white]\n", path, name)
}

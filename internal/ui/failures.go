package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fpt/internal/domain"
	"fpt/internal/storage"
)

// FailureViewer browses failed fixtures of the last run in a TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays failed fixtures. R toggles the resolved mark, which is
// written back through storage.
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No fixture failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Fixture Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] resolve, → details, ← back, Ctrl+C exit ",
			len(results.Details), countUnresolved(results.Details)))
	}
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results.Details) {
			return
		}
		failure := results.Details[index]
		statsView.SetText(formatFailureStats(failure))
		detailsView.SetText(formatFailureDetails(failure))
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() != 'r' && event.Rune() != 'R' {
				return event
			}
			index := list.GetCurrentItem()
			if index >= 0 && index < len(results.Details) {
				results.Details[index].Resolved = !results.Details[index].Resolved
				list.SetItemText(index, listItemText(results.Details[index], index), "")
				updateHeader()
				updateDetails()
				// a failed write only loses the resolved mark
				_ = fv.storage.SaveOutput(results)
			}
			return nil
		}
		return event
	})

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

	updateHeader()
	updateDetails()

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)
	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func countUnresolved(failures []domain.Failure) int {
	count := 0
	for _, f := range failures {
		if !f.Resolved {
			count++
		}
	}
	return count
}

func listItemText(failure domain.Failure, index int) string {
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.Fixture)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.Fixture)
}

// formatFailureStats formats the header line using tview color tags
func formatFailureStats(failure domain.Failure) string {
	dir := failure.Dir
	if dir == "" {
		dir = "unknown dir"
	}
	return fmt.Sprintf("[cyan]fixture:[white] [yellow]%s[white] (%s) [cyan]status:[white] %s\n",
		failure.Fixture, tview.Escape(dir), failure.Status)
}

// formatFailureDetails formats input, expected and actual output using tview color tags
func formatFailureDetails(failure domain.Failure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", failure.Fixture)
	fmt.Fprintf(&b, "[yellow]Input:[white]\n%s\n\n", tview.Escape(failure.Input))
	fmt.Fprintf(&b, "[yellow]Expected:[white]\n%s\n\n", tview.Escape(failure.Expected))
	fmt.Fprintf(&b, "[yellow]Actual:[white]\n%s\n\n", tview.Escape(failure.Actual))
	if failure.Stderr != "" {
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n%s\n\n", tview.Escape(failure.Stderr))
	}
	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n", tview.Escape(failure.Message))
	}
	return b.String()
}

var _ Viewer = (*FailureViewer)(nil)

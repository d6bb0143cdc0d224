package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rexhoffman/trybuild/internal/domain"
)

// ReviewViewer is an interactive TUI over the fixtures staged by the last
// run. It shows each staged fixture's content next to its destination and
// lets the developer promote or discard it. Promotion is always an
// explicit action here; the harness itself never promotes.
type ReviewViewer struct{}

// NewReviewViewer creates a new ReviewViewer.
func NewReviewViewer() *ReviewViewer {
	return &ReviewViewer{}
}

// View opens the review TUI for the staged fixtures in report.
func (rv *ReviewViewer) View(report *domain.RunReport) error {
	if len(report.Staged) == 0 {
		color.Green("✓ No staged fixtures to review")
		return nil
	}

	staged := report.Staged
	promoted := make(map[int]bool)
	discarded := make(map[int]bool)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)

	itemText := func(index int) (string, string) {
		entry := staged[index]
		main := fmt.Sprintf("[yellow]%d.[white] %s", index+1, entry.TestName)
		secondary := "  staged"
		switch {
		case promoted[index]:
			main = fmt.Sprintf("[gray]✓ %d. %s[white]", index+1, entry.TestName)
			secondary = "  promoted"
		case discarded[index]:
			main = fmt.Sprintf("[gray]✗ %d. %s[white]", index+1, entry.TestName)
			secondary = "  discarded"
		}
		return main, secondary
	}

	for i := range staged {
		main, secondary := itemText(i)
		list.AddItem(main, secondary, 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	details.SetBorder(true).SetTitle(" staged diagnostics ")

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]p[white] promote  [yellow]d[white] discard  [yellow]q[white] quit")

	showEntry := func(index int) {
		entry := staged[index]
		content, err := os.ReadFile(entry.WipPath)
		if err != nil {
			details.SetText(fmt.Sprintf("[red]cannot read %s: %v", entry.WipPath, err))
			return
		}
		text := fmt.Sprintf("[cyan]staged:[white]  %s\n[cyan]target:[white]  %s\n\n%s",
			entry.WipPath, entry.FixturePath, tview.Escape(string(content)))
		details.SetText(text)
	}

	refresh := func(index int) {
		main, secondary := itemText(index)
		list.SetItemText(index, main, secondary)
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(staged) {
			showEntry(index)
		}
	})
	showEntry(0)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(staged) {
			return event
		}
		switch event.Rune() {
		case 'p':
			entry := staged[index]
			if err := promoteFixture(entry); err != nil {
				details.SetText(fmt.Sprintf("[red]promote failed: %v", err))
				return nil
			}
			promoted[index] = true
			delete(discarded, index)
			refresh(index)
			return nil
		case 'd':
			if err := os.Remove(staged[index].WipPath); err != nil && !os.IsNotExist(err) {
				details.SetText(fmt.Sprintf("[red]discard failed: %v", err))
				return nil
			}
			discarded[index] = true
			delete(promoted, index)
			refresh(index)
			return nil
		case 'q':
			app.Stop()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(status, 1, 0, false)

	return app.SetRoot(root, true).Run()
}

// promoteFixture copies a staged fixture to its co-located destination and
// removes the staged copy.
func promoteFixture(entry domain.StagedFixture) error {
	content, err := os.ReadFile(entry.WipPath)
	if err != nil {
		return fmt.Errorf("read staged fixture: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(entry.FixturePath), 0755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	if err := os.WriteFile(entry.FixturePath, content, 0644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	if err := os.Remove(entry.WipPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove staged fixture: %w", err)
	}
	return nil
}

package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows overall run progress with live ok/failed counts.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for count tests.
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.GreenString("▰"),
			SaucerHead:    color.GreenString("▰"),
			SaucerPadding: "▱",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar and refreshes the ok/failed counts.
func (p *ProgressBar) Update(completed, ok, failed int) {
	p.bar.Set(completed)
	p.bar.Describe(describe(ok, failed))
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describe(ok, failed int) string {
	status := color.GreenString("%d ok", ok)
	if failed > 0 {
		status += ", " + color.RedString("%d failed", failed)
	}
	return fmt.Sprintf("building (%s)", status)
}

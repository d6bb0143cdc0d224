package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/rexhoffman/trybuild/internal/domain"
)

// Formatter renders stored run reports.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintReport displays the meta statistics and failures of a run report.
func (f *Formatter) PrintReport(report *domain.RunReport) {
	meta := report.Meta

	fmt.Println()
	color.Cyan("╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Last Run Statistics                      ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝")

	fmt.Printf("%-20s ", "Total tests:")
	color.White("%d", meta.TotalTests)
	fmt.Printf("%-20s ", "Passed:")
	color.Green("%d", meta.PassedTests)
	fmt.Printf("%-20s ", "Failed:")
	color.Red("%d", meta.FailedTests)
	fmt.Printf("%-20s ", "Staged fixtures:")
	color.Yellow("%d", meta.StagedFixtures)
	fmt.Printf("%-20s ", "Duration:")
	color.White("%s", meta.Duration)

	if len(report.Failures) == 0 {
		fmt.Println()
		color.Green("✓ No failures recorded")
		return
	}

	fmt.Println()
	color.Red("Failures:")
	for i, failure := range report.Failures {
		fmt.Println()
		color.Yellow("%d. %s [%s]", i+1, failure.Path, failure.Expected)
		color.Red("   %s: %s", failure.Kind, failure.Message)
		if failure.Diagnostics != "" {
			printBlock(failure.Diagnostics, color.New(color.FgRed))
		}
		if failure.Kind == string(domain.KindMismatch) {
			color.Yellow("   expected:")
			printBlock(failure.Fixture, color.New(color.FgYellow))
			color.Red("   actual:")
			printBlock(failure.Actual, color.New(color.FgRed))
		}
	}
}

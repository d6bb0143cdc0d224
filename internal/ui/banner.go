package ui

import "github.com/fatih/color"

// Banner prints the run delimiter banner before and after test execution.
func Banner() {
	color.Cyan("╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    trybuild test harness                   ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝")
}

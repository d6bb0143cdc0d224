// Package ui renders harness output: per-test status lines, banners, the
// progress bar and the interactive staged-fixture review viewer.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/rexhoffman/trybuild/internal/domain"
)

// Messages prints per-test status lines and failure details as the run
// advances.
type Messages struct {
	// Quiet suppresses all output; used by tests driving the executor.
	Quiet bool
}

// NewMessages creates a new Messages printer.
func NewMessages() *Messages {
	return &Messages{}
}

// BeginTest announces the test about to run.
func (m *Messages) BeginTest(test domain.Test) {
	if m.Quiet {
		return
	}
	fmt.Printf("%s %s [%s] ... ", color.CyanString("test"), test.Path, test.Expected)
}

// Ok prints the success marker for a finished test.
func (m *Messages) Ok(test domain.Test) {
	if m.Quiet {
		return
	}
	color.Green("ok")
}

// Failed prints the failure marker and the failure's diagnostic detail.
func (m *Messages) Failed(test domain.Test, err *domain.TestError) {
	if m.Quiet {
		return
	}
	color.Red("FAILED")

	switch err.Kind {
	case domain.KindBuildFail:
		color.Red("error: test failed to build")
		printBlock(err.Diagnostics, color.New(color.FgRed))
	case domain.KindRunFail:
		color.Red("error: test binary exited with an error")
		printBlock(err.Diagnostics, color.New(color.FgRed))
	case domain.KindShouldNotCompile:
		color.Red("error: %s compiled successfully but was expected to fail", test.Path)
		if err.Diagnostics != "" {
			color.Yellow("warnings:")
			printBlock(err.Diagnostics, color.New(color.FgYellow))
		}
	case domain.KindMismatch:
		color.Red("error: diagnostics do not match the expected output")
		m.Mismatch(err.Expected, err.Actual)
	default:
		color.Red("error: %v", err)
	}
}

// Mismatch renders both sides of a fixture mismatch.
func (m *Messages) Mismatch(expected, actual string) {
	if m.Quiet {
		return
	}
	color.Yellow("EXPECTED:")
	printBlock(expected, color.New(color.FgYellow))
	color.Red("ACTUAL:")
	printBlock(actual, color.New(color.FgRed))
}

// Output shows a pass-expected test binary's own output to the user.
func (m *Messages) Output(test domain.Test, diagnostics, stdout string) {
	if m.Quiet {
		return
	}
	if diagnostics != "" {
		printBlock(diagnostics, color.New(color.FgYellow))
	}
	if stdout != "" {
		printBlock(stdout, color.New(color.FgWhite))
	}
}

// StagedFixture reports a bootstrapped fixture with promotion guidance.
func (m *Messages) StagedFixture(test domain.Test, wipPath, fixturePath, content string) {
	if m.Quiet {
		return
	}
	color.Green("wrote %s", wipPath)
	color.White("note: move %s to %s to accept it as the expected output", wipPath, fixturePath)
	printBlock(content, color.New(color.FgYellow))
}

// Banner prints the run delimiter banner.
func (m *Messages) Banner() {
	if m.Quiet {
		return
	}
	Banner()
}

// NoTestsEnabled prints the distinct notice for an empty test list.
func (m *Messages) NoTestsEnabled() {
	if m.Quiet {
		return
	}
	color.Yellow("no tests enabled")
}

// PrepareFailed reports a fatal project-preparation error.
func (m *Messages) PrepareFailed(err error) {
	if m.Quiet {
		return
	}
	color.Red("error: %v", err)
}

// Summary prints the final failed/total tally.
func (m *Messages) Summary(failed, total int) {
	if m.Quiet {
		return
	}
	fmt.Println()
	if failed > 0 {
		color.Red("%d of %d tests failed", failed, total)
	} else {
		color.Green("all %d tests passed", total)
	}
}

// printBlock indents a multi-line text block under the current line.
func printBlock(text string, c *color.Color) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		c.Printf("    %s\n", line)
	}
}

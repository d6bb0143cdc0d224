package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/discovery"
	"github.com/rexhoffman/trybuild/internal/domain"
	"github.com/rexhoffman/trybuild/internal/project"
	"github.com/rexhoffman/trybuild/internal/storage"
	"github.com/rexhoffman/trybuild/internal/ui"
)

// Harness wires the full run: glob expansion, project preparation,
// dependency prebuild, sequential test execution and report persistence.
type Harness struct {
	cfg          *config.Config
	builder      *project.Builder
	tool         BuildTool
	messages     *ui.Messages
	storage      storage.Storage
	showProgress bool
}

// NewHarness creates a Harness with production components: the go build
// tool, colored terminal messages and JSON report storage.
func NewHarness(cfg *config.Config) *Harness {
	return &Harness{
		cfg:      cfg,
		builder:  project.NewBuilder(cfg),
		tool:     NewGoTool(),
		messages: ui.NewMessages(),
		storage:  storage.NewJSONStorage(cfg),
	}
}

// NewHarnessWith creates a Harness with explicit components, for callers
// substituting a fake build tool or silent output.
func NewHarnessWith(cfg *config.Config, tool BuildTool, messages *ui.Messages, st storage.Storage) *Harness {
	return &Harness{
		cfg:      cfg,
		builder:  project.NewBuilder(cfg),
		tool:     tool,
		messages: messages,
		storage:  st,
	}
}

// ShowProgress enables the progress bar during the run.
func (h *Harness) ShowProgress(enabled bool) {
	h.showProgress = enabled
}

// Run executes the declared tests. A preparation failure aborts before any
// test executes; per-test failures are accumulated and reported at the
// end. The returned error is non-nil when preparation failed or when one
// or more tests failed.
func (h *Harness) Run(ctx context.Context, tests []domain.Test, deps map[string]project.Dependency) (*domain.RunReport, error) {
	expanded := discovery.ExpandGlobs(tests)

	p, err := h.builder.Prepare(expanded, deps)
	if err != nil {
		h.messages.PrepareFailed(err)
		return nil, err
	}
	if err := h.tool.PrepareDeps(ctx, p); err != nil {
		err = &domain.PrepareError{Step: "build dependencies", Err: err}
		h.messages.PrepareFailed(err)
		return nil, err
	}

	h.messages.Banner()

	if len(expanded) == 0 {
		h.messages.NoTestsEnabled()
		report := &domain.RunReport{Meta: domain.RunReportMeta{
			Timestamp: time.Now().Format(time.RFC3339),
		}}
		if err := h.storage.Save(report); err != nil {
			return report, err
		}
		h.messages.Banner()
		return report, nil
	}

	executor := NewExecutor(h.cfg, h.tool, h.messages)
	if h.showProgress {
		executor.SetProgress(ui.NewProgressBar(len(expanded)))
	}

	start := time.Now()
	outcomes := executor.RunAll(ctx, p, expanded)
	duration := time.Since(start)

	report := h.buildReport(outcomes, duration)
	saveErr := h.storage.Save(report)

	h.messages.Summary(report.Meta.FailedTests, report.Meta.TotalTests)
	h.messages.Banner()

	if report.Meta.FailedTests > 0 {
		return report, fmt.Errorf("%d of %d tests failed", report.Meta.FailedTests, report.Meta.TotalTests)
	}
	if saveErr != nil {
		return report, fmt.Errorf("save run report: %w", saveErr)
	}
	return report, nil
}

// buildReport aggregates per-test outcomes into the persisted report.
func (h *Harness) buildReport(outcomes []domain.TestOutcome, duration time.Duration) *domain.RunReport {
	report := &domain.RunReport{}

	for _, outcome := range outcomes {
		if outcome.Failed() {
			report.Meta.FailedTests++
			report.Failures = append(report.Failures, domain.FailureDetail{
				TestName:    outcome.Test.Name(),
				Path:        outcome.Test.Path,
				Expected:    outcome.Test.Expected.String(),
				Kind:        string(outcome.Err.Kind),
				Message:     outcome.Err.Error(),
				Diagnostics: outcome.Err.Diagnostics,
				Fixture:     outcome.Err.Expected,
				Actual:      outcome.Err.Actual,
			})
			continue
		}
		report.Meta.PassedTests++
		if outcome.Notice != "" {
			report.Meta.StagedFixtures++
			report.Staged = append(report.Staged, domain.StagedFixture{
				TestName:    outcome.Test.Name(),
				WipPath:     outcome.Notice,
				FixturePath: outcome.Test.FixturePath(h.cfg.FixtureExt),
			})
		}
	}

	report.Meta.TotalTests = len(outcomes)
	report.Meta.Duration = duration.String()
	report.Meta.DurationSeconds = duration.Seconds()
	report.Meta.Timestamp = time.Now().Format(time.RFC3339)
	return report
}

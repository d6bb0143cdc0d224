package execution

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/domain"
	"github.com/rexhoffman/trybuild/internal/normalize"
	"github.com/rexhoffman/trybuild/internal/project"
)

// Reporter receives per-test progress as the run advances, so long runs
// show status lines while they happen instead of batched at the end.
type Reporter interface {
	BeginTest(test domain.Test)
	Ok(test domain.Test)
	Failed(test domain.Test, err *domain.TestError)
	Output(test domain.Test, diagnostics, stdout string)
	StagedFixture(test domain.Test, wipPath, fixturePath, content string)
}

// Progress tracks overall run progress (ok/failed counts).
type Progress interface {
	Update(completed, ok, failed int)
	Finish()
}

// Executor runs expanded test cases strictly sequentially, in declaration
// order, one build at a time. A failing test is recorded and execution
// continues with the next case.
type Executor struct {
	cfg      *config.Config
	tool     BuildTool
	reporter Reporter
	progress Progress
}

// NewExecutor creates a new Executor.
func NewExecutor(cfg *config.Config, tool BuildTool, reporter Reporter) *Executor {
	return &Executor{cfg: cfg, tool: tool, reporter: reporter}
}

// SetProgress sets an optional progress tracker for the run.
func (e *Executor) SetProgress(progress Progress) {
	e.progress = progress
}

// RunAll executes every expanded test in order and returns all outcomes.
func (e *Executor) RunAll(ctx context.Context, p *project.Project, tests []domain.ExpandedTest) []domain.TestOutcome {
	outcomes := make([]domain.TestOutcome, 0, len(tests))
	var ok, failed int

	for _, expanded := range tests {
		outcome := e.runOne(ctx, p, expanded)
		outcomes = append(outcomes, outcome)

		if outcome.Failed() {
			failed++
			e.reporter.Failed(outcome.Test, outcome.Err)
		} else {
			ok++
			e.reporter.Ok(outcome.Test)
		}
		if e.progress != nil {
			e.progress.Update(len(outcomes), ok, failed)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return outcomes
}

// runOne drives one test through its lifecycle: verify the source exists,
// build the synthetic target, normalize the diagnostics, then dispatch on
// the declared expectation.
func (e *Executor) runOne(ctx context.Context, p *project.Project, expanded domain.ExpandedTest) (outcome domain.TestOutcome) {
	test := expanded.Test
	e.reporter.BeginTest(test)
	start := time.Now()

	outcome.Test = test
	defer func() { outcome.Duration = time.Since(start) }()

	if expanded.Err != nil {
		outcome.Err = domain.AsTestError(expanded.Err)
		return outcome
	}

	if _, err := os.Stat(test.Path); err != nil {
		outcome.Err = &domain.TestError{Kind: domain.KindOpen, Path: test.Path, Err: err}
		return outcome
	}

	built, rawStderr, err := e.tool.Build(ctx, p, test.Name())
	if err != nil {
		outcome.Err = &domain.TestError{Kind: domain.KindBuildFail, Path: test.Path, Err: err}
		return outcome
	}
	diagnostics := e.normalize(p, rawStderr)

	switch test.Expected {
	case domain.ExpectPass:
		outcome.Err = e.checkPass(ctx, p, test, built, diagnostics)
	case domain.ExpectCompileFail:
		outcome.Err, outcome.Notice = e.checkCompileFail(test, built, diagnostics)
	}
	return outcome
}

// checkPass requires a successful build and a successful run of the
// resulting binary.
func (e *Executor) checkPass(ctx context.Context, p *project.Project, test domain.Test, built bool, diagnostics string) *domain.TestError {
	if !built {
		return &domain.TestError{
			Kind:        domain.KindBuildFail,
			Path:        test.Path,
			Diagnostics: diagnostics,
		}
	}

	ok, output, err := e.tool.Run(ctx, p, test.Name())
	if err != nil {
		return &domain.TestError{Kind: domain.KindRunFail, Path: test.Path, Err: err}
	}
	e.reporter.Output(test, diagnostics, string(output))
	if ok {
		return nil
	}
	return &domain.TestError{
		Kind:        domain.KindRunFail,
		Path:        test.Path,
		Diagnostics: string(output),
	}
}

// checkCompileFail requires a failed build with diagnostics matching the
// test's golden fixture. A missing fixture is bootstrapped into the
// staging directory and counts as success with a notice; it is never
// promoted automatically.
func (e *Executor) checkCompileFail(test domain.Test, built bool, diagnostics string) (*domain.TestError, string) {
	if built {
		return &domain.TestError{
			Kind:        domain.KindShouldNotCompile,
			Path:        test.Path,
			Diagnostics: diagnostics,
		}, ""
	}

	fixturePath := test.FixturePath(e.cfg.FixtureExt)
	if _, err := os.Stat(fixturePath); err != nil {
		wipPath := filepath.Join(e.cfg.StagingDir, filepath.Base(fixturePath))
		if err := os.MkdirAll(e.cfg.StagingDir, 0755); err != nil {
			return &domain.TestError{Kind: domain.KindWriteFixture, Path: wipPath, Err: err}, ""
		}
		if err := os.WriteFile(wipPath, []byte(diagnostics), 0644); err != nil {
			return &domain.TestError{Kind: domain.KindWriteFixture, Path: wipPath, Err: err}, ""
		}
		e.reporter.StagedFixture(test, wipPath, fixturePath, diagnostics)
		return nil, wipPath
	}

	expected, err := os.ReadFile(fixturePath)
	if err != nil {
		return &domain.TestError{Kind: domain.KindReadFixture, Path: fixturePath, Err: err}, ""
	}

	want := strings.ReplaceAll(string(expected), "\r\n", "\n")
	if want == diagnostics {
		return nil, ""
	}
	return &domain.TestError{
		Kind:     domain.KindMismatch,
		Path:     test.Path,
		Expected: want,
		Actual:   diagnostics,
	}, ""
}

func (e *Executor) normalize(p *project.Project, raw []byte) string {
	return normalize.Diagnostics(raw, normalize.Options{
		ProjectDir: p.Dir,
		TargetDir:  p.TargetDir,
		PackageDir: e.cfg.PackageDir,
	})
}

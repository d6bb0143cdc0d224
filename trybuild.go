// Package trybuild is a snapshot test harness for build-time behavior:
// it asserts that certain sources build and run successfully, and that
// others fail to build with diagnostics matching a golden fixture stored
// next to the source.
//
// Typical usage from a test:
//
//	func TestCompileFailures(t *testing.T) {
//		tb := trybuild.New()
//		tb.Pass("testdata/ok/*.go")
//		tb.CompileFail("testdata/bad/*.go")
//		tb.Run(t)
//	}
//
// When a compile-fail test has no fixture yet, the harness writes the
// normalized diagnostics into the wip/ staging directory and reports
// success; review and promote staged fixtures by hand or with the
// trybuild review command.
package trybuild

import (
	"context"
	"testing"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/domain"
	"github.com/rexhoffman/trybuild/internal/execution"
	"github.com/rexhoffman/trybuild/internal/project"
)

// Dependency declares an extra dependency of the synthetic test project.
// A relative Path is resolved against the calling project's directory.
type Dependency struct {
	Version string
	Path    string
}

// Runner collects test declarations and executes them in order.
type Runner struct {
	tests []domain.Test
	deps  map[string]project.Dependency
}

// New creates an empty Runner.
func New() *Runner {
	return &Runner{deps: make(map[string]project.Dependency)}
}

// Pass declares a test (path or glob pattern) that must build and run
// successfully.
func (r *Runner) Pass(path string) {
	r.tests = append(r.tests, domain.Test{Path: path, Expected: domain.ExpectPass})
}

// CompileFail declares a test (path or glob pattern) that must fail to
// build with diagnostics matching its golden fixture.
func (r *Runner) CompileFail(path string) {
	r.tests = append(r.tests, domain.Test{Path: path, Expected: domain.ExpectCompileFail})
}

// Dependency adds an extra dependency declaration to the synthetic
// project's manifest.
func (r *Runner) Dependency(name string, dep Dependency) {
	r.deps[name] = project.Dependency{Version: dep.Version, Path: dep.Path}
}

// Run executes all declared tests in declaration order and fails t if any
// test fails or the project cannot be prepared.
func (r *Runner) Run(t *testing.T) {
	t.Helper()

	cfg, err := config.Discover(".")
	if err != nil {
		t.Fatalf("trybuild: %v", err)
	}

	harness := execution.NewHarness(cfg)
	if _, err := harness.Run(context.Background(), r.tests, r.deps); err != nil {
		t.Fatal(err)
	}
}

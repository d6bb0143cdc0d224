// Package execution runs expanded test cases against the throwaway
// project: it invokes the external build tool per test, normalizes the
// captured diagnostics and applies the pass/compile-fail policy.
package execution

import (
	"context"

	"github.com/rexhoffman/trybuild/internal/project"
)

// BuildTool abstracts the external build tool. It accepts a project root
// and a target name and reports exit status plus raw stderr; the harness
// treats it as a black box. Invocations block until the subprocess
// terminates; no timeout is enforced here.
type BuildTool interface {
	// PrepareDeps compiles the project's dependencies once, so per-test
	// builds only compile the small test-specific sources.
	PrepareDeps(ctx context.Context, p *project.Project) error
	// Build compiles the named target. ok reflects the tool's exit
	// status; stderr is the raw diagnostic output. A non-nil error means
	// the tool itself could not be invoked.
	Build(ctx context.Context, p *project.Project, name string) (ok bool, stderr []byte, err error)
	// Run executes the named target's built binary, returning its exit
	// status and combined output.
	Run(ctx context.Context, p *project.Project, name string) (ok bool, output []byte, err error)
}

package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rexhoffman/trybuild/internal/project"
)

// GoTool drives the go command as the external build tool.
type GoTool struct{}

// NewGoTool creates a new GoTool.
func NewGoTool() *GoTool {
	return &GoTool{}
}

// command builds a go invocation rooted at the project directory, with
// the project's build env file layered over the current environment.
func (g *GoTool) command(ctx context.Context, p *project.Project, args ...string) (*exec.Cmd, error) {
	env, err := p.Env()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = p.Dir
	cmd.Env = os.Environ()
	for key, value := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}
	return cmd, nil
}

// PrepareDeps builds the do-nothing entry target, which pulls in and
// compiles every declared dependency exactly once per run.
func (g *GoTool) PrepareDeps(ctx context.Context, p *project.Project) error {
	cmd, err := g.command(ctx, p, "build", "-o", p.BinaryPath(p.Name), "./bin/"+p.Name)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build dependencies: %w\n%s", err, stderr.String())
	}
	return nil
}

// Build compiles the named target, capturing stderr. A nonzero exit is a
// build failure, not an invocation error.
func (g *GoTool) Build(ctx context.Context, p *project.Project, name string) (bool, []byte, error) {
	cmd, err := g.command(ctx, p, "build", "-o", p.BinaryPath(name), "./bin/"+name)
	if err != nil {
		return false, nil, err
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return true, stderr.Bytes(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return false, stderr.Bytes(), nil
	}
	return false, stderr.Bytes(), fmt.Errorf("invoke build tool: %w", runErr)
}

// Run executes the binary produced by Build for the named target.
func (g *GoTool) Run(ctx context.Context, p *project.Project, name string) (bool, []byte, error) {
	cmd := exec.CommandContext(ctx, p.BinaryPath(name))
	cmd.Dir = p.Dir

	output, runErr := cmd.CombinedOutput()
	if runErr == nil {
		return true, output, nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return false, output, nil
	}
	return false, output, fmt.Errorf("invoke test binary: %w", runErr)
}

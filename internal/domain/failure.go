package domain

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a single test case failed.
type FailureKind string

const (
	// KindOpen means the declared source file could not be opened.
	KindOpen FailureKind = "open"
	// KindGlob means the test's glob pattern failed to expand.
	KindGlob FailureKind = "glob"
	// KindBuildFail means a pass-expected test failed to build.
	KindBuildFail FailureKind = "build-failed"
	// KindRunFail means a pass-expected test built but exited nonzero.
	KindRunFail FailureKind = "run-failed"
	// KindShouldNotCompile means a compile-fail-expected test built.
	KindShouldNotCompile FailureKind = "should-not-have-compiled"
	// KindMismatch means the diagnostics differ from the stored fixture.
	KindMismatch FailureKind = "mismatch"
	// KindReadFixture means an existing fixture could not be read.
	KindReadFixture FailureKind = "read-fixture"
	// KindWriteFixture means a staged fixture could not be written.
	KindWriteFixture FailureKind = "write-fixture"
)

// TestError is the per-test failure recorded by the executor. Diagnostics
// carries the normalized compiler output relevant to the failure; for a
// mismatch, Expected and Actual carry both sides for diff display.
type TestError struct {
	Kind        FailureKind
	Path        string
	Diagnostics string
	Expected    string
	Actual      string
	Err         error
}

// Error implements the error interface.
func (e *TestError) Error() string {
	switch e.Kind {
	case KindOpen:
		return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
	case KindGlob:
		return fmt.Sprintf("failed to expand pattern %s: %v", e.Path, e.Err)
	case KindBuildFail:
		return "test failed to build"
	case KindRunFail:
		return "test binary exited with an error"
	case KindShouldNotCompile:
		return "test compiled successfully but was expected to fail"
	case KindMismatch:
		return "diagnostics do not match the expected output"
	case KindReadFixture:
		return fmt.Sprintf("failed to read fixture %s: %v", e.Path, e.Err)
	case KindWriteFixture:
		return fmt.Sprintf("failed to write staged fixture %s: %v", e.Path, e.Err)
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *TestError) Unwrap() error { return e.Err }

// AsTestError extracts a *TestError from err, or wraps err in one with an
// empty kind so callers can treat every per-test failure uniformly.
func AsTestError(err error) *TestError {
	var te *TestError
	if errors.As(err, &te) {
		return te
	}
	return &TestError{Kind: FailureKind("error"), Err: err}
}

// PrepareError is a fatal project-preparation failure; no tests run after
// one of these.
type PrepareError struct {
	Step string
	Err  error
}

// Error implements the error interface.
func (e *PrepareError) Error() string {
	return fmt.Sprintf("failed to prepare test project (%s): %v", e.Step, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *PrepareError) Unwrap() error { return e.Err }

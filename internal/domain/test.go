package domain

import (
	"path/filepath"
	"strings"
)

// Expected is the declared outcome of a test case.
type Expected int

const (
	// ExpectPass means the source must compile and the resulting binary
	// must run successfully.
	ExpectPass Expected = iota
	// ExpectCompileFail means the source must fail to compile with
	// diagnostics matching the test's golden fixture.
	ExpectCompileFail
)

// String returns the outcome name as used in output and reports.
func (e Expected) String() string {
	switch e {
	case ExpectPass:
		return "pass"
	case ExpectCompileFail:
		return "compile-fail"
	default:
		return "unknown"
	}
}

// Test represents one declared test case: a source path (or glob pattern
// before expansion) and the outcome it is expected to produce.
type Test struct {
	Path     string   // Path to the test source file, or a glob pattern
	Expected Expected // Declared outcome
}

// Name derives the synthetic binary target name for this test from the
// file stem, with non-alphanumeric characters rewritten to underscores so
// the name is usable as a directory and target identifier.
func (t Test) Name() string {
	stem := filepath.Base(t.Path)
	if ext := filepath.Ext(stem); ext != "" {
		stem = strings.TrimSuffix(stem, ext)
	}
	if stem == "" {
		stem = t.Path
	}
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// FixturePath returns the co-located golden fixture path for this test:
// the source path with its extension swapped for ext.
func (t Test) FixturePath(ext string) string {
	old := filepath.Ext(t.Path)
	return strings.TrimSuffix(t.Path, old) + ext
}

// ExpandedTest is a concrete test produced by glob expansion. Err is set
// when the pattern itself failed to expand; the error is reported when the
// test's turn comes up during execution, so failures interleave with
// successes in declaration order.
type ExpandedTest struct {
	Test Test
	Err  error
}

package domain

import "time"

// TestOutcome is the result of running one expanded test case.
type TestOutcome struct {
	Test     Test
	Err      *TestError // nil on success
	Notice   string     // informational message (e.g. fixture bootstrap)
	Duration time.Duration
}

// Failed reports whether the test case failed.
func (o TestOutcome) Failed() bool { return o.Err != nil }

// RunReportMeta contains metadata about one harness run.
type RunReportMeta struct {
	TotalTests      int     `json:"total_tests"`
	FailedTests     int     `json:"failed_tests"`
	PassedTests     int     `json:"passed_tests"`
	StagedFixtures  int     `json:"staged_fixtures"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// FailureDetail is the persisted form of a per-test failure.
type FailureDetail struct {
	TestName    string `json:"test_name"`
	Path        string `json:"path"`
	Expected    string `json:"expected_outcome"`
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	Diagnostics string `json:"diagnostics,omitempty"`
	Fixture     string `json:"fixture,omitempty"`
	Actual      string `json:"actual,omitempty"`
}

// StagedFixture records a fixture bootstrapped during the run: the
// normalized diagnostics were written to WipPath and await manual
// promotion to FixturePath.
type StagedFixture struct {
	TestName    string `json:"test_name"`
	WipPath     string `json:"wip_path"`
	FixturePath string `json:"fixture_path"`
}

// RunReport is the complete persisted output of one harness run.
type RunReport struct {
	Meta     RunReportMeta   `json:"meta"`
	Failures []FailureDetail `json:"failures"`
	Staged   []StagedFixture `json:"staged,omitempty"`
}

package domain

import (
	"errors"
	"testing"
)

func TestTest_Name(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "simple file",
			path:     "testdata/ui/basic.go",
			expected: "basic",
		},
		{
			name:     "dashes become underscores",
			path:     "testdata/ui/missing-field.go",
			expected: "missing_field",
		},
		{
			name:     "dots in stem become underscores",
			path:     "testdata/ui/a.b.go",
			expected: "a_b",
		},
		{
			name:     "no extension",
			path:     "testdata/ui/plain",
			expected: "plain",
		},
		{
			name:     "underscores preserved",
			path:     "testdata/ui/snake_case.go",
			expected: "snake_case",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := Test{Path: tt.path}
			if got := test.Name(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTest_FixturePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		ext      string
		expected string
	}{
		{
			name:     "go source",
			path:     "testdata/ui/basic.go",
			ext:      ".stderr",
			expected: "testdata/ui/basic.stderr",
		},
		{
			name:     "no extension",
			path:     "testdata/ui/plain",
			ext:      ".stderr",
			expected: "testdata/ui/plain.stderr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := Test{Path: tt.path}
			if got := test.FixturePath(tt.ext); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExpected_String(t *testing.T) {
	if got := ExpectPass.String(); got != "pass" {
		t.Errorf("expected pass, got %q", got)
	}
	if got := ExpectCompileFail.String(); got != "compile-fail" {
		t.Errorf("expected compile-fail, got %q", got)
	}
}

func TestAsTestError(t *testing.T) {
	t.Run("passes through a TestError", func(t *testing.T) {
		original := &TestError{Kind: KindMismatch}
		if got := AsTestError(original); got != original {
			t.Error("expected the original error back")
		}
	})

	t.Run("wraps a plain error", func(t *testing.T) {
		plain := errors.New("boom")
		got := AsTestError(plain)
		if got.Err != plain {
			t.Error("expected the plain error as the cause")
		}
	})

	t.Run("unwraps through wrapping", func(t *testing.T) {
		cause := errors.New("cause")
		err := &TestError{Kind: KindOpen, Err: cause}
		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to find the cause")
		}
	})
}

package trybuild

import (
	"testing"

	"github.com/rexhoffman/trybuild/internal/domain"
)

func TestRunner_DeclarationOrder(t *testing.T) {
	tb := New()
	tb.Pass("testdata/ok/basic.go")
	tb.CompileFail("testdata/bad/*.go")
	tb.Pass("testdata/ok/other.go")

	if len(tb.tests) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(tb.tests))
	}

	expected := []domain.Test{
		{Path: "testdata/ok/basic.go", Expected: domain.ExpectPass},
		{Path: "testdata/bad/*.go", Expected: domain.ExpectCompileFail},
		{Path: "testdata/ok/other.go", Expected: domain.ExpectPass},
	}
	for i, want := range expected {
		if tb.tests[i] != want {
			t.Errorf("declaration %d: expected %+v, got %+v", i, want, tb.tests[i])
		}
	}
}

func TestRunner_Dependency(t *testing.T) {
	tb := New()
	tb.Dependency("example.com/helper", Dependency{Path: "helper"})
	tb.Dependency("example.com/versioned", Dependency{Version: "v1.2.3"})

	if len(tb.deps) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(tb.deps))
	}
	if dep := tb.deps["example.com/helper"]; dep.Path != "helper" {
		t.Errorf("expected path helper, got %q", dep.Path)
	}
	if dep := tb.deps["example.com/versioned"]; dep.Version != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %q", dep.Version)
	}
}

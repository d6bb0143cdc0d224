package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.PackageName = "example.com/widget"
	cfg.PackageDir = t.TempDir()
	cfg.TargetDir = t.TempDir()
	return cfg
}

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestBuilder_Prepare(t *testing.T) {
	cfg := testConfig(t)
	srcDir := t.TempDir()
	okSource := writeSource(t, srcDir, "basic.go")
	failSource := writeSource(t, srcDir, "bad-types.go")

	tests := []domain.ExpandedTest{
		{Test: domain.Test{Path: okSource, Expected: domain.ExpectPass}},
		{Test: domain.Test{Path: failSource, Expected: domain.ExpectCompileFail}},
	}

	builder := NewBuilder(cfg)
	p, err := builder.Prepare(tests, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "widget-tests" {
		t.Errorf("expected project name widget-tests, got %s", p.Name)
	}

	t.Run("writes the manifest", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(p.Dir, "go.mod"))
		if err != nil {
			t.Fatalf("missing go.mod: %v", err)
		}
		text := string(data)
		if !strings.Contains(text, "module widget-tests") {
			t.Errorf("manifest missing module line:\n%s", text)
		}
		if !strings.Contains(text, "replace example.com/widget => "+cfg.PackageDir) {
			t.Errorf("manifest missing replace for the unit under test:\n%s", text)
		}
	})

	t.Run("writes the build env file", func(t *testing.T) {
		env, err := p.Env()
		if err != nil {
			t.Fatalf("missing build env: %v", err)
		}
		if !strings.Contains(env["GOFLAGS"], "-trimpath") {
			t.Errorf("GOFLAGS missing noise suppression: %q", env["GOFLAGS"])
		}
		if env["GOWORK"] != "off" {
			t.Errorf("expected GOWORK=off, got %q", env["GOWORK"])
		}
	})

	t.Run("writes the do-nothing entry target", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(p.SourceDir(p.Name), "main.go"))
		if err != nil {
			t.Fatalf("missing entry target: %v", err)
		}
		text := string(data)
		if !strings.Contains(text, "func main() {}") {
			t.Errorf("entry target is not a do-nothing main:\n%s", text)
		}
		if !strings.Contains(text, `_ "example.com/widget"`) {
			t.Errorf("entry target must blank-import the unit under test:\n%s", text)
		}
	})

	t.Run("registers both pass and compile-fail targets", func(t *testing.T) {
		for _, name := range []string{"basic", "bad_types"} {
			if _, err := os.Stat(filepath.Join(p.SourceDir(name), "main.go")); err != nil {
				t.Errorf("missing target %s: %v", name, err)
			}
		}
	})
}

func TestBuilder_Prepare_RejectsDuplicateTargetNames(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg)

	firstDir := t.TempDir()
	secondDir := t.TempDir()
	first := writeSource(t, firstDir, "case.go")
	second := writeSource(t, secondDir, "case.go")

	tests := []domain.ExpandedTest{
		{Test: domain.Test{Path: first, Expected: domain.ExpectPass}},
		{Test: domain.Test{Path: second, Expected: domain.ExpectCompileFail}},
	}

	_, err := builder.Prepare(tests, nil)
	if err == nil {
		t.Fatal("two sources sharing a target name must not prepare silently")
	}
	var prepErr *domain.PrepareError
	if !errors.As(err, &prepErr) {
		t.Fatalf("expected a PrepareError, got %T", err)
	}
	if !strings.Contains(err.Error(), `"case"`) {
		t.Errorf("error must name the colliding target: %v", err)
	}
	if !strings.Contains(err.Error(), first) || !strings.Contains(err.Error(), second) {
		t.Errorf("error must name both colliding sources: %v", err)
	}
}

func TestBuilder_Prepare_EntryImportsDeclaredDependencies(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg)

	deps := map[string]Dependency{
		"example.com/helper": {Path: "helper"},
	}

	p, err := builder.Prepare(nil, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(p.SourceDir(p.Name), "main.go"))
	if err != nil {
		t.Fatalf("missing entry target: %v", err)
	}
	for _, want := range []string{`_ "example.com/widget"`, `_ "example.com/helper"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("entry target missing blank import %s:\n%s", want, string(data))
		}
	}
}

func TestBuilder_Prepare_SkipsFailedExpansions(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg)

	tests := []domain.ExpandedTest{
		{
			Test: domain.Test{Path: "bad/[pattern.go", Expected: domain.ExpectCompileFail},
			Err:  &domain.TestError{Kind: domain.KindGlob, Path: "bad/[pattern.go"},
		},
	}

	p, err := builder.Prepare(tests, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(p.Dir, "bin"))
	if err != nil {
		t.Fatalf("missing bin dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != p.Name {
		t.Errorf("expected only the entry target, got %v", entries)
	}
}

func TestBuilder_Prepare_MissingSourceDoesNotAbort(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg)

	tests := []domain.ExpandedTest{
		{Test: domain.Test{Path: "does/not/exist.go", Expected: domain.ExpectPass}},
	}

	p, err := builder.Prepare(tests, nil)
	if err != nil {
		t.Fatalf("a missing source must fail at execution time, not prepare time: %v", err)
	}
	if _, err := os.Stat(p.SourceDir("exist")); !os.IsNotExist(err) {
		t.Error("expected no target dir for the missing source")
	}
}

func TestBuilder_Prepare_RelativeDepPathsAreRewritten(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg)

	deps := map[string]Dependency{
		"example.com/helper": {Path: "helper"},
	}

	p, err := builder.Prepare(nil, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(p.Dir, "go.mod"))
	if err != nil {
		t.Fatalf("missing go.mod: %v", err)
	}
	want := "replace example.com/helper => " + filepath.Join(cfg.PackageDir, "helper")
	if !strings.Contains(string(data), want) {
		t.Errorf("expected rewritten dependency path %q in:\n%s", want, string(data))
	}
}

func TestBuilder_Prepare_UnconfiguredPackage(t *testing.T) {
	cfg := config.New()
	builder := NewBuilder(cfg)

	_, err := builder.Prepare(nil, nil)
	if err == nil {
		t.Fatal("expected a preparation error")
	}
	var prepErr *domain.PrepareError
	if !errors.As(err, &prepErr) {
		t.Errorf("expected a PrepareError, got %T", err)
	}
}

func TestBuilder_Prepare_RebuildsFromScratch(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg)

	p, err := builder.Prepare(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stale := filepath.Join(p.Dir, "bin", "stale_target")
	if err := os.MkdirAll(stale, 0755); err != nil {
		t.Fatalf("failed to plant stale target: %v", err)
	}

	if _, err := builder.Prepare(nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected the stale target to be removed on re-prepare")
	}
}

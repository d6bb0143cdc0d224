package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.FixtureExt != DefaultFixtureExt {
		t.Errorf("expected FixtureExt %s, got %s", DefaultFixtureExt, cfg.FixtureExt)
	}
	if cfg.StagingDir != DefaultStagingDir {
		t.Errorf("expected StagingDir %s, got %s", DefaultStagingDir, cfg.StagingDir)
	}
	if cfg.ReportFile != DefaultReportFile {
		t.Errorf("expected ReportFile %s, got %s", DefaultReportFile, cfg.ReportFile)
	}
}

func TestConfig_ProjectPaths(t *testing.T) {
	cfg := New()
	cfg.PackageName = "example.com/widget"
	cfg.TargetDir = "/cache/trybuild"

	if got := cfg.ProjectName(); got != "widget-tests" {
		t.Errorf("expected project name widget-tests, got %s", got)
	}
	want := filepath.Join("/cache/trybuild", "tests", "widget")
	if got := cfg.ProjectDir(); got != want {
		t.Errorf("expected project dir %s, got %s", want, got)
	}
	if got := cfg.ReportPath(); got != filepath.Join(want, DefaultReportFile) {
		t.Errorf("unexpected report path %s", got)
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	tests := []struct {
		name        string
		flags       Flags
		wantTarget  string
		wantStaging string
	}{
		{
			name:        "no overrides",
			flags:       Flags{},
			wantTarget:  "/default",
			wantStaging: DefaultStagingDir,
		},
		{
			name:        "target override",
			flags:       Flags{TargetDir: "/custom"},
			wantTarget:  "/custom",
			wantStaging: DefaultStagingDir,
		},
		{
			name:        "staging override",
			flags:       Flags{StagingDir: "review"},
			wantTarget:  "/default",
			wantStaging: "review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.TargetDir = "/default"
			cfg.ApplyFlags(tt.flags)
			if cfg.TargetDir != tt.wantTarget {
				t.Errorf("expected target dir %s, got %s", tt.wantTarget, cfg.TargetDir)
			}
			if cfg.StagingDir != tt.wantStaging {
				t.Errorf("expected staging dir %s, got %s", tt.wantStaging, cfg.StagingDir)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	gomod := "module example.com/widget\n\ngo 1.22\n"
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}
	nested := filepath.Join(root, "internal", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	target := t.TempDir()
	t.Setenv(EnvTargetDir, target)

	t.Run("finds the module root from a nested dir", func(t *testing.T) {
		cfg, err := Discover(nested)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.PackageName != "example.com/widget" {
			t.Errorf("expected module example.com/widget, got %s", cfg.PackageName)
		}
		if cfg.PackageDir != root {
			t.Errorf("expected package dir %s, got %s", root, cfg.PackageDir)
		}
		if cfg.TargetDir != target {
			t.Errorf("expected env target dir %s, got %s", target, cfg.TargetDir)
		}
	})

	t.Run("honors the staging dir override", func(t *testing.T) {
		t.Setenv(EnvStagingDir, "review")
		cfg, err := Discover(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StagingDir != "review" {
			t.Errorf("expected staging dir review, got %s", cfg.StagingDir)
		}
	})

	t.Run("fails without a go.mod", func(t *testing.T) {
		orphan := t.TempDir()
		if _, err := Discover(orphan); err == nil {
			t.Error("expected an error when no go.mod exists")
		}
	})

	t.Run("fails on a go.mod without a module path", func(t *testing.T) {
		broken := t.TempDir()
		if err := os.WriteFile(filepath.Join(broken, "go.mod"), []byte("go 1.22\n"), 0644); err != nil {
			t.Fatalf("failed to write go.mod: %v", err)
		}
		if _, err := Discover(broken); err == nil {
			t.Error("expected an error for a module-less go.mod")
		}
	})
}

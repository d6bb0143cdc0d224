// Package config carries the harness configuration: the identity of the
// calling package, the shared artifact directory and fixture locations.
// Everything is an explicit struct field so components stay testable with
// synthetic inputs; Discover fills it from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/mod/modfile"
)

// Config holds all configuration for one harness run.
type Config struct {
	// PackageName is the module path of the unit under test.
	PackageName string
	// PackageDir is the absolute directory of the calling project, i.e.
	// the directory containing its go.mod.
	PackageDir string
	// TargetDir is the shared build-artifact directory. It persists
	// across runs as an external cache.
	TargetDir string
	// FixtureExt is the extension used for golden diagnostic fixtures.
	FixtureExt string
	// StagingDir is where bootstrapped fixtures are written for review.
	StagingDir string
	// ReportFile is the name of the JSON run report inside ProjectDir.
	ReportFile string

	// Flags holds command-line flags when driven through the CLI.
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	Pass        []string
	CompileFail []string
	TargetDir   string
	StagingDir  string
	Progress    bool
	Verbose     bool
}

// New creates a Config with defaults filled in; package identity must be
// set by the caller or via Discover.
func New() *Config {
	return &Config{
		FixtureExt: DefaultFixtureExt,
		StagingDir: DefaultStagingDir,
		ReportFile: DefaultReportFile,
	}
}

// Discover builds a Config from the environment: it loads optional .env
// overrides, locates the calling project's go.mod by walking up from dir,
// and reads the module path from it.
func Discover(dir string) (*Config, error) {
	cfg := New()

	// Optional overrides; a missing .env file is not an error.
	_ = godotenv.Load(filepath.Join(dir, DefaultEnvFile))

	pkgDir, err := findModuleRoot(dir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(pkgDir, "go.mod"))
	if err != nil {
		return nil, fmt.Errorf("read go.mod: %w", err)
	}
	name := modfile.ModulePath(data)
	if name == "" {
		return nil, fmt.Errorf("no module path in %s", filepath.Join(pkgDir, "go.mod"))
	}
	cfg.PackageName = name
	cfg.PackageDir = pkgDir

	if v := os.Getenv(EnvTargetDir); v != "" {
		cfg.TargetDir = v
	} else {
		cache, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("locate cache directory: %w", err)
		}
		cfg.TargetDir = filepath.Join(cache, "trybuild")
	}
	if v := os.Getenv(EnvStagingDir); v != "" {
		cfg.StagingDir = v
	}

	return cfg, nil
}

// ApplyFlags merges CLI flag overrides into the config.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.TargetDir != "" {
		c.TargetDir = flags.TargetDir
	}
	if flags.StagingDir != "" {
		c.StagingDir = flags.StagingDir
	}
}

// ProjectName returns the synthetic project name derived from the unit
// under test.
func (c *Config) ProjectName() string {
	return filepath.Base(c.PackageName) + "-tests"
}

// ProjectDir returns the directory the throwaway project is written to.
func (c *Config) ProjectDir() string {
	return filepath.Join(c.TargetDir, "tests", filepath.Base(c.PackageName))
}

// ReportPath returns the full path of the JSON run report.
func (c *Config) ReportPath() string {
	return filepath.Join(c.ProjectDir(), c.ReportFile)
}

// findModuleRoot walks up from dir until it finds a go.mod.
func findModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		dir = parent
	}
}

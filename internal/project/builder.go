package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/domain"
)

const (
	// EnvFile is the build env file written into the project root and
	// loaded into every build invocation's environment.
	EnvFile = "build.env"
	// binDir is the subdirectory holding one directory per binary target.
	binDir = "bin"
	// outDir is where built test binaries are placed.
	outDir = "out"
)

// buildEnv pins the build environment of the throwaway project. GOFLAGS
// suppresses a fixed allow-list of noisy but harmless diagnostics: VCS
// stamping warnings and machine-specific paths in compiler output.
var buildEnv = map[string]string{
	"GOFLAGS":     "-mod=mod -buildvcs=false -trimpath",
	"GOWORK":      "off",
	"CGO_ENABLED": "0",
	"GO111MODULE": "on",
}

// Project is the materialized throwaway project.
type Project struct {
	// Dir is the project root, rebuilt from scratch every run.
	Dir string
	// TargetDir is the shared build-artifact directory; it persists
	// across runs as an external cache.
	TargetDir string
	// Name is the synthetic project name, also the do-nothing entry
	// target's name.
	Name string
}

// SourceDir returns the directory of the named binary target.
func (p *Project) SourceDir(name string) string {
	return filepath.Join(p.Dir, binDir, name)
}

// BinaryPath returns where the named target's built binary is placed.
func (p *Project) BinaryPath(name string) string {
	return filepath.Join(p.Dir, outDir, name)
}

// Env reads the project's build env file.
func (p *Project) Env() (map[string]string, error) {
	env, err := godotenv.Read(filepath.Join(p.Dir, EnvFile))
	if err != nil {
		return nil, fmt.Errorf("read build env: %w", err)
	}
	return env, nil
}

// Builder synthesizes the throwaway project on disk.
type Builder struct {
	cfg *config.Config
}

// NewBuilder creates a new Builder.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Prepare writes the complete throwaway project: manifest, build env file,
// the do-nothing entry target, and one target directory per cleanly
// expanded test case. The project directory is rebuilt from scratch; only
// the external build cache persists between runs. Any failure here aborts
// the run before a single test executes.
func (b *Builder) Prepare(tests []domain.ExpandedTest, deps map[string]Dependency) (*Project, error) {
	if b.cfg.PackageName == "" || b.cfg.PackageDir == "" {
		return nil, &domain.PrepareError{
			Step: "identify package",
			Err:  fmt.Errorf("package name or directory not configured"),
		}
	}

	p := &Project{
		Dir:       b.cfg.ProjectDir(),
		TargetDir: b.cfg.TargetDir,
		Name:      b.cfg.ProjectName(),
	}

	manifest, err := b.makeManifest(p, tests, deps)
	if err != nil {
		return nil, &domain.PrepareError{Step: "build manifest", Err: err}
	}
	gomod, err := manifest.GoMod()
	if err != nil {
		return nil, &domain.PrepareError{Step: "serialize manifest", Err: err}
	}

	if err := os.RemoveAll(p.Dir); err != nil {
		return nil, &domain.PrepareError{Step: "clear project dir", Err: err}
	}
	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return nil, &domain.PrepareError{Step: "create project dir", Err: err}
	}
	if err := os.WriteFile(filepath.Join(p.Dir, "go.mod"), gomod, 0644); err != nil {
		return nil, &domain.PrepareError{Step: "write manifest", Err: err}
	}
	if err := godotenv.Write(buildEnv, filepath.Join(p.Dir, EnvFile)); err != nil {
		return nil, &domain.PrepareError{Step: "write build env", Err: err}
	}

	for _, bin := range manifest.Bins {
		if err := b.writeBin(p, bin, manifest); err != nil {
			return nil, &domain.PrepareError{Step: "write target " + bin.Name, Err: err}
		}
	}

	return p, nil
}

// makeManifest builds the in-memory manifest: the unit under test as a
// path dependency, extra declared dependencies path-rewritten relative to
// the calling package, the fixed entry target, and one target per cleanly
// expanded test. Tests whose expansion failed reserve no target; their
// error is reported at execution time. Two distinct sources deriving the
// same target name is a caller error rejected here: each name maps to one
// target directory, so a collision would silently overwrite the first
// source with the second.
func (b *Builder) makeManifest(p *Project, tests []domain.ExpandedTest, deps map[string]Dependency) (*Manifest, error) {
	manifest := &Manifest{
		Module:       p.Name,
		Dependencies: make(map[string]Dependency),
	}

	manifest.Dependencies[b.cfg.PackageName] = Dependency{Path: b.cfg.PackageDir}

	for name, dep := range deps {
		if dep.Path != "" && !filepath.IsAbs(dep.Path) {
			dep.Path = filepath.Join(b.cfg.PackageDir, dep.Path)
		}
		manifest.Dependencies[name] = dep
	}

	manifest.Bins = append(manifest.Bins, Bin{Name: p.Name})

	seen := make(map[string]string)
	for _, expanded := range tests {
		if expanded.Err != nil {
			continue
		}
		name := expanded.Test.Name()
		if previous, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate target name %q derived from both %s and %s", name, previous, expanded.Test.Path)
		}
		seen[name] = expanded.Test.Path

		source, err := filepath.Abs(expanded.Test.Path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", expanded.Test.Path, err)
		}
		manifest.Bins = append(manifest.Bins, Bin{
			Name:   name,
			Source: source,
		})
	}

	return manifest, nil
}

// writeBin materializes one binary target directory. The entry target (no
// source) gets a generated main; test targets get a copy of their declared
// source. A source that cannot be read is skipped here so the missing-file
// failure is attributed to that test at execution time instead of aborting
// the whole run.
func (b *Builder) writeBin(p *Project, bin Bin, manifest *Manifest) error {
	dir := p.SourceDir(bin.Name)

	if bin.Source == "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "main.go"), entrySource(manifest.Dependencies), 0644)
	}

	content, err := os.ReadFile(bin.Source)
	if err != nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "main.go"), content, 0644)
}

// entrySource generates the entry target's main, blank-importing every
// declared dependency so the prebuild compiles the whole dependency graph
// once. A broken dependency then fails the run up front instead of being
// misattributed to the first test that builds.
func entrySource(deps map[string]Dependency) []byte {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var src strings.Builder
	src.WriteString("package main\n\n")
	if len(names) > 0 {
		src.WriteString("import (\n")
		for _, name := range names {
			fmt.Fprintf(&src, "\t_ %q\n", name)
		}
		src.WriteString(")\n\n")
	}
	src.WriteString("func main() {}\n")
	return []byte(src.String())
}

// Package project materializes the throwaway build project: a manifest
// declaring the unit under test as a path dependency plus one synthetic
// binary target per test case, and a build env file that suppresses noisy
// but harmless build diagnostics.
package project

import (
	"fmt"
	"sort"
	"strings"
)

// goDirective is the language version written into the synthetic go.mod.
const goDirective = "1.22"

// defaultDepVersion is the placeholder version used for path-replaced
// dependencies, which never resolve through a module proxy.
const defaultDepVersion = "v0.0.0"

// Dependency is one entry of the synthetic manifest's dependency map.
// Path-based dependencies are declared with a placeholder version and a
// replace directive pointing at the local directory.
type Dependency struct {
	// Version is the module version; empty means path-only.
	Version string
	// Path is a local directory the dependency is replaced with.
	// Relative paths are resolved against the calling package directory
	// before the manifest is built.
	Path string
}

// Bin is one synthetic binary target: a name (unique per run after glob
// expansion) and the source file the target is generated from.
type Bin struct {
	Name   string
	Source string
}

// Manifest is the in-memory synthetic project definition.
type Manifest struct {
	Module       string
	Dependencies map[string]Dependency
	Bins         []Bin
}

// GoMod serializes the manifest into go.mod text. Output is deterministic:
// dependency names are emitted in sorted order.
func (m *Manifest) GoMod() ([]byte, error) {
	if m.Module == "" {
		return nil, fmt.Errorf("manifest has no module name")
	}

	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n\ngo %s\n", m.Module, goDirective)

	if len(names) > 0 {
		b.WriteString("\nrequire (\n")
		for _, name := range names {
			dep := m.Dependencies[name]
			version := dep.Version
			if version == "" {
				version = defaultDepVersion
			}
			fmt.Fprintf(&b, "\t%s %s\n", name, version)
		}
		b.WriteString(")\n")
	}

	for _, name := range names {
		dep := m.Dependencies[name]
		if dep.Path != "" {
			fmt.Fprintf(&b, "\nreplace %s => %s\n", name, dep.Path)
		}
	}

	return []byte(b.String()), nil
}

// Package cli holds the command-line flag definitions shared by the
// trybuild commands.
package cli

import "github.com/rexhoffman/trybuild/internal/config"

// Flags holds command-line flags.
type Flags struct {
	Pass        []string
	CompileFail []string
	TargetDir   string
	StagingDir  string
	Progress    bool
	Verbose     bool
}

// ToConfigFlags converts CLI flags to config flags.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Pass:        f.Pass,
		CompileFail: f.CompileFail,
		TargetDir:   f.TargetDir,
		StagingDir:  f.StagingDir,
		Progress:    f.Progress,
		Verbose:     f.Verbose,
	}
}

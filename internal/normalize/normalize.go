// Package normalize rewrites raw build diagnostics into a canonical,
// environment-independent form so two runs on different machines produce
// identical text for the same semantic diagnostic.
package normalize

import (
	"regexp"
	"strings"
)

// Options names the environment-specific directories to mask. Longer
// paths are masked before their parents so nested directories never leak
// through a partial replacement.
type Options struct {
	// ProjectDir is the throwaway project root, masked as $DIR.
	ProjectDir string
	// TargetDir is the shared artifact directory, masked as $TARGET.
	TargetDir string
	// PackageDir is the calling package directory, masked as $PKG.
	PackageDir string
}

// noiseLine matches toolchain output that carries no diagnostic content:
// module download/verification chatter, toolchain switching notices and
// version banners.
var noiseLine = regexp.MustCompile(`^(go: (downloading|finding|extracting|verifying|added|switching) |go version go\d)`)

// Diagnostics maps raw diagnostic bytes to canonical text. The transform
// is total, deterministic and idempotent: line endings are unified,
// environment-specific paths are masked, toolchain noise lines are
// dropped, and the result either is empty or ends with exactly one
// newline. Message text, code spans and severity labels are untouched.
func Diagnostics(raw []byte, opts Options) string {
	s := strings.ReplaceAll(string(raw), "\r\n", "\n")

	if opts.ProjectDir != "" {
		s = strings.ReplaceAll(s, opts.ProjectDir, "$DIR")
	}
	if opts.TargetDir != "" {
		s = strings.ReplaceAll(s, opts.TargetDir, "$TARGET")
	}
	if opts.PackageDir != "" {
		s = strings.ReplaceAll(s, opts.PackageDir, "$PKG")
	}

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if noiseLine.MatchString(line) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t"))
	}

	s = strings.Join(kept, "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	return s + "\n"
}

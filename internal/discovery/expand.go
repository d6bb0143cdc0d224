// Package discovery expands declared test specifications into the
// concrete, ordered list of test cases a run will execute.
package discovery

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rexhoffman/trybuild/internal/domain"
)

// wildcardChars are the pattern metacharacters that mark a path as a glob
// rather than a literal file path.
const wildcardChars = "*?["

// IsPattern reports whether path contains glob metacharacters.
func IsPattern(path string) bool {
	return strings.ContainsAny(path, wildcardChars)
}

// ExpandGlobs resolves every declared test into concrete test cases.
//
// Literal paths pass through unchanged, even when the file does not exist;
// existence is checked at execution time so a missing file fails that one
// test instead of disappearing from the list. Patterns are resolved
// against the filesystem in match order, each match inheriting the
// declared outcome. A pattern that fails to resolve is retained as a
// single test carrying the error, reported when its turn comes up.
func ExpandGlobs(tests []domain.Test) []domain.ExpandedTest {
	var expanded []domain.ExpandedTest

	for _, test := range tests {
		if !IsPattern(test.Path) {
			expanded = append(expanded, domain.ExpandedTest{Test: test})
			continue
		}

		matches, err := doublestar.FilepathGlob(test.Path)
		if err != nil {
			expanded = append(expanded, domain.ExpandedTest{
				Test: test,
				Err: &domain.TestError{
					Kind: domain.KindGlob,
					Path: test.Path,
					Err:  err,
				},
			})
			continue
		}

		for _, match := range matches {
			expanded = append(expanded, domain.ExpandedTest{
				Test: domain.Test{Path: match, Expected: test.Expected},
			})
		}
	}

	return expanded
}

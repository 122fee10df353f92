package code_analyzer

import (
	"regexp"
	"strings"
)

// PatternMatcher matches relative file paths against a single glob pattern.
// Supported syntax: "**" matches across path separators, "*" matches within
// one path segment, "?" matches exactly one character. Patterns are anchored
// to the start of the path and matching is case-sensitive.
type PatternMatcher struct {
	re *regexp.Regexp
}

// CompilePattern translates a glob pattern into a matcher. The translation is
// total: every input string compiles to some matcher. Literal characters are
// escaped before the wildcard substitution, so malformed patterns degrade to
// literal prefixes instead of failing.
func CompilePattern(pattern string) *PatternMatcher {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*\*`, `.*`)
	escaped = strings.ReplaceAll(escaped, `\*`, `[^/]*`)
	escaped = strings.ReplaceAll(escaped, `\?`, `.`)

	re, err := regexp.Compile("^" + escaped)
	if err != nil {
		re = regexp.MustCompile("^" + regexp.QuoteMeta(pattern))
	}

	return &PatternMatcher{re: re}
}

// Matches reports whether the relative path matches the pattern. The match is
// anchored at the start of the path only, mirroring prefix-style glob
// matching: "*.py" matches "a.py" and also "a.pyc".
func (m *PatternMatcher) Matches(relativePath string) bool {
	return m.re.MatchString(relativePath)
}

// CompilePatterns compiles a list of glob patterns.
func CompilePatterns(patterns []string) []*PatternMatcher {
	matchers := make([]*PatternMatcher, 0, len(patterns))
	for _, pattern := range patterns {
		matchers = append(matchers, CompilePattern(pattern))
	}
	return matchers
}

// matchesAny reports whether the path matches at least one matcher.
func matchesAny(relativePath string, matchers []*PatternMatcher) bool {
	for _, matcher := range matchers {
		if matcher.Matches(relativePath) {
			return true
		}
	}
	return false
}

package domain

import (
	"log/slog"
	"regexp"
)

// CompilePatterns compiles ignore patterns as regular expressions.
// A pattern that fails to compile is logged and skipped, never fatal, so a
// single bad entry cannot disable the rest of the list.
func CompilePatterns(patterns []string, logger *slog.Logger) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping invalid ignore pattern", "pattern", pattern, "error", err)
			}
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// MatchesAny reports whether any compiled pattern matches anywhere in the
// candidate string. Patterns are unanchored unless they anchor themselves.
func MatchesAny(candidate string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(candidate) {
			return true
		}
	}
	return false
}

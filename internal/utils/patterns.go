package utils

import (
	"regexp"
	"strings"
)

// IsWildcardPattern checks if a string contains wildcard characters (* or ?)
func IsWildcardPattern(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// MatchesWildcardPattern checks if a string matches a wildcard pattern.
// The pattern can contain * (any number of characters) and ? (exactly one
// character); everything else matches literally, including the ':' and '/'
// separators, so a full ARN can be matched against an ARN pattern such as
// "arn:aws:s3:::my-bucket/*".
func MatchesWildcardPattern(pattern, s string) bool {
	re, err := regexp.Compile(wildcardToRegex(pattern))
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// wildcardToRegex converts a wildcard pattern to an anchored regex pattern
func wildcardToRegex(pattern string) string {
	escapeChars := []string{"\\", ".", "+", "(", ")", "[", "]", "{", "}", "^", "$", "|"}
	result := pattern

	for _, char := range escapeChars {
		result = strings.ReplaceAll(result, char, "\\"+char)
	}

	result = strings.ReplaceAll(result, "?", ".")
	result = strings.ReplaceAll(result, "*", ".*")

	return "^" + result + "$"
}

// MatchAny checks if a string matches any of the provided wildcard patterns
func MatchAny(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchesWildcardPattern(pattern, s) {
			return true
		}
	}
	return false
}

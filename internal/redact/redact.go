// Package redact removes sensitive information from strings before they are
// logged. Error messages coming back from the database routinely quote the
// offending row, so besides credentials and paths this package strips the
// personal data held by the personas API: emails, phone numbers and
// identity document numbers.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedNumberPlaceholder     = "[REDACTED_NUMBER]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[SQL_VALUES_REDACTED]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier rules may shorten the input seen by
// later ones.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*`), RedactedStackTracePlaceholder},
	{regexp.MustCompile(`(?i)\b(?:postgres|postgresql|mysql|mongodb)://[^@\s]+@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*\S+`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`\bVALUES\s*\([^)]*\)`), "VALUES " + RedactedSQLPlaceholder},
	{regexp.MustCompile(`\b(WHERE|SET)\b[^;]*`), "$1 " + RedactedSQLPlaceholder},
	{regexp.MustCompile(`\+\d[\d\s-]{6,}\d|\b\d{8,}\b`), RedactedNumberPlaceholder},
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

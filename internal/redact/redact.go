// Package redact removes credentials from strings before they are logged.
// Error messages from HTTP clients routinely embed the full request URL,
// which for the services this tool talks to can include the API key.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	KeyPlaceholder  = "[REDACTED_KEY]"
	PathPlaceholder = "[REDACTED_PATH]"
)

var (
	// key=..., api_key=..., token=... query parameters or assignments.
	keyParamRegex = regexp.MustCompile(`(?i)((?:api[_-]?key|key|token|secret)\s*[=:]\s*)[A-Za-z0-9_\-.~+/%]{4,}`)

	// Bare credential-looking tokens introduced by common header names.
	bearerRegex = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Absolute filesystem paths, which may reveal where key files live.
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`)
)

// String redacts credentials and filesystem paths from the input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := keyParamRegex.ReplaceAllString(input, "${1}"+KeyPlaceholder)
	result = bearerRegex.ReplaceAllString(result, "${1}"+KeyPlaceholder)
	result = unixPathRegex.ReplaceAllString(result, PathPlaceholder)
	result = winPathRegex.ReplaceAllString(result, PathPlaceholder)

	return result
}

// Error redacts an error's Error() output. A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

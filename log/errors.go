package log

import (
	"fmt"
	"strings"
)

// Error codes for all application errors
const (
	// Environment errors (1xx)
	ErrToolMissing = "E101" // Required external tool not found on PATH

	// Usage errors (2xx)
	ErrUnknownCommand  = "E201" // Input token matches no known alias
	ErrMissingArgument = "E202" // Required argument not supplied

	// Git operation errors (3xx)
	ErrGitCommandFailed = "E301" // A git subprocess exited non-zero
	ErrGitNoBranch      = "E302" // Failed to determine the current branch
	ErrGitStashNotFound = "E303" // No stash matched the given name on this branch
	ErrGhCommandFailed  = "E304" // The pull-request extension exited non-zero

	// Configuration errors (4xx)
	ErrConfigReadFailed  = "E401" // Error reading configuration file
	ErrConfigParseFailed = "E402" // Error parsing configuration file
	ErrConfigBadAlias    = "E403" // User alias clashes with a built-in one

	// General errors (9xx)
	ErrOperationFailed = "E999" // Generic operation failed
)

// FormatError formats an error with a consistent structure including the error code
func FormatError(code string, description string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s] %s: %v", code, description, err)
	}
	return fmt.Sprintf("[%s] %s", code, description)
}

// GetErrorCode extracts the error code from a formatted error message
func GetErrorCode(errorMsg string) string {
	if strings.HasPrefix(errorMsg, "[E") && len(errorMsg) >= 6 {
		return errorMsg[1:5]
	}
	return ""
}

package errors

// Error codes for categorizing provisioning failures.
// Fatal codes abort the whole run with exit code 1; recoverable codes are
// reported and the interactive menu keeps running.
const (
	// CodeOK indicates success (not an error).
	CodeOK = "OK"

	// CodeUnknown indicates an unknown error occurred.
	CodeUnknown = "UNKNOWN"

	// CodePrivilege indicates the process lacks required privileges (root).
	CodePrivilege = "PRIVILEGE_ERROR"

	// CodeDependencyInstall indicates a package or install-script failure.
	CodeDependencyInstall = "DEPENDENCY_INSTALL_ERROR"

	// CodeValidation indicates malformed operator input.
	CodeValidation = "VALIDATION_ERROR"

	// CodeLaunch indicates both primary and fallback service starts failed.
	CodeLaunch = "LAUNCH_ERROR"

	// CodeQuery indicates a status-check network or parse failure.
	CodeQuery = "QUERY_ERROR"

	// CodeInternal indicates an internal error.
	CodeInternal = "INTERNAL"
)

// IsFatalCode reports whether an error code aborts the provisioning run.
func IsFatalCode(code string) bool {
	switch code {
	case CodePrivilege, CodeDependencyInstall, CodeValidation, CodeLaunch:
		return true
	default:
		return false
	}
}

// ExitCode maps an error code to the process exit code.
func ExitCode(code string) int {
	if code == CodeOK {
		return 0
	}
	return 1
}

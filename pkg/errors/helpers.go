package errors

import "errors"

// IsPrivilege checks if an error is a privilege error.
func IsPrivilege(err error) bool {
	if err == nil {
		return false
	}

	var privilegeErr *PrivilegeError
	return errors.As(err, &privilegeErr) || errors.Is(err, ErrNotRoot)
}

// IsDependencyInstall checks if an error is a dependency install failure.
func IsDependencyInstall(err error) bool {
	if err == nil {
		return false
	}

	var installErr *DependencyInstallError
	return errors.As(err, &installErr)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr) || errors.Is(err, ErrInvalidInput)
}

// IsLaunch checks if an error is a service launch failure.
func IsLaunch(err error) bool {
	if err == nil {
		return false
	}

	var launchErr *LaunchError
	return errors.As(err, &launchErr)
}

// IsQuery checks if an error is a recoverable status-query failure.
func IsQuery(err error) bool {
	if err == nil {
		return false
	}

	var queryErr *QueryError
	return errors.As(err, &queryErr) || errors.Is(err, ErrNullResult)
}

// GetCode extracts the error code from any error.
// Returns CodeOK for nil and CodeUnknown for untyped errors.
func GetCode(err error) string {
	if err == nil {
		return CodeOK
	}

	var typed Error
	if errors.As(err, &typed) {
		return typed.Code()
	}
	return CodeUnknown
}

// IsFatal reports whether an error should abort the provisioning run.
// Untyped errors are treated as fatal; only query errors are recoverable.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	code := GetCode(err)
	if code == CodeUnknown || code == CodeInternal {
		return true
	}
	return IsFatalCode(code)
}

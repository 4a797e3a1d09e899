// Package errors provides error handling conventions for the trk CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type for exit code handling, and exit code constants following standard
// Unix conventions.
//
// Sentinel errors allow callers to check for specific conditions with
// [errors.Is]:
//
//	if errors.Is(err, trkerrors.ErrPrerequisiteMigration) {
//	    // the migration batch was aborted
//	}
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As].
package errors

// Package cmd provides CLI command implementations.
package cmd

// Exit codes for the fitsmeta CLI.
//
// The report-producing invocations (root and inspect) always exit 0 once a
// report is printed, even when the report is error-shaped; failure is
// communicated through content there, not through the exit code.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitNotFound indicates a file or glob match was not found.
	ExitNotFound = 2

	// ExitUnreadable indicates a file could not be read as FITS.
	ExitUnreadable = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitNotFound:
		return "Not Found"
	case ExitUnreadable:
		return "Unreadable File"
	default:
		return "Unknown"
	}
}

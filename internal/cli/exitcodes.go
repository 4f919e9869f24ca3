package cli

import (
	"errors"

	"github.com/yaklabco/gobbmd/internal/configloader"
	"github.com/yaklabco/gobbmd/pkg/fsutil"
)

// Exit codes for gobbmd.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFindings indicates check completed but found issues (strict mode).
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors, including an
	// out-of-range tab width.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrFindings is returned when check findings should fail the command.
// It is a signal for the exit code, not a loggable failure.
var ErrFindings = errors.New("findings detected")

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrFindings):
		return ExitFindings
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

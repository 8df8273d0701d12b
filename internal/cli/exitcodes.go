package cli

import (
	"errors"

	"github.com/yaklabco/asciistamp/internal/configloader"
	"github.com/yaklabco/asciistamp/pkg/fsutil"
)

// Exit codes for asciistamp.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an unclassified failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors on the target.
	ExitIOError = 74
)

// Sentinel errors used to pick an exit code.
var (
	// ErrInvalidUsage wraps command-line usage errors.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading errors.
	ErrConfig = errors.New("failed to load configuration")
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrNotUTF8),
		errors.Is(err, fsutil.ErrModifiedExternally),
		errors.Is(err, fsutil.ErrWriteFailed):
		return ExitIOError
	default:
		return ExitFailure
	}
}

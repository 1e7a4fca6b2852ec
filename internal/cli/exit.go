package cli

import (
	"errors"

	"github.com/rshade/paginate/internal/config"
	"github.com/rshade/paginate/internal/ingest"
	"github.com/rshade/paginate/internal/pagination"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	// ExitUsage reports a request that can never succeed as given, such as a
	// page past the end or an unknown output format.
	ExitUsage = 2
)

// usageErrors are the sentinel errors that map to ExitUsage.
var usageErrors = []error{ //nolint:gochecknoglobals // Read-only lookup table.
	pagination.ErrPageOutOfRange,
	pagination.ErrInvalidPageSize,
	pagination.ErrInvalidNavSize,
	pagination.ErrInvalidSortOrder,
	pagination.ErrInvalidSortFormat,
	pagination.ErrEmptySortField,
	config.ErrInvalidFormat,
	config.ErrUnsupportedVersion,
	ingest.ErrUnsupportedFormat,
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return ExitUsage
		}
	}
	return ExitError
}

// Package errs defines the sentinel errors shared by every BLF decoding
// package in this module: one package-level sentinel per failure kind,
// wrapped with offset/context at the call site via fmt.Errorf's %w, and
// compared by callers with errors.Is.
package errs

import "errors"

var (
	// ErrBadPreamble is returned when the file's 144-byte FileStatistics
	// preamble is missing the "LOGG" signature or declares a statistics_size
	// other than 144. This is the only fatal error the top-level reader ever
	// returns from ReadBytes/ReadFile.
	ErrBadPreamble = errors.New("blf: bad file preamble")

	// ErrBadSignature is returned when an object does not begin with "LOBJ".
	// Recoverable: the caller advances one byte and retries.
	ErrBadSignature = errors.New("blf: bad object signature")

	// ErrUnknownHeaderVersion is returned when header_version is neither 1
	// nor 2. Recoverable: the caller skips via object_size.
	ErrUnknownHeaderVersion = errors.New("blf: unknown object header version")

	// ErrInconsistentHeader is returned when object_size < header_size.
	// Recoverable: the caller advances to the next aligned position.
	ErrInconsistentHeader = errors.New("blf: object_size smaller than header_size")

	// ErrTruncated is returned when a cursor read runs past the end of its
	// buffer. Recoverable at an object boundary; fatal mid-preamble.
	ErrTruncated = errors.New("blf: truncated read")

	// ErrUnsupportedCompression is returned when a LogContainer declares a
	// compression_method this reader does not implement. Recoverable: the
	// container is skipped.
	ErrUnsupportedCompression = errors.New("blf: unsupported container compression method")

	// ErrBadContainer is returned when a container's payload fails to
	// inflate or the inflated length disagrees with uncompressed_size by
	// more than a 4-byte alignment pad. Recoverable: the container is
	// skipped.
	ErrBadContainer = errors.New("blf: bad log container")

	// ErrContainerTooLarge is returned when a LogContainer's declared
	// uncompressed_size exceeds the configured maximum. Recoverable: the
	// container is skipped before any inflate buffer is allocated for it.
	ErrContainerTooLarge = errors.New("blf: container uncompressed_size exceeds configured maximum")
)

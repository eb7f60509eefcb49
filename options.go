package blf

import (
	"github.com/tracebus/blf/internal/options"
	"github.com/tracebus/blf/log"
)

// ReaderConfig holds the reader's tunables. It is never constructed
// directly by callers — pass ReaderOption values to ReadBytes or ReadFile.
type ReaderConfig struct {
	strict           bool
	parallel         bool
	maxContainerSize uint32
	logger           *log.Helper
}

// ReaderOption configures a Reader, built on the same generic functional-
// option plumbing (internal/options) used by every configurable type in this
// module.
type ReaderOption = options.Option[*ReaderConfig]

func defaultReaderConfig() *ReaderConfig {
	return &ReaderConfig{logger: log.Nop()}
}

// WithStrict enables strict mode: any recoverable decode failure that would
// normally become a Diagnostic instead aborts the read with an error. Off
// by default: the reader's default policy is liberal.
func WithStrict(strict bool) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.strict = strict
	})
}

// WithParallelContainers enables decoding independent LogContainer objects
// concurrently and merging their output in file order. Off by default; the
// serial baseline is always conformant.
func WithParallelContainers(enabled bool) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.parallel = enabled
	})
}

// WithMaxContainerSize caps the uncompressed_size a LogContainer may declare
// before the reader will inflate it. A container declaring more than n
// bytes is skipped with a BadContainer diagnostic instead of being handed to
// the zlib reader, so a hostile or corrupt uncompressed_size can't drive an
// oversized allocation. n <= 0 (the default) means unlimited.
func WithMaxContainerSize(n int) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		if n < 0 {
			n = 0
		}
		c.maxContainerSize = uint32(n)
	})
}

// WithLogger supplies a Logger that receives one Warn line for every
// recoverable condition the reader records as a Diagnostic.
func WithLogger(logger log.Logger) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.logger = log.NewHelper(logger)
	})
}

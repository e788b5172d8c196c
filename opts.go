package litematic

import (
	"log/slog"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxRegionVolume caps the cell count of a single decoded region.
// The packed id array is expanded in memory on read, so an oversized size
// field in a small compressed file could otherwise force a huge
// allocation. Set the limit to 0 to disable it.
const DefaultMaxRegionVolume = 64 << 20

// ReadOption configures Read, ReadFile, and the hydration they perform.
type ReadOption func(*readConfig)

type readConfig struct {
	maxRegionVolume uint32
	logger          *slog.Logger
}

func defaultReadConfig() readConfig {
	return readConfig{maxRegionVolume: DefaultMaxRegionVolume}
}

// log returns the logger, falling back to a discard logger if nil.
func (c readConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// WithMaxRegionVolume limits the cell count of a single decoded region.
// Reads of a region above the limit fail with ErrRegionTooLarge.
// Set limit to 0 to disable the limit.
func WithMaxRegionVolume(limit uint32) ReadOption {
	return func(c *readConfig) {
		c.maxRegionVolume = limit
	}
}

// WithLogger sets a logger for debug-level decode notes.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) ReadOption {
	return func(c *readConfig) {
		c.logger = logger
	}
}

// WriteOption configures Write and WriteFile.
type WriteOption func(*writeConfig)

type writeConfig struct {
	compressionLevel int
}

func defaultWriteConfig() writeConfig {
	return writeConfig{compressionLevel: gzip.DefaultCompression}
}

// WithCompressionLevel sets the gzip level for the file envelope, from
// gzip.NoCompression through gzip.BestCompression. Every level produces a
// valid file; this only trades size against speed.
func WithCompressionLevel(level int) WriteOption {
	return func(c *writeConfig) {
		c.compressionLevel = level
	}
}

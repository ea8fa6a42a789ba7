package fastcdc

import "fmt"

const (
	// DefaultAvgSize is the target average chunk size used when New is
	// called without WithAvgSize (8 KiB, matching original_source's
	// fastcdc_py default).
	DefaultAvgSize = 8 * 1024

	// defaultRefillQuantum is the minimum amount of fresh data the
	// stream chunker tries to pull per refill (spec §4.3).
	defaultRefillQuantum = 64 * 1024
)

// Option configures a Chunker or ChunkerCore built by New/NewChunkerCore.
type Option func(*config) error

// config holds the raw (pre-validation) chunking configuration. minSize
// and maxSize default relative to avgSize when left at zero, matching
// spec §4.6 (min = avg/4, max = avg*8).
type config struct {
	minSize    uint64
	avgSize    uint64
	maxSize    uint64
	fatChunks  bool
	digest     Digest
	bufferSize int
}

func defaultConfig() *config {
	return &config{avgSize: DefaultAvgSize}
}

// resolve applies the spec §4.6 defaults for any size left unset, then
// validates the result and derives the masks.
func (c *config) resolve() (params, error) {
	if c.avgSize == 0 {
		c.avgSize = DefaultAvgSize
	}
	if c.minSize == 0 {
		c.minSize = c.avgSize / 4
	}
	if c.maxSize == 0 {
		c.maxSize = c.avgSize * 8
	}
	if c.bufferSize == 0 {
		c.bufferSize = defaultRefillQuantum
	}
	if c.maxSize > uint64(c.bufferSize) {
		c.bufferSize = int(c.maxSize)
	}

	return validateParams(c.minSize, c.avgSize, c.maxSize)
}

// WithMinSize sets the minimum chunk size (spec §6: 64 to 67_108_864).
// Defaults to avgSize/4 when unset.
func WithMinSize(size uint64) Option {
	return func(c *config) error {
		c.minSize = size
		return nil
	}
}

// WithAvgSize sets the target average chunk size (spec §6: 256 to
// 268_435_456). Defaults to DefaultAvgSize (8 KiB) when unset.
func WithAvgSize(size uint64) Option {
	return func(c *config) error {
		c.avgSize = size
		return nil
	}
}

// WithMaxSize sets the maximum chunk size (spec §6: 1024 to
// 1_073_741_824). Defaults to avgSize*8 when unset.
func WithMaxSize(size uint64) Option {
	return func(c *config) error {
		c.maxSize = size
		return nil
	}
}

// WithFatChunks requests that each emitted Chunk carry its raw bytes in
// Chunk.Data (spec §3's "fat chunk").
func WithFatChunks() Option {
	return func(c *config) error {
		c.fatChunks = true
		return nil
	}
}

// WithDigest attaches a digest producer; each emitted Chunk's Hash field
// is populated by calling d.Sum once per chunk (spec §4.5).
func WithDigest(d Digest) Option {
	return func(c *config) error {
		if d == nil {
			return fmt.Errorf("%w: digest must not be nil", ErrInvalidParameter)
		}
		c.digest = d
		return nil
	}
}

// WithBufferSize overrides the stream chunker's internal refill buffer.
// Defaults to max(64 KiB, maxSize) per spec §4.3; a size below maxSize is
// raised to maxSize when the options are resolved.
func WithBufferSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: bufferSize must be positive, got %d", ErrInvalidParameter, size)
		}
		c.bufferSize = size
		return nil
	}
}

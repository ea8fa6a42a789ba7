package fastcdc

// ChunkerCore implements zero-allocation content-defined chunking using the
// Gear hash algorithm from spec §4.2, matching bit-for-bit the boundary
// decisions of original_source/fastcdc/original.py's FastCDC.cut. It is
// the low-level API for performance-critical code that manages its own
// buffers; Chunker (chunker.go) is built on top of it.
//
// Unlike a stateful rolling scanner, ChunkerCore carries no state across
// calls beyond its configuration: each call to FindBoundary scans a
// self-contained window starting at hash state zero, matching spec §4.2's
// "the hash state is not carried across chunks; it is reset to zero at
// each invocation".
type ChunkerCore struct {
	minSize uint64
	avgSize uint64
	maxSize uint64
	maskS   uint32
	maskL   uint32
}

// NewChunkerCore creates a new ChunkerCore with the given options.
func NewChunkerCore(opts ...Option) (*ChunkerCore, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	p, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	return &ChunkerCore{
		minSize: p.minSize,
		avgSize: p.avgSize,
		maxSize: p.maxSize,
		maskS:   p.maskS,
		maskL:   p.maskL,
	}, nil
}

// FindBoundary scans buf for a chunk boundary and returns its offset. The
// returned offset is always in [min(minSize, len(buf)), min(maxSize,
// len(buf))]; the function is total and cannot fail (spec §4.2).
//
// This is a zero-allocation API: the caller owns buf and is responsible
// for tracking the absolute stream position and for stitching buf across
// successive calls (see Chunker.Next for the stitching discipline).
func (c *ChunkerCore) FindBoundary(buf []byte) int {
	center := centerSize(c.avgSize, c.minSize, uint64(len(buf)))
	return findCut(buf, c.minSize, c.maxSize, center, c.maskS, c.maskL)
}

// MinSize returns the minimum chunk size.
func (c *ChunkerCore) MinSize() uint64 { return c.minSize }

// AvgSize returns the target average chunk size.
func (c *ChunkerCore) AvgSize() uint64 { return c.avgSize }

// MaxSize returns the maximum chunk size.
func (c *ChunkerCore) MaxSize() uint64 { return c.maxSize }

package fastcdc

import (
	"errors"
	"io"
)

// Chunker is the streaming driver described in spec §4.3: it maintains a
// fixed-capacity buffer over an arbitrary Source, repeatedly invokes the
// boundary finder, and yields Chunk records one at a time via Next.
//
// A Chunker is single-pass and not safe for concurrent use by multiple
// goroutines; it carries mutable buffer and cursor state (spec §5).
type Chunker struct {
	core ChunkerCore
	src  Source

	fat    bool
	digest Digest

	buf    []byte
	cursor int
	offset uint64
	eof    bool
}

// New is the library's public entry point (spec §4.6): it validates opts,
// derives the masks, and returns a Chunker ready to stream Chunk records
// from src via Next.
func New(src Source, opts ...Option) (*Chunker, error) {
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

	buf := make([]byte, cfg.bufferSize)

	return &Chunker{
		core: ChunkerCore{
			minSize: p.minSize,
			avgSize: p.avgSize,
			maxSize: p.maxSize,
			maskS:   p.maskS,
			maskL:   p.maskL,
		},
		src:    src,
		fat:    cfg.fatChunks,
		digest: cfg.digest,
		buf:    buf,
		cursor: len(buf), // start empty; triggers the initial fillBuffer read
	}, nil
}

// fillBuffer ensures buf holds enough unconsumed data for a boundary
// decision: it compacts unconsumed bytes to the front, then reads more
// from src, matching the teacher's fillBuffer compaction discipline.
func (c *Chunker) fillBuffer() error {
	n := len(c.buf) - c.cursor
	if uint64(n) >= c.core.maxSize {
		return nil
	}

	copy(c.buf[:n], c.buf[c.cursor:])
	c.cursor = 0

	if c.eof {
		c.buf = c.buf[:n]
		return nil
	}

	m, err := io.ReadFull(c.src, c.buf[n:])
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		c.buf = c.buf[:n+m]
		c.eof = true
	case err != nil:
		return err
	}

	return nil
}

// Next returns the next Chunk from the stream, or io.EOF once the source
// is exhausted (spec §4.3's termination rule). Any error from the
// underlying source surfaces here; chunks already returned remain valid.
func (c *Chunker) Next() (Chunk, error) {
	if err := c.fillBuffer(); err != nil {
		return Chunk{}, err
	}

	available := c.buf[c.cursor:]
	if len(available) == 0 {
		return Chunk{}, io.EOF
	}

	cut := c.core.FindBoundary(available)

	chunk := Chunk{
		Offset: c.offset,
		Length: uint64(cut),
	}

	if c.fat {
		data := make([]byte, cut)
		copy(data, available[:cut])
		chunk.Data = data
	}

	if c.digest != nil {
		chunk.Hash = c.digest.Sum(available[:cut])
	}

	c.cursor += cut
	c.offset += uint64(cut)

	return chunk, nil
}

// Offset returns the current absolute offset in the stream — the number
// of bytes already partitioned into emitted chunks.
func (c *Chunker) Offset() uint64 { return c.offset }

// Reset rebinds the Chunker to a new Source, clearing all stream state
// (buffer contents, cursor, offset, eof) while keeping its resolved
// configuration. This is the hook ChunkerPool uses to recycle a Chunker
// without re-validating options or reallocating its buffer.
func (c *Chunker) Reset(src Source) {
	c.src = src
	c.buf = c.buf[:cap(c.buf)]
	c.cursor = len(c.buf)
	c.offset = 0
	c.eof = false
}

// Close releases the underlying Source's owned resources (spec §3's
// lifecycle rule: a memory mapping or file handle the source adapter
// opened is released deterministically when the chunker is done with it).
func (c *Chunker) Close() error {
	return c.src.Close()
}

package fastcdc

import "sync"

// ChunkerPool recycles Chunker instances across successive sources, per
// the teacher's pooling pattern: high-throughput callers (a bulk ingest
// loop processing many files back to back) avoid paying for a fresh
// buffer allocation and option-validation pass on every file.
type ChunkerPool struct {
	pool sync.Pool
	opts []Option
}

// NewChunkerPool creates a ChunkerPool. Every Chunker it hands out is
// configured with opts; opts are validated eagerly so a bad option is
// reported at construction time rather than on first Get.
func NewChunkerPool(opts ...Option) (*ChunkerPool, error) {
	if _, err := New(FromBytes(nil), opts...); err != nil {
		return nil, err
	}

	return &ChunkerPool{opts: opts}, nil
}

// Get retrieves a Chunker bound to src, reusing a pooled instance when
// one is available.
func (p *ChunkerPool) Get(src Source) (*Chunker, error) {
	if v := p.pool.Get(); v != nil {
		c := v.(*Chunker)
		c.Reset(src)
		return c, nil
	}

	return New(src, p.opts...)
}

// Put returns a Chunker to the pool. The caller must not use c again
// afterward.
func (p *ChunkerPool) Put(c *Chunker) {
	c.Reset(nil)
	p.pool.Put(c)
}

// ChunkerCorePool recycles ChunkerCore instances. Because ChunkerCore
// carries no mutable state beyond its resolved configuration (spec
// §4.2), pooling it only saves the option-resolution work done in
// NewChunkerCore, not per-call state resets.
type ChunkerCorePool struct {
	pool sync.Pool
	opts []Option
}

// NewChunkerCorePool creates a ChunkerCorePool. opts are validated
// eagerly against a probe ChunkerCore.
func NewChunkerCorePool(opts ...Option) (*ChunkerCorePool, error) {
	if _, err := NewChunkerCore(opts...); err != nil {
		return nil, err
	}

	return &ChunkerCorePool{opts: opts}, nil
}

// Get retrieves a ChunkerCore from the pool, or builds a new one if the
// pool is empty.
func (p *ChunkerCorePool) Get() (*ChunkerCore, error) {
	if v := p.pool.Get(); v != nil {
		return v.(*ChunkerCore), nil
	}

	return NewChunkerCore(p.opts...)
}

// Put returns a ChunkerCore to the pool for reuse.
func (p *ChunkerCorePool) Put(c *ChunkerCore) {
	p.pool.Put(c)
}

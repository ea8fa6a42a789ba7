// Package fastcdc implements FastCDC content-defined chunking (CDC): it
// partitions a byte stream into variable-length chunks whose boundaries
// are determined by the stream's content rather than by fixed offsets, so
// that a small edit to the source only perturbs the chunks touching the
// edit.
//
// # Overview
//
// Boundaries are found with a rolling Gear hash and a two-phase
// normalized mask, as described in Xia et al.'s FastCDC paper: a stricter
// mask is applied before the target chunk's center and a looser mask
// after it, which concentrates chunk sizes around avgSize without the
// bimodal distribution a single-mask scheme produces.
//
// # Quick start
//
// The streaming API is the common entry point:
//
//	src, err := fastcdc.FromReader(r)
//	if err != nil {
//	    // handle source errors
//	}
//	c, err := fastcdc.New(src, fastcdc.WithAvgSize(64*1024))
//	if err != nil {
//	    // handle invalid parameters
//	}
//	defer c.Close()
//	for {
//	    chunk, err := c.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // chunk.Offset, chunk.Length always populated;
//	    // chunk.Data only with WithFatChunks, chunk.Hash only with WithDigest.
//	}
//
// ChunkerCore exposes the same boundary decision without any I/O, for
// callers that already hold the full input in memory and want zero
// allocations per call:
//
//	core, _ := fastcdc.NewChunkerCore(fastcdc.WithAvgSize(64 * 1024))
//	cut := core.FindBoundary(data)
//	// data[:cut] is the next chunk; recurse on data[cut:]
//
// # Sources
//
// FromBytes, FromPath, FromReader, and FromMmap adapt the common ways
// data arrives (an in-memory buffer, a file on disk, an arbitrary
// io.Reader, or a caller-owned memory mapping) behind the single Source
// interface the stream chunker consumes.
//
// # Determinism
//
// FindBoundary and Next are pure functions of their input bytes and the
// resolved (minSize, avgSize, maxSize) parameters: the same bytes chunked
// with the same parameters always split at the same offsets, on any
// platform, on any run. No seed or normalization-level knob exists to
// perturb this — the Gear table and masks are the only wire-level
// constants, and they are fixed.
//
// # Concurrency
//
// A Chunker is not safe for concurrent use from multiple goroutines; it
// carries buffer and cursor state. A ChunkerCore carries no mutable state
// and is safe to share read-only once built, since FindBoundary never
// mutates it. Use ChunkerPool to recycle Chunkers across a worker pool
// instead of sharing one; ChunkerCorePool does the same for ChunkerCores.
package fastcdc

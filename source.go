package fastcdc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Source is the uniform byte-reading capability the stream chunker
// consumes (spec §4.4 / §9's "tagged variant"). Construction-time
// dispatch (FromBytes/FromPath/FromReader/FromMmap) selects the adapter;
// the chunker's inner loop only ever sees this interface.
type Source interface {
	// Read behaves like io.Reader.Read: it fills p with up to len(p)
	// bytes and returns the number read.
	Read(p []byte) (int, error)

	// Size reports the total known size of the source, or false when the
	// size is unknown (e.g. a non-seekable stream).
	Size() (size uint64, known bool)

	// Close releases any resource the adapter opened (a memory mapping
	// or a file handle it opened itself). Closing a source that did not
	// open anything is a no-op.
	Close() error
}

// FromBytes wraps an in-memory buffer. The chunker never copies or
// mutates it; the caller retains ownership.
func FromBytes(data []byte) Source {
	return &byteSource{r: bytes.NewReader(data), size: uint64(len(data))}
}

// FromPath opens the file at path and memory-maps it read-only. The
// mapping is owned by the returned Source and released on Close.
func FromPath(path string) (Source, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %s", ErrSourceOpenFailure, path, err)
	}

	return &mmapSource{r: r, size: uint64(r.Len())}, nil
}

// FromReader wraps an already-open io.Reader. If the reader exposes an
// *os.File, it is memory-mapped; otherwise its bytes are read directly
// through the chunker's own refill buffering, with no further copying by
// this adapter. The Source never closes the reader; when it opened a
// mapping of the reader's file, Close releases that mapping.
func FromReader(r io.Reader) (Source, error) {
	if f, ok := r.(*os.File); ok {
		mr, err := mmap.Open(f.Name())
		if err == nil {
			return &mmapSource{r: mr, size: uint64(mr.Len())}, nil
		}
		// Fall through to plain streaming if the handle can't be mapped
		// (e.g. it is a pipe or has already been unlinked).
	}

	return &readerSource{r: r}, nil
}

// From dispatches on v's runtime type to the matching constructor above —
// the "tagged variant" construction-time dispatch spec §9 describes as an
// alternative to the interface-only form. It accepts []byte, string (a
// path), io.Reader, and *mmap.ReaderAt; any other type yields
// ErrInvalidInputType.
func From(v any) (Source, error) {
	switch src := v.(type) {
	case []byte:
		return FromBytes(src), nil
	case string:
		return FromPath(src)
	case *mmap.ReaderAt:
		return FromMmap(src), nil
	case io.Reader:
		return FromReader(src)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputType, v)
	}
}

// FromMmap wraps a pre-materialized read-only memory-mapped region. The
// caller retains ownership and is responsible for unmapping it; Close is
// a no-op.
func FromMmap(r *mmap.ReaderAt) Source {
	return &mmapSource{r: r, size: uint64(r.Len()), borrowed: true}
}

// byteSource adapts a bytes.Reader.
type byteSource struct {
	r    *bytes.Reader
	size uint64
}

func (s *byteSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *byteSource) Size() (uint64, bool)        { return s.size, true }
func (s *byteSource) Close() error                { return nil }

// mmapSource adapts a memory-mapped file via golang.org/x/exp/mmap.
type mmapSource struct {
	r        *mmap.ReaderAt
	size     uint64
	pos      int64
	borrowed bool
}

func (s *mmapSource) Read(p []byte) (int, error) {
	n, err := s.r.ReadAt(p, s.pos)
	s.pos += int64(n)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: %s", ErrSourceReadFailure, err)
	}
	return n, err
}

func (s *mmapSource) Size() (uint64, bool) { return s.size, true }

func (s *mmapSource) Close() error {
	if s.borrowed {
		return nil
	}
	return s.r.Close()
}

// readerSource adapts a plain io.Reader with no size hint.
type readerSource struct {
	r io.Reader
}

func (s *readerSource) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: %s", ErrSourceReadFailure, err)
	}
	return n, err
}

func (s *readerSource) Size() (uint64, bool) { return 0, false }
func (s *readerSource) Close() error         { return nil }

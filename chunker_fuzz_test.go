package fastcdc_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-cdc/fastcdc"
)

func FuzzChunker(f *testing.F) {
	f.Add(
		[]byte("content to be chunked into multiple pieces to verify the chunker works correctly"),
		uint64(16*1024),
		uint64(32*1024),
		uint64(64*1024),
	)
	f.Add(make([]byte, 1024), uint64(128), uint64(256), uint64(512))

	f.Fuzz(func(t *testing.T, data []byte, minimum, avg, maximum uint64) {
		opts := []fastcdc.Option{
			fastcdc.WithMinSize(minimum),
			fastcdc.WithAvgSize(avg),
			fastcdc.WithMaxSize(maximum),
			fastcdc.WithFatChunks(),
		}

		c, err := fastcdc.New(fastcdc.FromBytes(data), opts...)
		if err != nil {
			// Invalid parameter combinations are expected from the fuzzer;
			// skip them rather than treat them as failures.
			return
		}

		var (
			reconstructed []byte
			totalLength   uint64
		)

		for {
			chunk, err := c.Next()
			if err == io.EOF {
				break
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if chunk.Length == 0 {
				t.Fatal("chunk length is 0")
			}

			reconstructed = append(reconstructed, chunk.Data...)
			totalLength += chunk.Length
		}

		if uint64(len(data)) != totalLength {
			t.Errorf("total length mismatch: got %d, want %d", totalLength, len(data))
		}

		if !bytes.Equal(data, reconstructed) {
			t.Error("reconstructed data does not match original")
		}
	})
}

func FuzzChunkerCore(f *testing.F) {
	f.Add([]byte("some data to find boundary in"), uint64(16*1024), uint64(32*1024), uint64(64*1024))

	f.Fuzz(func(t *testing.T, data []byte, minimum, avg, maximum uint64) {
		core, err := fastcdc.NewChunkerCore(
			fastcdc.WithMinSize(minimum),
			fastcdc.WithAvgSize(avg),
			fastcdc.WithMaxSize(maximum),
		)
		if err != nil {
			return
		}

		cut := core.FindBoundary(data)
		if cut > len(data) {
			t.Errorf("boundary %d exceeds data length %d", cut, len(data))
		}
		if len(data) > 0 && cut == 0 {
			t.Errorf("boundary 0 on non-empty input")
		}
	})
}

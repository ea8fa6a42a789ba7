package fastcdc

import (
	"fmt"
	"math"
)

// Hard bounds on chunk size parameters (spec §3 / §6).
const (
	minSizeFloor = 64
	minSizeCeil  = 67_108_864

	avgSizeFloor = 256
	avgSizeCeil  = 268_435_456

	maxSizeFloor = 1024
	maxSizeCeil  = 1_073_741_824
)

// params holds the validated, derived chunking parameters.
type params struct {
	minSize uint64
	avgSize uint64
	maxSize uint64

	bits   uint
	maskS  uint32
	maskL  uint32
	center uint64
}

// validateParams checks (min, avg, max) against the hard bounds in spec §3/§6
// and derives bits/maskS/maskL. center is computed per-source in centerSize,
// since it also depends on the source length.
func validateParams(minSize, avgSize, maxSize uint64) (params, error) {
	if minSize < minSizeFloor || minSize > minSizeCeil {
		return params{}, fmt.Errorf("%w: minSize must be between %d and %d, got %d",
			ErrInvalidParameter, minSizeFloor, minSizeCeil, minSize)
	}

	if avgSize < avgSizeFloor || avgSize > avgSizeCeil {
		return params{}, fmt.Errorf("%w: avgSize must be between %d and %d, got %d",
			ErrInvalidParameter, avgSizeFloor, avgSizeCeil, avgSize)
	}

	if maxSize < maxSizeFloor || maxSize > maxSizeCeil {
		return params{}, fmt.Errorf("%w: maxSize must be between %d and %d, got %d",
			ErrInvalidParameter, maxSizeFloor, maxSizeCeil, maxSize)
	}

	if !(minSize <= avgSize && avgSize <= maxSize) {
		return params{}, fmt.Errorf("%w: must hold minSize (%d) <= avgSize (%d) <= maxSize (%d)",
			ErrInvalidParameter, minSize, avgSize, maxSize)
	}

	bits := log2Rounded(avgSize)
	if bits < 1 || bits > 31 {
		return params{}, fmt.Errorf("%w: derived bit width %d out of range [1, 31]",
			ErrInvalidParameter, bits)
	}

	maskS, err := mask(bits + 1)
	if err != nil {
		return params{}, fmt.Errorf("%w: %s", ErrInvalidParameter, err)
	}

	maskL, err := mask(bits - 1)
	if err != nil {
		return params{}, fmt.Errorf("%w: %s", ErrInvalidParameter, err)
	}

	return params{
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		bits:    bits,
		maskS:   maskS,
		maskL:   maskL,
	}, nil
}

// log2Rounded returns round(log2(value)), matching original_source's
// logarithm2 helper.
func log2Rounded(value uint64) uint {
	return uint(math.Round(math.Log2(float64(value))))
}

// ceilDiv returns ceil(x / y) for positive integers.
func ceilDiv(x, y uint64) uint64 {
	return (x + y - 1) / y
}

// mask returns 2^bits - 1, valid for bits in [1, 31] per spec §4.2's
// find_cut contract (masks are applied to a 32-bit rolling hash).
func mask(bits uint) (uint32, error) {
	if bits < 1 || bits > 31 {
		return 0, fmt.Errorf("mask: bits must be in [1, 31], got %d", bits)
	}
	return uint32(1<<bits) - 1, nil
}

// centerSize computes the end offset (exclusive, counted from the start of
// the window) of the Phase A (strict-mask) scan: off = min(avg, min +
// ceil(min/2)); size = avg - off; clamped to sourceSize. findCut scans
// Phase A from minSize up to this offset, so Phase A is empty when the
// result is not above minSize.
func centerSize(avgSize, minSize, sourceSize uint64) uint64 {
	off := minSize + ceilDiv(minSize, 2)
	if off > avgSize {
		off = avgSize
	}

	size := avgSize - off
	if size > sourceSize {
		return sourceSize
	}

	return size
}

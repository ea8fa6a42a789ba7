package fastcdc

// FindCut exposes the boundary-detection algorithm directly (spec §4.6),
// for reimplementers that want to verify bit-exact interoperability without
// going through a Chunker or ChunkerCore. minSize/maxSize/center/maskS/maskL
// must already be validated and derived (see CenterSize, Mask, Log2Rounded);
// FindCut itself is total and cannot fail.
func FindCut(buf []byte, minSize, maxSize, center uint64, maskS, maskL uint32) int {
	return findCut(buf, minSize, maxSize, center, maskS, maskL)
}

// CenterSize computes the end offset (exclusive, counted from the start of
// the window) of the Phase A (strict-mask) scan: off = min(avgSize,
// minSize + ceil(minSize/2)); size = avgSize - off; clamped to sourceSize.
// Phase A runs from minSize up to this offset and is empty when the
// result is not above minSize.
func CenterSize(avgSize, minSize, sourceSize uint64) uint64 {
	return centerSize(avgSize, minSize, sourceSize)
}

// Mask returns 2^bits - 1, valid for bits in [1, 31] (spec §4.1). It fails
// for any other bit width since the rolling hash is 32 bits wide.
func Mask(bits uint) (uint32, error) {
	return mask(bits)
}

// Log2Rounded returns round(log2(value)), matching original_source's
// logarithm2 helper and the derivation of bits in spec §4.1.
func Log2Rounded(value uint64) uint {
	return log2Rounded(value)
}

package fastcdc

// findCut implements the FastCDC boundary-detection algorithm (spec §4.2),
// ported bit-for-bit from original_source/fastcdc/original.py's
// FastCDC.cut / fastcdc_py.py's cdc_offset. buf is the window under
// consideration; minSize/avgSize/maxSize/center/maskS/maskL are the
// validated, derived parameters from params.go.
//
// findCut is total: it always returns an offset in
// [min(minSize, len(buf)), min(maxSize, len(buf))] and never fails.
func findCut(buf []byte, minSize, maxSize, center uint64, maskS, maskL uint32) int {
	n := uint64(len(buf))

	if n <= minSize {
		return int(n)
	}

	searchSize := n
	if searchSize > maxSize {
		searchSize = maxSize
	}

	var h uint32

	i := minSize

	barrier1 := center
	if barrier1 > searchSize {
		barrier1 = searchSize
	}

	for i < barrier1 {
		h = (h >> 1) + gearTable[buf[i]]
		if h&maskS == 0 {
			return int(i + 1)
		}
		i++
	}

	barrier2 := searchSize

	for i < barrier2 {
		h = (h >> 1) + gearTable[buf[i]]
		if h&maskL == 0 {
			return int(i + 1)
		}
		i++
	}

	return int(i)
}

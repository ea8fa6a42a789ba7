package fastcdc

import "testing"

func TestFindCutShorterThanMinSize(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 100)
	if got := findCut(buf, 2048, 65536, 5120, 0x1fff, 0x7ff); got != len(buf) {
		t.Errorf("findCut on short buffer = %d, want %d", got, len(buf))
	}
}

func TestFindCutAllZeros(t *testing.T) {
	t.Parallel()

	// All-zero input never satisfies h&mask==0 except where gearTable[0]
	// itself happens to align, so with these parameters the cut should
	// fall back to the hard maxSize limit (spec §8's all-zeros fact).
	buf := make([]byte, 32*1024)
	p, err := validateParams(2048, 8192, 16384)
	if err != nil {
		t.Fatalf("validateParams: %v", err)
	}

	center := centerSize(p.avgSize, p.minSize, uint64(len(buf)))
	cut := findCut(buf, p.minSize, p.maxSize, center, p.maskS, p.maskL)

	if uint64(cut) > p.maxSize {
		t.Errorf("cut %d exceeds maxSize %d", cut, p.maxSize)
	}
	if uint64(cut) < p.minSize {
		t.Errorf("cut %d below minSize %d", cut, p.minSize)
	}
}

func TestFindCutNeverExceedsMaxSize(t *testing.T) {
	t.Parallel()

	p, err := validateParams(1024, 4096, 8192)
	if err != nil {
		t.Fatalf("validateParams: %v", err)
	}

	buf := make([]byte, 64*1024)
	for i := range buf {
		buf[i] = byte(i)
	}

	offset := 0
	for offset < len(buf) {
		remaining := buf[offset:]
		center := centerSize(p.avgSize, p.minSize, uint64(len(remaining)))
		cut := findCut(remaining, p.minSize, p.maxSize, center, p.maskS, p.maskL)

		if uint64(cut) > p.maxSize {
			t.Fatalf("cut %d at offset %d exceeds maxSize %d", cut, offset, p.maxSize)
		}
		if cut == 0 {
			t.Fatalf("cut returned 0 at offset %d", offset)
		}

		offset += cut
	}
}

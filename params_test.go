package fastcdc

import "testing"

// Unit facts from spec §8, ported from original_source/fastcdc/original.py's
// logarithm2/ceil_div/mask/center_size helpers.
func TestLog2Rounded(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   uint64
		want uint
	}{
		{256, 8},
		{8192, 13},
		{32768, 15},
		{65536, 16},
		{262144, 18},
		// Exact values quoted in spec §8.
		{32767, 15},
		{32768, 15},
		{32769, 15},
		{65535, 16},
		{65536, 16},
		{65537, 16},
	}

	for _, c := range cases {
		if got := log2Rounded(c.in); got != c.want {
			t.Errorf("log2Rounded(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	t.Parallel()

	// Exact values quoted in spec §8.
	cases := []struct {
		x, y uint64
		want uint64
	}{
		{10, 5, 2},
		{11, 5, 3},
		{10, 3, 4},
		{9, 3, 3},
		{6, 2, 3},
		{5, 2, 3},
	}

	for _, c := range cases {
		if got := ceilDiv(c.x, c.y); got != c.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	got, err := mask(13)
	if err != nil {
		t.Fatalf("mask(13) returned error: %v", err)
	}
	if want := uint32(1<<13) - 1; got != want {
		t.Errorf("mask(13) = %#x, want %#x", got, want)
	}

	// Exact values quoted in spec §8.
	for bits, want := range map[uint]uint32{24: 16_777_215, 16: 65535, 10: 1023, 8: 255} {
		got, err := mask(bits)
		if err != nil {
			t.Fatalf("mask(%d) returned error: %v", bits, err)
		}
		if got != want {
			t.Errorf("mask(%d) = %d, want %d", bits, got, want)
		}
	}

	if _, err := mask(0); err == nil {
		t.Error("mask(0) should fail (bits must be in [1, 31])")
	}
	if _, err := mask(32); err == nil {
		t.Error("mask(32) should fail (bits must be in [1, 31])")
	}
}

func TestCenterSize(t *testing.T) {
	t.Parallel()

	// avgSize=8192, minSize=2048: off = 2048 + ceilDiv(2048,2) = 3072,
	// size = 8192-3072 = 5120.
	if got, want := centerSize(8192, 2048, 1<<20), uint64(5120); got != want {
		t.Errorf("centerSize = %d, want %d", got, want)
	}

	// Clamped to sourceSize when the source is smaller than the center.
	if got, want := centerSize(8192, 2048, 100), uint64(100); got != want {
		t.Errorf("centerSize clamp = %d, want %d", got, want)
	}

	// Exact values quoted in spec §8.
	for _, c := range []struct {
		avg, min, sourceSize uint64
		want                 uint64
	}{
		{50, 100, 50, 0},
		{200, 100, 50, 50},
		{200, 100, 40, 40},
	} {
		if got := centerSize(c.avg, c.min, c.sourceSize); got != c.want {
			t.Errorf("centerSize(%d, %d, %d) = %d, want %d",
				c.avg, c.min, c.sourceSize, got, c.want)
		}
	}
}

func TestValidateParamsBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		minSize, avg, maxSize uint64
		wantErr              bool
	}{
		{"valid defaults", 2048, 8192, 65536, false},
		{"minSize below floor", 1, 8192, 65536, true},
		{"minSize above ceil", minSizeCeil + 1, avgSizeCeil, maxSizeCeil, true},
		{"avgSize below floor", 2048, 1, 65536, true},
		{"avgSize above ceil", 2048, avgSizeCeil + 1, maxSizeCeil, true},
		{"maxSize below floor", 64, 256, 1, true},
		{"maxSize above ceil", minSizeCeil, avgSizeCeil, maxSizeCeil + 1, true},
		{"minSize > avgSize", 8192, 2048, 65536, true},
		{"avgSize > maxSize", 2048, 65536, 8192, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := validateParams(tt.minSize, tt.avg, tt.maxSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateParams(%d, %d, %d) error = %v, wantErr %v",
					tt.minSize, tt.avg, tt.maxSize, err, tt.wantErr)
			}
		})
	}
}

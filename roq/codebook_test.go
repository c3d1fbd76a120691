package roq

import "testing"

func TestUnpackQuadCodebookRejectsSizeMismatch(t *testing.T) {
	cs := newCodebookState()
	// arg declares one 2x2 entry (6 bytes) but the payload is short.
	err := cs.unpackQuadCodebook(1<<8, []byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected a size-mismatch error")
	}
}

func TestUnpackQuadCodebookDefaultsCountsWhenZero(t *testing.T) {
	cs := newCodebookState()
	payload := make([]byte, codebookSize*6)
	if err := cs.unpackQuadCodebook(0, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestYUVToRGB565GrayIsAchromatic(t *testing.T) {
	cs := newCodebookState()
	// u=v=128 is the neutral chroma origin; equal y should give equal
	// packed r/g/b channel ratios (a mid-gray), never pure color.
	v := cs.yuvToRGB565(128, 128, 128)
	r := (v >> 11) & 0x1F
	g := (v >> 5) & 0x3F
	b := v & 0x1F
	if r == 0 && g == 0 && b == 0 {
		t.Error("mid-level luma should not pack to black")
	}
	// Green has one more bit than red and blue, so gray is r == b, g == 2r.
	if r != b || g != 2*r {
		t.Errorf("yuvToRGB565(128,128,128) = r%d g%d b%d, want achromatic (r == b, g == 2r)", r, g, b)
	}
}

func TestPackRGB565Bounds(t *testing.T) {
	v := packRGB565(0xFF, 0xFF, 0xFF)
	if v != 0xFFFF {
		t.Errorf("packRGB565(white) = %#04x, want 0xffff", v)
	}
	v = packRGB565(0, 0, 0)
	if v != 0 {
		t.Errorf("packRGB565(black) = %#04x, want 0", v)
	}
}

func TestClampByte(t *testing.T) {
	cases := []struct {
		in   int16
		want int16
	}{
		{-10, 0},
		{300, 255},
		{128, 128},
	}
	for _, c := range cases {
		if got := clampByte(c.in); got != c.want {
			t.Errorf("clampByte(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

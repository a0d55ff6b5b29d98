package animimage

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ncassetta/animimage/lzw"
)

// The packed form of the 3-bit codes clear,1,1,2 followed by a 4-bit
// clear and a 3-bit end, split across two data sub-blocks.
var sampleFrame = []byte{
	0x02, 0x4C, 0x44,
	0x01, 0x05,
	0x00,
}

func TestDecodeFrame(t *testing.T) {
	pix, err := DecodeFrame(2, bytes.NewReader(sampleFrame))
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{1, 1, 2}
	if len(pix) != len(want) {
		t.Fatalf("length: expected(%d) != actual(%d)", len(want), len(pix))
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pixel %d: expected(%d) != actual(%d)", i, want[i], pix[i])
		}
	}
}

func TestDecodeFrameBadStream(t *testing.T) {
	// Valid framing around a stream that does not start with a clear
	// code.
	frame := []byte{0x01, 0x00, 0x00}
	if _, err := DecodeFrame(2, bytes.NewReader(frame)); !errors.Is(err, lzw.ErrMalformed) {
		t.Fatalf("expected lzw.ErrMalformed, got %v", err)
	}
}

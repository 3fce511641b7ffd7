package tgif

import (
	"bytes"
	"errors"
	"testing"
)

// TestHeaderSerializeLayout pins the exact byte layout of the container
// header: magic, height, width, chunk size (big-endian u32), rem bits.
func TestHeaderSerializeLayout(t *testing.T) {
	h := Header{
		Height:    2,
		Width:     3,
		ChunkSize: 264,
		RemBits:   2,
	}

	want := []byte{
		'T', 'G', 'I', 'F',
		0x00, 0x00, 0x00, 0x02, // height
		0x00, 0x00, 0x00, 0x03, // width
		0x00, 0x00, 0x01, 0x08, // chunk size = 264 bits
		0x02, // rem bits
	}

	got := h.Serialize()
	if !bytes.Equal(got, want) {
		t.Errorf("Serialize() = % x, want % x", got, want)
	}
	if len(got) != HeaderSize {
		t.Errorf("Serialize() length = %d, want %d", len(got), HeaderSize)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Height:    4096,
		Width:     2160,
		ChunkSize: DefaultChunkSize,
		RemBits:   7,
	}

	parsed, err := ParseHeader(h.Serialize())
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	if parsed != h {
		t.Errorf("round trip mismatch: got %+v, want %+v", parsed, h)
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	for _, n := range []int{0, 1, 4, 16} {
		_, err := ParseHeader(make([]byte, n))
		if !errors.Is(err, ErrMalformedHeader) {
			t.Errorf("ParseHeader with %d bytes: error = %v, want ErrMalformedHeader", n, err)
		}
	}
}

func TestParseHeaderBadMagic(t *testing.T) {
	data := Header{Height: 1, Width: 1, ChunkSize: 264, RemBits: 2}.Serialize()
	data[0] = 'X'

	_, err := ParseHeader(data)
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("ParseHeader with bad magic: error = %v, want ErrMalformedHeader", err)
	}
}

package tgif

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic identifies a TGIF container
	Magic = "TGIF"

	// HeaderSize is the fixed byte length of the serialized header
	HeaderSize = 17
)

// Header describes the geometry and coding parameters of a TGIF image.
// It is built once at encode time, parsed once at decode time, and is
// read-only input to every downstream stage.
type Header struct {
	Height    uint32 // image height in pixels
	Width     uint32 // image width in pixels
	ChunkSize uint32 // chunk length in bits, a multiple of 8
	RemBits   uint8  // remainder width of each codeword, 0..7
}

// Serialize renders the fixed 17-byte header: the magic, then height, width
// and chunk size as big-endian u32, then the remainder width byte.
// Height comes before width; this order is part of the format.
func (h Header) Serialize() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic)
	binary.BigEndian.PutUint32(buf[4:8], h.Height)
	binary.BigEndian.PutUint32(buf[8:12], h.Width)
	binary.BigEndian.PutUint32(buf[12:16], h.ChunkSize)
	buf[16] = h.RemBits
	return buf
}

// ParseHeader reads a header from the first 17 bytes of data.
// It fails with ErrMalformedHeader on short input or a magic mismatch.
// No range validation is performed on the parsed fields.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", ErrMalformedHeader, HeaderSize, len(data))
	}
	if string(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrMalformedHeader, data[0:4])
	}
	return Header{
		Height:    binary.BigEndian.Uint32(data[4:8]),
		Width:     binary.BigEndian.Uint32(data[8:12]),
		ChunkSize: binary.BigEndian.Uint32(data[12:16]),
		RemBits:   data[16],
	}, nil
}

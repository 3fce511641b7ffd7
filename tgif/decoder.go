package tgif

import (
	"fmt"
	"math"
)

// Decode parses a TGIF container and reconstructs the row-major 8-bit
// sample grid together with the parsed header.
//
// The chunk geometry always comes from the parsed header, never from a
// local constant: a decoder with its own chunk size would misalign every
// chunk boundary and silently corrupt the image.
func Decode(data []byte) ([]byte, Header, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	// A header can carry any u32 values; reject geometry the pipeline
	// cannot represent before any allocation or division uses it.
	if header.Width == 0 || header.Height == 0 {
		return nil, Header{}, fmt.Errorf("%w: zero dimension %dx%d", ErrMalformedHeader, header.Width, header.Height)
	}
	if uint64(header.Width)*uint64(header.Height) > uint64(math.MaxInt) {
		return nil, Header{}, fmt.Errorf("%w: pixel count %dx%d overflows", ErrMalformedHeader, header.Width, header.Height)
	}

	pixels := int(header.Width) * int(header.Height)
	chunkBytes := int(header.ChunkSize) / 8
	if chunkBytes <= 0 {
		return nil, Header{}, fmt.Errorf("%w: %d bits", ErrIncompatibleChunkSize, header.ChunkSize)
	}

	// Every codeword takes at least one bit, so the payload bounds the
	// decodable value count; a header claiming more is a mismatch before
	// any decode work or output allocation happens.
	payload := data[HeaderSize:]
	if pixels > len(payload)*8 {
		return nil, Header{}, fmt.Errorf("%w: payload of %d bytes cannot hold %dx%d",
			ErrPixelCountMismatch, len(payload), header.Width, header.Height)
	}

	indices := decodePayload(payload, chunkBytes, header.RemBits, pixels)
	if len(indices) != pixels {
		return nil, Header{}, fmt.Errorf("%w: got %d values for %dx%d",
			ErrPixelCountMismatch, len(indices), header.Width, header.Height)
	}

	reconstructRows(indices, int(header.Width))
	return indices, header, nil
}

package tgif

import (
	"fmt"
)

// Encoder represents a TGIF encoder
type Encoder struct {
	width  int
	height int
	params Parameters

	padding int // chunk-alignment pad bits of the last encode
}

// NewEncoder creates a new TGIF encoder
func NewEncoder(width, height int, params Parameters) *Encoder {
	return &Encoder{
		width:  width,
		height: height,
		params: params,
	}
}

// Encode compresses a row-major 8-bit grayscale sample grid into a TGIF
// container using the given parameters.
func Encode(samples []byte, width, height int, params Parameters) ([]byte, error) {
	return NewEncoder(width, height, params).Encode(samples)
}

// Encode compresses samples into a TGIF container: header, then the
// bit-packed payload.
func (enc *Encoder) Encode(samples []byte) ([]byte, error) {
	if enc.width <= 0 || enc.height <= 0 {
		return nil, fmt.Errorf("tgif: invalid dimensions: %dx%d", enc.width, enc.height)
	}
	if len(samples) != enc.width*enc.height {
		return nil, fmt.Errorf("tgif: sample count %d does not match %dx%d", len(samples), enc.width, enc.height)
	}
	if err := enc.params.Validate(); err != nil {
		return nil, err
	}

	residuals := forwardTransform(samples, enc.width)

	w := newGolombWriter(int(enc.params.RemBits), int(enc.params.ChunkSize), len(samples))
	for _, delta := range residuals {
		w.writeCodeword(riceIndex(delta))
	}
	// Byte alignment of the payload end, distinct from chunk padding.
	payload := w.close()
	enc.padding = w.paddingBits()

	header := Header{
		Height:    uint32(enc.height),
		Width:     uint32(enc.width),
		ChunkSize: enc.params.ChunkSize,
		RemBits:   enc.params.RemBits,
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Serialize()...)
	out = append(out, payload...)
	return out, nil
}

// PaddingBits reports how many bits the last Encode spent padding chunk
// boundaries. Diagnostic only.
func (enc *Encoder) PaddingBits() int {
	return enc.padding
}

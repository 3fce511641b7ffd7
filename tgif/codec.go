package tgif

import (
	"fmt"

	"github.com/cocosip/go-tgif/codec"
)

// TGIFCodec implements the codec.Codec interface for the TGIF container
type TGIFCodec struct {
	params Parameters
}

// NewTGIFCodec creates a new TGIF codec with the given default parameters
func NewTGIFCodec(params Parameters) *TGIFCodec {
	return &TGIFCodec{params: params}
}

// Encode encodes a grayscale frame as a TGIF container
func (c *TGIFCodec) Encode(params codec.EncodeParams) ([]byte, error) {
	if params.Width <= 0 || params.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", codec.ErrInvalidDimensions, params.Width, params.Height)
	}

	// Per-call options override the codec's defaults.
	coding := c.params
	if params.Options != nil {
		p, ok := params.Options.(Parameters)
		if !ok {
			return nil, codec.ErrInvalidParameter
		}
		coding = p
	}

	return Encode(params.PixelData, params.Width, params.Height, coding)
}

// Decode decodes TGIF compressed data
func (c *TGIFCodec) Decode(data []byte) (*codec.DecodeResult, error) {
	pixels, header, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData: pixels,
		Width:     int(header.Width),
		Height:    int(header.Height),
	}, nil
}

// Extension returns the container file extension
func (c *TGIFCodec) Extension() string {
	return ".tgif"
}

// Name returns a human-readable name for this codec
func (c *TGIFCodec) Name() string {
	return "tgif"
}

// init automatically registers the codec with default parameters
func init() {
	codec.Register(NewTGIFCodec(DefaultParameters()))
}

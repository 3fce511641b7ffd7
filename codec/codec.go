package codec

// Codec is the universal interface for grayscale raster codecs
type Codec interface {
	// Encode encodes pixel data
	Encode(params EncodeParams) ([]byte, error)

	// Decode decodes compressed data
	Decode(data []byte) (*DecodeResult, error)

	// Extension returns the container file extension (e.g. ".tgif")
	Extension() string

	// Name returns a human-readable name
	Name() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	PixelData []byte  // Raw 8-bit samples, row-major
	Width     int     // Image width in pixels
	Height    int     // Image height in pixels
	Options   Options // Codec-specific options
}

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	PixelData []byte // Decoded 8-bit samples, row-major
	Width     int    // Image width in pixels
	Height    int    // Image height in pixels
}

package tgif

import "github.com/cocosip/go-tgif/codec"

// Ensure Parameters implements codec.Options
var _ codec.Options = (*Parameters)(nil)

// DefaultChunkSize is the chunk length in bits used when the caller does not
// pick one (32 KiB of payload per chunk).
const DefaultChunkSize = 1024 * 8 * 32

// minChunkSize is the smallest usable chunk: one maximal codeword
// (up to 255 unary bits, the terminator and a 7-bit remainder) rounded up
// to whole bytes. Anything smaller could never satisfy the rule that no
// codeword spans two chunks.
const minChunkSize = 264

// Parameters contains the coding parameters for TGIF compression
type Parameters struct {
	// RemBits is the fixed remainder width of each codeword (0..7).
	// 0 degrades the coder to pure unary; 2 is a good default for
	// smooth grayscale images.
	RemBits uint8

	// ChunkSize is the chunk length in bits. It must be a positive
	// multiple of 8 large enough to hold one maximal codeword. Bigger
	// chunks waste fewer padding bits; smaller chunks decode with more
	// parallelism.
	ChunkSize uint32
}

// DefaultParameters creates Parameters with default values
func DefaultParameters() Parameters {
	return Parameters{
		RemBits:   2,
		ChunkSize: DefaultChunkSize,
	}
}

// Validate checks if the parameters are valid
func (p Parameters) Validate() error {
	if p.RemBits > 7 {
		return ErrRemainderTooWide
	}
	if p.ChunkSize%8 != 0 || p.ChunkSize < minChunkSize {
		return ErrIncompatibleChunkSize
	}
	return nil
}

// WithRemBits sets the remainder width and returns the parameters for chaining
func (p Parameters) WithRemBits(remBits uint8) Parameters {
	p.RemBits = remBits
	return p
}

// WithChunkSize sets the chunk size in bits and returns the parameters for chaining
func (p Parameters) WithChunkSize(chunkSize uint32) Parameters {
	p.ChunkSize = chunkSize
	return p
}

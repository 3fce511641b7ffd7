package tgif

import "errors"

// Errors surfaced by the TGIF encoder and decoder
var (
	// ErrMalformedHeader indicates the container is shorter than a full
	// header or does not start with the TGIF magic
	ErrMalformedHeader = errors.New("tgif: malformed header")

	// ErrRemainderTooWide indicates a remainder width above 7 bits; at 8
	// bits every index would fit in the remainder and no compression is
	// possible, so the format forbids it
	ErrRemainderTooWide = errors.New("tgif: remainder width must be 7 bits or less")

	// ErrIncompatibleChunkSize indicates a chunk size that is not a
	// positive multiple of 8 bits or too small to hold one maximal codeword
	ErrIncompatibleChunkSize = errors.New("tgif: incompatible chunk size")

	// ErrPixelCountMismatch indicates the payload decoded to fewer or more
	// values than the header's width*height; this typically means the
	// payload is corrupted
	ErrPixelCountMismatch = errors.New("tgif: decoded pixel count does not match header")
)

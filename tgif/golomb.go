package tgif

// Golomb-Rice bit coder. A codeword for a rice index is the quotient
// (index >> remBits) in unary ("1" bits followed by a "0" terminator) and
// then remBits bits of remainder, MSB-first. Codewords are packed MSB-first
// into bytes. Unlike JPEG-LS there is no byte-stuffing: the TGIF container
// has no marker bytes to escape.

// golombWriter packs codewords into a byte buffer while keeping every
// codeword inside a fixed-size chunk: a codeword that would cross the next
// chunk boundary is preceded by "1"-bit padding up to that boundary.
type golombWriter struct {
	buf       []byte
	cache     byte // partially filled output byte
	cacheBits int  // bits in cache, 0..7
	remBits   int
	chunkSize int // chunk capacity in bits
	chunkFill int // bits used in the current chunk
	padding   int // total pad bits spent on chunk alignment, for reporting
}

// newGolombWriter creates a writer for the given remainder width and chunk
// size (in bits). pixels is a capacity hint for the output buffer.
func newGolombWriter(remBits, chunkSize, pixels int) *golombWriter {
	return &golombWriter{
		buf:       make([]byte, 0, pixels), // estimated for no compression
		remBits:   remBits,
		chunkSize: chunkSize,
	}
}

// writeCodeword emits the codeword for one rice index, padding out the
// current chunk first if the codeword would not fit in it.
func (w *golombWriter) writeCodeword(index byte) {
	quotient := int(index) >> w.remBits
	length := quotient + 1 + w.remBits

	if w.chunkFill+length > w.chunkSize {
		pad := w.chunkSize - w.chunkFill
		w.writeOnes(pad)
		w.padding += pad
		w.chunkFill = 0
	}
	w.chunkFill += length

	w.writeOnes(quotient)
	w.writeBit(0)
	if w.remBits > 0 {
		w.writeBits(uint32(index)&((1<<w.remBits)-1), w.remBits)
	}
}

// writeBit writes a single bit
func (w *golombWriter) writeBit(bit int) {
	w.cache = w.cache<<1 | byte(bit&1)
	w.cacheBits++
	if w.cacheBits == 8 {
		w.buf = append(w.buf, w.cache)
		w.cache = 0
		w.cacheBits = 0
	}
}

// writeBits writes the low n bits of bits, MSB-first
func (w *golombWriter) writeBits(bits uint32, n int) {
	for n > 0 {
		space := 8 - w.cacheBits
		if space > n {
			space = n
		}

		shift := uint(n - space)
		value := (bits >> shift) & ((1 << uint(space)) - 1)

		w.cache = w.cache<<uint(space) | byte(value)
		w.cacheBits += space
		n -= space

		if w.cacheBits == 8 {
			w.buf = append(w.buf, w.cache)
			w.cache = 0
			w.cacheBits = 0
		}
	}
}

// writeOnes writes n consecutive "1" bits
func (w *golombWriter) writeOnes(n int) {
	for n > 0 {
		space := 8 - w.cacheBits
		if space > n {
			space = n
		}
		w.cache = w.cache<<uint(space) | (1<<uint(space) - 1)
		w.cacheBits += space
		n -= space
		if w.cacheBits == 8 {
			w.buf = append(w.buf, w.cache)
			w.cache = 0
			w.cacheBits = 0
		}
	}
}

// close pads the stream to a byte boundary with "1" bits and returns the
// packed payload. The padding reads back as an unterminated unary run and
// is dropped by the decoder.
func (w *golombWriter) close() []byte {
	if w.cacheBits > 0 {
		n := 8 - w.cacheBits
		w.buf = append(w.buf, w.cache<<uint(n)|(1<<uint(n)-1))
		w.cache = 0
		w.cacheBits = 0
	}
	return w.buf
}

// paddingBits reports how many bits were spent padding chunk boundaries.
// Diagnostic only; correctness never depends on it.
func (w *golombWriter) paddingBits() int {
	return w.padding
}

// decodeChunk decodes all codewords of one chunk, appending the recovered
// rice indices to dst and returning the extended slice. Chunks are
// self-contained: decoding starts in unary state and any trailing run of
// "1" bits without a terminator is chunk padding and is dropped. A value is
// only emitted once its full remainder has been read, so a codeword
// truncated by a corrupt chunk never produces output.
func decodeChunk(chunk []byte, remBits uint8, dst []byte) []byte {
	var (
		quotient  int
		remainder byte
		remCount  uint8
		unary     = true
	)

	for _, b := range chunk {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if unary {
				if b&mask != 0 {
					quotient++
					continue
				}
				if remBits == 0 {
					// Pure unary: the index is the quotient.
					dst = append(dst, byte(quotient))
					quotient = 0
					continue
				}
				unary = false
				continue
			}

			remainder <<= 1
			if b&mask != 0 {
				remainder |= 1
			}
			remCount++
			if remCount == remBits {
				dst = append(dst, byte(quotient<<remBits)+remainder)
				quotient = 0
				remainder = 0
				remCount = 0
				unary = true
			}
		}
	}
	return dst
}

package tgif

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestCodewordRoundTrip encodes every index at every remainder width and
// decodes it back from the packed bytes.
func TestCodewordRoundTrip(t *testing.T) {
	for remBits := 0; remBits <= 7; remBits++ {
		for index := 0; index < 256; index++ {
			w := newGolombWriter(remBits, DefaultChunkSize, 1)
			w.writeCodeword(byte(index))
			payload := w.close()

			got := decodeChunk(payload, uint8(remBits), nil)
			if len(got) != 1 || got[0] != byte(index) {
				t.Fatalf("remBits=%d index=%d: decoded %v", remBits, index, got)
			}
		}
	}
}

// TestChunkPadding forces a codeword over a chunk boundary and checks that
// the chunk is padded with "1" bits, that the padding is reported, and that
// each chunk decodes on its own.
func TestChunkPadding(t *testing.T) {
	// remBits=2, chunkSize=16: indices 0, 2, 4 need 3+3+4=10 bits, so the
	// codeword of index 20 (8 bits) cannot fit and starts the next chunk.
	w := newGolombWriter(2, 16, 4)
	for _, index := range []byte{0, 2, 4, 20} {
		w.writeCodeword(index)
	}
	payload := w.close()

	want := []byte{
		0x0A, // 000 010 10
		0x3F, // 00 111111  <- 6 pad bits close chunk 0
		0xF8, // 111110 00  <- index 20: quotient 5, remainder 0
	}
	if !bytes.Equal(payload, want) {
		t.Fatalf("payload = % x, want % x", payload, want)
	}
	if w.paddingBits() != 6 {
		t.Errorf("paddingBits() = %d, want 6", w.paddingBits())
	}

	if got := decodeChunk(payload[:2], 2, nil); !bytes.Equal(got, []byte{0, 2, 4}) {
		t.Errorf("chunk 0 decoded to %v, want [0 2 4]", got)
	}
	if got := decodeChunk(payload[2:], 2, nil); !bytes.Equal(got, []byte{20}) {
		t.Errorf("chunk 1 decoded to %v, want [20]", got)
	}
}

// TestChunkIndependence splits a multi-chunk payload at chunk boundaries
// and verifies that per-chunk decoding, concatenated in order, reproduces
// the full index sequence.
func TestChunkIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const chunkSize = 64 // bits
	const chunkBytes = chunkSize / 8

	for _, remBits := range []int{0, 2, 5} {
		indices := make([]byte, 500)
		for i := range indices {
			// Small values keep unary runs shorter than one chunk.
			indices[i] = byte(rng.Intn(24))
		}

		w := newGolombWriter(remBits, chunkSize, len(indices))
		for _, index := range indices {
			w.writeCodeword(index)
		}
		payload := w.close()

		var got []byte
		for off := 0; off < len(payload); off += chunkBytes {
			end := off + chunkBytes
			if end > len(payload) {
				end = len(payload)
			}
			got = decodeChunk(payload[off:end], uint8(remBits), got)
		}

		if !bytes.Equal(got, indices) {
			t.Errorf("remBits=%d: per-chunk decode does not match input", remBits)
		}

		// The parallel framer must agree with the sequential split.
		parallel := decodePayload(payload, chunkBytes, uint8(remBits), len(indices))
		if !bytes.Equal(parallel, indices) {
			t.Errorf("remBits=%d: decodePayload does not match input", remBits)
		}
	}
}

// TestPureUnary checks the remBits=0 degenerate case: the index is coded as
// a bare unary run and zero indices become single "0" bits.
func TestPureUnary(t *testing.T) {
	w := newGolombWriter(0, DefaultChunkSize, 3)
	for i := 0; i < 3; i++ {
		w.writeCodeword(0)
	}
	payload := w.close()

	// Three "0" bits, then five "1" alignment bits.
	if !bytes.Equal(payload, []byte{0x1F}) {
		t.Fatalf("payload = % x, want 1f", payload)
	}
	if got := decodeChunk(payload, 0, nil); !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Errorf("decoded %v, want [0 0 0]", got)
	}
}

package tgif

// Chunked bitstream framing, decode side. The payload is a sequence of
// fixed-size chunks whose boundaries always coincide with codeword
// boundaries (the encoder pads with "1" bits to guarantee this), so each
// chunk decodes with no state from its neighbours. That turns the
// inherently sequential variable-length code into an embarrassingly
// parallel map over byte spans, at the cost of a small, bounded amount of
// padding per chunk.

// decodePayload splits the payload into chunkBytes-sized spans (the tail
// span may be shorter) and decodes them concurrently. Outputs are gathered
// into a slice indexed by chunk position, never by completion order, and
// concatenated in original chunk order.
func decodePayload(payload []byte, chunkBytes int, remBits uint8, pixels int) []byte {
	if len(payload) == 0 {
		return nil
	}
	numChunks := (len(payload) + chunkBytes - 1) / chunkBytes

	// Every codeword takes at least 1+remBits bits.
	perChunk := chunkBytes * 8 / (1 + int(remBits))

	parts := make([][]byte, numChunks)
	forEachBand(numChunks, func(first, last int) {
		for i := first; i < last; i++ {
			chunk := payload[i*chunkBytes : min((i+1)*chunkBytes, len(payload))]
			parts[i] = decodeChunk(chunk, remBits, make([]byte, 0, perChunk))
		}
	})

	indices := make([]byte, 0, pixels)
	for _, part := range parts {
		indices = append(indices, part...)
	}
	return indices
}

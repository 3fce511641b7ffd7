package tgif

// The rice index of a residual is its zigzag encoding: interpreting the
// residual byte as a signed two's-complement value n, a non-negative n maps
// to 2n and a negative n to 2|n|-1. Small magnitudes of either sign get
// small indices, which the entropy coder represents with short unary runs.
// The mapping is a permutation of the 256 byte values.

// riceIndex maps a wraparound residual to its rice index.
func riceIndex(delta byte) byte {
	if delta <= 127 {
		return delta * 2
	}
	return (255-delta)*2 + 1
}

// riceIndexInv is the inverse permutation of riceIndex, built once at
// startup and immutable afterwards.
var riceIndexInv = buildRiceIndexInv()

func buildRiceIndexInv() (inv [256]byte) {
	for i := 0; i < 256; i++ {
		inv[riceIndex(byte(i))] = byte(i)
	}
	return inv
}

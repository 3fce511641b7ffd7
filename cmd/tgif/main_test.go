package main

import (
	"math"
	"testing"

	"github.com/cocosip/go-tgif/tgif"
)

// TestCodingParamsRange guards the flag-to-parameter narrowing: values that
// would wrap in uint8/uint32 must be rejected, not silently truncated
// (rem-bits 256 would otherwise encode pure-unary as if it were 0).
func TestCodingParamsRange(t *testing.T) {
	if _, err := codingParams(8, tgif.DefaultChunkSize); err == nil {
		t.Error("rem-bits 8 accepted, want error")
	}
	if _, err := codingParams(256, tgif.DefaultChunkSize); err == nil {
		t.Error("rem-bits 256 accepted, want error (would wrap to 0)")
	}
	if maxUint := ^uint(0); uint64(maxUint) > math.MaxUint32 {
		if _, err := codingParams(2, maxUint); err == nil {
			t.Error("oversized chunk-size accepted, want error (would wrap)")
		}
	}

	params, err := codingParams(3, 1024)
	if err != nil {
		t.Fatalf("codingParams(3, 1024) failed: %v", err)
	}
	if params.RemBits != 3 || params.ChunkSize != 1024 {
		t.Errorf("params = %+v, want RemBits 3 ChunkSize 1024", params)
	}
}

package tgif

import (
	"runtime"
	"sync"
)

// Row-wise spatial prediction. Every row starts from a virtual previous
// pixel of 0 and stores the wraparound difference prev-sample for each
// pixel. Rows share no state, so the inverse pass can run per row in
// parallel. Wraparound arithmetic makes the round trip exact for every
// input, with no clamping.

// forwardTransform computes the prediction residuals of a row-major sample
// grid.
func forwardTransform(samples []byte, width int) []byte {
	residuals := make([]byte, len(samples))
	for row := 0; row < len(samples); row += width {
		prev := byte(0)
		for x := 0; x < width; x++ {
			sample := samples[row+x]
			residuals[row+x] = prev - sample
			prev = sample
		}
	}
	return residuals
}

// inverseTransform reconstructs samples from prediction residuals in place,
// fanning contiguous row bands out over workers.
func inverseTransform(residuals []byte, width int) {
	forEachBand(len(residuals)/width, func(firstRow, lastRow int) {
		for row := firstRow * width; row < lastRow*width; row += width {
			prev := byte(0)
			for x := 0; x < width; x++ {
				prev -= residuals[row+x]
				residuals[row+x] = prev
			}
		}
	})
}

// reconstructRows turns rice indices back into samples in place: each row
// independently unmaps every index to its residual and undoes the
// prediction in one pass.
func reconstructRows(indices []byte, width int) {
	forEachBand(len(indices)/width, func(firstRow, lastRow int) {
		for row := firstRow * width; row < lastRow*width; row += width {
			prev := byte(0)
			for x := 0; x < width; x++ {
				prev -= riceIndexInv[indices[row+x]]
				indices[row+x] = prev
			}
		}
	})
}

// forEachBand splits the index space [0,n) into contiguous bands, one per
// worker, and waits for all bands to finish. Bands are disjoint so workers
// never share a row or chunk.
func forEachBand(n int, fn func(first, last int)) {
	workers := min(runtime.NumCPU(), n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	perWorker := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for first := 0; first < n; first += perWorker {
		last := min(first+perWorker, n)
		wg.Add(1)
		go func(first, last int) {
			defer wg.Done()
			fn(first, last)
		}(first, last)
	}
	wg.Wait()
}

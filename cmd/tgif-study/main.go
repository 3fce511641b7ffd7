// Command tgif-study sweeps TGIF encoder parameters over a set of grayscale
// images and compares the results against general-purpose compressors.
// It writes one CSV row per (image, scale, codec, parameters) combination
// and prints a short summary of the best TGIF settings per image.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/nfnt/resize"
	"github.com/xfmoulet/qoi"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cocosip/go-tgif/imgconv"
	"github.com/cocosip/go-tgif/tgif"
)

// result is one measured data point of the sweep.
type result struct {
	Image     string
	Scale     float64
	Width     int
	Height    int
	Codec     string
	RemBits   int // -1 for non-TGIF codecs
	ChunkSize int // 0 for non-TGIF codecs
	RawSize   int
	Size      int
	EncodeDur time.Duration
}

func (r result) ratio() float64 {
	return float64(r.RawSize) / float64(r.Size)
}

// job is one grayscale image at one scale, ready to be measured.
type job struct {
	name   string
	scale  float64
	pix    []byte
	width  int
	height int
}

var sweepScales = []float64{1.0, 0.5, 0.25}

var sweepChunkSizes = []uint32{4096, tgif.DefaultChunkSize, 1 << 20}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	pattern := flag.String("glob", "*.png", "glob pattern of input images")
	out := flag.String("o", "study.csv", "output CSV file")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent images")
	flag.Parse()

	paths, err := filepath.Glob(*pattern)
	if err != nil {
		log.Fatal(err)
	}
	if len(paths) == 0 {
		log.Fatalf("no images match %q", *pattern)
	}

	results, err := runSweep(context.Background(), paths, *workers)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeCSV(*out, results); err != nil {
		log.Fatal(err)
	}
	printSummary(results)
	fmt.Printf("Wrote %d rows to %s\n", len(results), *out)
}

// runSweep measures every image at every scale, spreading images across
// workers. Per-image results are collected under a mutex; row order is
// restored by the final sort in writeCSV.
func runSweep(ctx context.Context, paths []string, workers int) ([]result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	var results []result

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			jobs, err := loadScaled(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			for _, j := range jobs {
				rows, err := measure(j)
				if err != nil {
					return fmt.Errorf("measure %s (scale %g): %w", j.name, j.scale, err)
				}
				mu.Lock()
				results = append(results, rows...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// loadScaled decodes one image to grayscale and produces a job per sweep
// scale. Downscaling uses Lanczos3, which keeps gradients smooth and so
// preserves the residual statistics TGIF depends on.
func loadScaled(path string) ([]job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pix, width, height, err := imgconv.DecodeGray(f)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	jobs := make([]job, 0, len(sweepScales))
	for _, scale := range sweepScales {
		w := int(float64(width) * scale)
		h := int(float64(height) * scale)
		if w < 1 || h < 1 {
			continue
		}
		j := job{name: name, scale: scale, pix: pix, width: width, height: height}
		if scale != 1.0 {
			scaled := resize.Resize(uint(w), uint(h), imgconv.FromPixels(pix, width, height), resize.Lanczos3)
			j.pix, j.width, j.height = imgconv.GrayPixels(imgconv.ToGray(scaled))
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// measure runs the full TGIF parameter grid plus the baseline codecs on
// one prepared image.
func measure(j job) ([]result, error) {
	var rows []result
	base := result{
		Image:   j.name,
		Scale:   j.scale,
		Width:   j.width,
		Height:  j.height,
		RawSize: len(j.pix),
	}

	for remBits := 0; remBits <= 7; remBits++ {
		for _, chunkSize := range sweepChunkSizes {
			params := tgif.DefaultParameters().
				WithRemBits(uint8(remBits)).
				WithChunkSize(chunkSize)
			start := time.Now()
			encoded, err := tgif.Encode(j.pix, j.width, j.height, params)
			if err != nil {
				return nil, err
			}
			r := base
			r.Codec = "tgif"
			r.RemBits = remBits
			r.ChunkSize = int(chunkSize)
			r.Size = len(encoded)
			r.EncodeDur = time.Since(start)
			rows = append(rows, r)
		}
	}

	for _, baseline := range []struct {
		name string
		run  func(job) (int, error)
	}{
		{"png", encodePNGSize},
		{"qoi", encodeQOISize},
		{"zstd", encodeZstdSize},
		{"flate", encodeFlateSize},
	} {
		start := time.Now()
		size, err := baseline.run(j)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", baseline.name, err)
		}
		r := base
		r.Codec = baseline.name
		r.RemBits = -1
		r.Size = size
		r.EncodeDur = time.Since(start)
		rows = append(rows, r)
	}
	return rows, nil
}

func encodePNGSize(j job) (int, error) {
	var buf bytes.Buffer
	if err := imgconv.EncodePNG(&buf, j.pix, j.width, j.height); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func encodeQOISize(j job) (int, error) {
	var buf bytes.Buffer
	if err := qoi.Encode(&buf, imgconv.FromPixels(j.pix, j.width, j.height)); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func encodeZstdSize(j job) (int, error) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(j.pix); err != nil {
		zw.Close()
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func encodeFlateSize(j job) (int, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := fw.Write(j.pix); err != nil {
		fw.Close()
		return 0, err
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func writeCSV(path string, results []result) error {
	sort.Slice(results, func(i, k int) bool {
		a, b := results[i], results[k]
		if a.Image != b.Image {
			return a.Image < b.Image
		}
		if a.Scale != b.Scale {
			return a.Scale > b.Scale
		}
		if a.Codec != b.Codec {
			return a.Codec < b.Codec
		}
		if a.RemBits != b.RemBits {
			return a.RemBits < b.RemBits
		}
		return a.ChunkSize < b.ChunkSize
	})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"image", "scale", "width", "height", "codec",
		"rem_bits", "chunk_size", "raw_bytes", "encoded_bytes", "ratio", "encode_us",
	}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Image,
			strconv.FormatFloat(r.Scale, 'g', -1, 64),
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Height),
			r.Codec,
			strconv.Itoa(r.RemBits),
			strconv.Itoa(r.ChunkSize),
			strconv.Itoa(r.RawSize),
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.ratio(), 'f', 4, 64),
			strconv.FormatInt(r.EncodeDur.Microseconds(), 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// printSummary reports, per image at full scale, the best TGIF setting and
// how it compares to the strongest baseline.
func printSummary(results []result) {
	p := message.NewPrinter(language.English)

	bestTGIF := map[string]result{}
	bestBase := map[string]result{}
	for _, r := range results {
		if r.Scale != 1.0 {
			continue
		}
		if r.Codec == "tgif" {
			if cur, ok := bestTGIF[r.Image]; !ok || r.Size < cur.Size {
				bestTGIF[r.Image] = r
			}
		} else {
			if cur, ok := bestBase[r.Image]; !ok || r.Size < cur.Size {
				bestBase[r.Image] = r
			}
		}
	}

	images := make([]string, 0, len(bestTGIF))
	for name := range bestTGIF {
		images = append(images, name)
	}
	sort.Strings(images)

	for _, name := range images {
		t := bestTGIF[name]
		p.Printf("%s: best tgif %d bytes (ratio %.3f, rem_bits=%d, chunk=%d)",
			name, t.Size, t.ratio(), t.RemBits, t.ChunkSize)
		if b, ok := bestBase[name]; ok {
			p.Printf(", best baseline %s %d bytes (ratio %.3f)", b.Codec, b.Size, b.ratio())
		}
		p.Println()
	}
}

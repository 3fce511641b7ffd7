// Command tgif converts images to and from the TGIF lossless grayscale
// format. Inputs whose extension resolves to a registered codec are decoded
// to PNG; any other supported image (PNG, JPEG, GIF, BMP, TIFF) is coerced
// to 8-bit grayscale and encoded.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cocosip/go-tgif/codec"
	"github.com/cocosip/go-tgif/imgconv"
	"github.com/cocosip/go-tgif/tgif"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Encode: tgif [flags] <input-image> [output.tgif]\n")
	fmt.Fprintf(os.Stderr, "Decode: tgif <input.tgif> [output.png]\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)

	remBits := flag.Uint("rem-bits", 2, "remainder width in bits (0-7)")
	chunkSize := flag.Uint("chunk-size", tgif.DefaultChunkSize, "chunk size in bits (multiple of 8)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(2)
	}

	input := flag.Arg(0)
	base := strings.TrimSuffix(input, filepath.Ext(input))

	// An input extension that resolves to a codec means decode;
	// everything else is image input to encode.
	if c, err := codec.Get(filepath.Ext(input)); err == nil {
		output := base + ".png"
		if flag.NArg() == 2 {
			output = flag.Arg(1)
		}
		if err := decodeFile(c, input, output); err != nil {
			log.Fatalf("decode: %v", err)
		}
		return
	}

	output := base + ".tgif"
	if flag.NArg() == 2 {
		output = flag.Arg(1)
	}
	c, err := codec.Get(filepath.Ext(output))
	if err != nil {
		log.Fatalf("encode: no codec for %s: %v", output, err)
	}
	params, err := codingParams(*remBits, *chunkSize)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if err := encodeFile(c, input, output, params); err != nil {
		log.Fatalf("encode: %v", err)
	}
}

// codingParams validates the flag values against the converted field widths
// before narrowing them, so out-of-range flags fail instead of wrapping.
func codingParams(remBits, chunkSize uint) (tgif.Parameters, error) {
	if remBits > 7 {
		return tgif.Parameters{}, fmt.Errorf("rem-bits %d out of range 0-7", remBits)
	}
	if chunkSize > math.MaxUint32 {
		return tgif.Parameters{}, fmt.Errorf("chunk-size %d exceeds %d", chunkSize, uint(math.MaxUint32))
	}
	return tgif.Parameters{
		RemBits:   uint8(remBits),
		ChunkSize: uint32(chunkSize),
	}, nil
}

func encodeFile(c codec.Codec, input, output string, params tgif.Parameters) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	pix, width, height, err := imgconv.DecodeGray(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	data, err := c.Encode(codec.EncodeParams{
		PixelData: pix,
		Width:     width,
		Height:    height,
		Options:   params,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s -> %s: %d pixels in %d bytes (%.2f%% of raw)\n",
		input, output, width*height, len(data),
		100*float64(len(data))/float64(width*height))
	return nil
}

func decodeFile(c codec.Codec, input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := c.Decode(data)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := imgconv.EncodePNG(out, result.PixelData, result.Width, result.Height); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s -> %s: %dx%d decoded in %v (%.1f MB/s)\n",
		input, output, result.Width, result.Height, elapsed,
		float64(len(result.PixelData))/1e6/elapsed.Seconds())
	return nil
}

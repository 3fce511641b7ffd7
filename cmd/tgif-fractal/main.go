// Command tgif-fractal renders a chaos-game polygon fractal as an 8-bit
// grayscale PNG. The output makes a good smooth-but-structured test image
// for compression experiments.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/cocosip/go-tgif/imgconv"
)

type point struct {
	x, y float64
}

// polygonVertices spreads the attractor vertices evenly on a circle,
// starting at pi/2 or at a random angle when shuffled.
func polygonVertices(edges int, radius float64, shuffle bool, rng *rand.Rand) []point {
	start := math.Pi / 2
	if shuffle {
		start = rng.Float64() * 2 * math.Pi
	}

	vertices := make([]point, edges)
	for i := range vertices {
		angle := start + float64(i)*2*math.Pi/float64(edges)
		vertices[i] = point{
			x: radius * math.Cos(angle),
			y: radius * math.Sin(angle),
		}
	}
	return vertices
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	edges := flag.Int("edges", 5, "number of polygon vertices (3 for a triangle)")
	points := flag.Int("points", 1_000_000, "number of points to plot")
	radius := flag.Int("radius", 1024, "image radius in pixels (output is 2*radius square)")
	shuffle := flag.Bool("shuffle", false, "randomize the vertex starting angle")
	seed := flag.Int64("seed", 1, "random seed")
	output := flag.String("o", "fractal.png", "output PNG file")
	flag.Parse()

	if *radius < 2 {
		log.Fatal("radius must be at least 2")
	}
	if *edges < 3 {
		log.Fatal("need at least 3 edges")
	}

	rng := rand.New(rand.NewSource(*seed))
	size := 2 * *radius
	r := float64(*radius) - 1

	// Start from a white canvas; points darken it.
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	vertices := polygonVertices(*edges, r, *shuffle, rng)
	p := point{
		x: rng.Float64()*2*r - r,
		y: rng.Float64()*2*r - r,
	}

	for i := 0; i < *points; i++ {
		vertex := vertices[rng.Intn(len(vertices))]
		p = point{
			x: (vertex.x - p.x) / 2,
			y: (vertex.y - p.y) / 2,
		}

		// Two gray tones keep the image nearly bi-level but not trivially so.
		shade := uint8(0)
		if int(math.Abs(math.Round(p.y)))*int(math.Abs(math.Round(p.x)))%10 == 0 {
			shade = 10
		}
		img.SetGray(int(math.Round(r-p.x)), int(math.Round(r-p.y)), color.Gray{Y: shade})
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	pix, w, h := imgconv.GrayPixels(img)
	if err := imgconv.EncodePNG(out, pix, w, h); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Produced %s (%dx%d)\n", *output, size, size)
}

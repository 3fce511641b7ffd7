// Package imgconv converts between on-disk image formats and the row-major
// 8-bit grayscale sample grids the TGIF codec works on. The codec core is
// agnostic to source and target formats; everything format-specific lives
// here.
package imgconv

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeGray reads an image in any registered format (PNG, JPEG, GIF, BMP,
// TIFF) and returns its 8-bit grayscale samples in row-major order.
func DecodeGray(r io.Reader) (pix []byte, width, height int, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, err
	}
	pix, width, height = GrayPixels(ToGray(img))
	return pix, width, height, nil
}

// ToGray coerces an arbitrary image into 8-bit grayscale. Images that
// already are grayscale pass through untouched.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	f := gift.New(gift.Grayscale())
	dst := image.NewGray(f.Bounds(img.Bounds()))
	f.Draw(dst, img)
	return dst
}

// GrayPixels extracts the row-major sample grid from a grayscale image,
// compacting away any stride slack or non-zero origin.
func GrayPixels(g *image.Gray) (pix []byte, width, height int) {
	b := g.Bounds()
	width, height = b.Dx(), b.Dy()

	if b.Min == (image.Point{}) && g.Stride == width && len(g.Pix) == width*height {
		return g.Pix, width, height
	}

	pix = make([]byte, width*height)
	for y := 0; y < height; y++ {
		row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(pix[y*width:(y+1)*width], row[:width])
	}
	return pix, width, height
}

// FromPixels wraps a row-major sample grid as an image without copying.
func FromPixels(pix []byte, width, height int) *image.Gray {
	return &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// EncodePNG writes a sample grid as an 8-bit grayscale PNG.
func EncodePNG(w io.Writer, pix []byte, width, height int) error {
	return png.Encode(w, FromPixels(pix, width, height))
}

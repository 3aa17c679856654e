// Package flatten removes transparency from PNG files by compositing them onto
// an opaque white background, rewriting each file in place.
package flatten

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/anthonynsimon/bild/clone"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// ErrNothingToFlatten is returned by Flatten for opaque images.
var ErrNothingToFlatten = errors.New("image has no transparency")

var background = image.NewUniform(color.White)

// Flatten returns an opaque copy of img according to its variant.
//
// Truecolor and palette images are blended over white using their alpha.
// Grayscale+alpha images have their alpha dropped without blending, so a
// transparent black pixel stays black.
func Flatten(img image.Image, v Variant) (*image.RGBA, error) {
	switch v {
	case TruecolorAlpha:
		return composite(img), nil
	case GrayscaleAlpha:
		return dropAlpha(img), nil
	case PaletteTransparent:
		return composite(expandPalette(img)), nil
	case Opaque:
		return nil, ErrNothingToFlatten
	default:
		return nil, errors.Errorf("unknown variant %v", v)
	}
}

// whiteCanvas returns an opaque white image with the bounds of r.
func whiteCanvas(r image.Rectangle) *image.RGBA {
	canvas := image.NewRGBA(r)
	draw.Copy(canvas, r.Min, background, r, draw.Src, nil)
	return canvas
}

// composite draws src over a white canvas, weighting each pixel by its alpha:
// 0 leaves white, 255 keeps the source color.
func composite(src image.Image) *image.RGBA {
	b := src.Bounds()
	canvas := whiteCanvas(b)
	draw.Copy(canvas, b.Min, src, b, draw.Over, nil)
	return canvas
}

// expandPalette converts a paletted image to four-channel RGBA so the palette's
// tRNS entries become per-pixel alpha.
func expandPalette(src image.Image) image.Image {
	return clone.AsRGBA(src)
}

// dropAlpha copies the stored, non-premultiplied color of every pixel onto
// an opaque canvas, ignoring alpha.
func dropAlpha(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := whiteCanvas(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := straightColor(src, x, y)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return dst
}

// straightColor reads the pixel at (x, y) without going through premultiplied
// alpha, which would lose the color of fully transparent pixels.
func straightColor(src image.Image, x, y int) color.NRGBA {
	switch img := src.(type) {
	case *image.NRGBA:
		return img.NRGBAAt(x, y)
	case *image.NRGBA64:
		c := img.NRGBA64At(x, y)
		return color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
	case *image.Gray:
		return color.NRGBAModel.Convert(img.GrayAt(x, y)).(color.NRGBA)
	default:
		return color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
	}
}

// Encode writes img as a PNG using the smallest output the encoder can make.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
	}
	return enc.Encode(w, img)
}

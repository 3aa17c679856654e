// Package testimg builds PNG fixtures in every pixel format the flattener
// distinguishes.
package testimg

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math"
)

var (
	Amber = color.NRGBA{R: 0xB8, G: 0x73, B: 0x33, A: 0xFF}
	Gold  = color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// Circle draws an anti-aliased filled circle centered in a size×size image.
// Corners are fully transparent, the center fully opaque and the edge
// partially transparent.
func Circle(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := center - 0.5 // half-pixel inset so edges don't clip
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= radius-0.5 {
				img.SetNRGBA(x, y, c)
			} else if dist <= radius+0.5 {
				alpha := uint8(float64(c.A) * (radius + 0.5 - dist))
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha})
			}
		}
	}
	return img
}

// Solid returns a fully opaque size×size image.
func Solid(size int, c color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c.A = 0xFF
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// Checker returns a paletted image alternating between c and the palette's
// transparent entry, or between c and black when transparent is false.
func Checker(size int, c color.NRGBA, transparent bool) *image.Paletted {
	other := color.Color(color.NRGBA{A: 0xFF})
	if transparent {
		other = color.NRGBA{}
	}
	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{c, other})
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetColorIndex(x, y, uint8((x+y)%2))
		}
	}
	return img
}

// Gray returns a size×size grayscale+alpha image where the gray level ramps
// along x and alpha ramps along y, from 0 on the first row to 255 on the last.
func Gray(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g := ramp(x, size)
			img.SetNRGBA(x, y, color.NRGBA{R: g, G: g, B: g, A: ramp(y, size)})
		}
	}
	return img
}

func ramp(i, n int) uint8 {
	if n <= 1 {
		return 0xFF
	}
	return uint8(i * 0xFF / (n - 1))
}

// PNG encodes img with the standard encoder. NRGBA images with any
// transparency come out as truecolor+alpha, paletted images with a
// transparent entry carry a tRNS chunk, opaque images have no alpha.
func PNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// GrayAlphaPNG encodes img as an 8-bit grayscale+alpha PNG (color type 4),
// which the standard encoder never produces. The gray level is taken from
// the red channel.
func GrayAlphaPNG(img *image.NRGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var raw bytes.Buffer
	for y := b.Min.Y; y < b.Max.Y; y++ {
		raw.WriteByte(0) // filter: none
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			raw.Write([]byte{c.R, c.A})
		}
	}

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	zw.Write(raw.Bytes())
	zw.Close()

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 4 // color type: gray + alpha

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	writeChunk(&buf, "IHDR", ihdr)
	writeChunk(&buf, "IDAT", idat.Bytes())
	writeChunk(&buf, "IEND", nil)
	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	binary.Write(buf, binary.BigEndian, uint32(len(data)))

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)

	buf.WriteString(typ)
	buf.Write(data)
	binary.Write(buf, binary.BigEndian, crc.Sum32())
}

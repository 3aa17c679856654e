package flatten

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Variant is the pixel format of a PNG, as far as transparency goes.
type Variant int

const (
	Opaque Variant = iota
	TruecolorAlpha
	GrayscaleAlpha
	PaletteTransparent
)

// String returns the PIL-style mode name of the variant.
func (v Variant) String() string {
	switch v {
	case Opaque:
		return "opaque"
	case TruecolorAlpha:
		return "RGBA"
	case GrayscaleAlpha:
		return "LA"
	case PaletteTransparent:
		return "P+tRNS"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// PNG color types from the IHDR chunk.
const (
	ctGray       = 0
	ctTruecolor  = 2
	ctPaletted   = 3
	ctGrayAlpha  = 4
	ctTruecolorA = 6
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var (
	ErrNotPNG  = errors.New("not a PNG file")
	ErrNoIHDR  = errors.New("missing IHDR chunk")
	ErrBadIHDR = errors.New("invalid IHDR chunk")
)

// Header is what Detect learns from the chunks preceding the image data.
type Header struct {
	Width, Height int
	BitDepth      int
	ColorType     int

	// Transparency is set if a tRNS chunk appears before the first IDAT.
	Transparency bool
	Variant      Variant
}

// Detect reads the PNG signature and chunk headers up to the first IDAT and
// classifies the image. Pixel data is not decoded.
func Detect(r io.Reader) (Header, error) {
	br := bufio.NewReader(r)

	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(br, sig); err != nil || !bytes.Equal(sig, pngSignature) {
		return Header{}, ErrNotPNG
	}

	var h Header
	var seenIHDR bool
	var chunk [8]byte

	for {
		if _, err := io.ReadFull(br, chunk[:]); err != nil {
			if !seenIHDR {
				return h, ErrNoIHDR
			}
			return h, errors.Wrap(err, "failed to read chunk header")
		}
		length := int64(binary.BigEndian.Uint32(chunk[:4]))
		typ := string(chunk[4:8])

		if !seenIHDR && typ != "IHDR" {
			return h, ErrNoIHDR
		}

		switch typ {
		case "IHDR":
			if length != 13 {
				return h, ErrBadIHDR
			}
			var ihdr [13]byte
			if _, err := io.ReadFull(br, ihdr[:]); err != nil {
				return h, errors.Wrap(err, "failed to read IHDR")
			}
			h.Width = int(binary.BigEndian.Uint32(ihdr[0:4]))
			h.Height = int(binary.BigEndian.Uint32(ihdr[4:8]))
			h.BitDepth = int(ihdr[8])
			h.ColorType = int(ihdr[9])
			if h.Width <= 0 || h.Height <= 0 {
				return h, ErrBadIHDR
			}
			seenIHDR = true
			length = 0

		case "tRNS":
			h.Transparency = true

		case "IDAT", "IEND":
			v, err := classify(h.ColorType, h.Transparency)
			if err != nil {
				return h, err
			}
			h.Variant = v
			return h, nil
		}

		// Skip the remaining chunk data and the CRC.
		if _, err := io.CopyN(io.Discard, br, length+4); err != nil {
			return h, errors.Wrapf(err, "failed to skip %s chunk", typ)
		}
	}
}

func classify(colorType int, trns bool) (Variant, error) {
	switch colorType {
	case ctTruecolorA:
		return TruecolorAlpha, nil
	case ctGrayAlpha:
		return GrayscaleAlpha, nil
	case ctPaletted:
		if trns {
			return PaletteTransparent, nil
		}
		return Opaque, nil
	case ctGray, ctTruecolor:
		// Color-key tRNS on gray or truecolor images is not treated as
		// transparency.
		return Opaque, nil
	default:
		return Opaque, errors.Wrapf(ErrBadIHDR, "unknown color type %d", colorType)
	}
}

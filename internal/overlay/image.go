package overlay

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// decodedImage is the embeddable form of a decoded raster: either a JPEG
// passthrough (original bytes, DCTDecode) or raw RGB8 pixels flattened
// against opaque white (FlateDecode).
type decodedImage struct {
	Width, Height int
	Filter        string // "/DCTDecode" or "/FlateDecode"
	Data          []byte
}

// sniffFormat identifies an image format by magic bytes.
func sniffFormat(b []byte) string {
	switch {
	case len(b) >= 8 && bytes.Equal(b[:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return "png"
	case len(b) >= 3 && b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF:
		return "jpeg"
	case len(b) >= 12 && bytes.Equal(b[0:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return "webp"
	case len(b) >= 6 && (bytes.Equal(b[:6], []byte("GIF87a")) || bytes.Equal(b[:6], []byte("GIF89a"))):
		return "gif"
	case len(b) >= 2 && b[0] == 'B' && b[1] == 'M':
		return "bmp"
	default:
		return ""
	}
}

// decodeImage decodes an arbitrary image byte buffer into an embeddable
// form, preserving JPEG compression via passthrough and flattening
// everything else (including alpha, against opaque white) into RGB8.
func decodeImage(data []byte) (*decodedImage, error) {
	format := sniffFormat(data)
	if format == "" {
		return nil, fmt.Errorf("unrecognized image format")
	}

	if format == "jpeg" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode jpeg header: %w", err)
		}
		return &decodedImage{
			Width: cfg.Width, Height: cfg.Height,
			Filter: "/DCTDecode",
			Data:   data,
		}, nil
	}

	var img image.Image
	var err error
	switch format {
	case "png", "gif":
		img, _, err = image.Decode(bytes.NewReader(data))
	case "webp":
		img, err = webp.Decode(bytes.NewReader(data))
	case "bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgb := rgbFlattenWhite(img)

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(rgb); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("compress image: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress image: %w", err)
	}

	return &decodedImage{
		Width: w, Height: h,
		Filter: "/FlateDecode",
		Data:   buf.Bytes(),
	}, nil
}

// rgbFlattenWhite converts img to interleaved RGB8, blending any alpha
// channel against opaque white. Fast paths for the common concrete types
// avoid the generic, per-pixel At()/RGBA() interface call.
func rgbFlattenWhite(img image.Image) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]byte, 0, w*h*3)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			rowStart := (y + bounds.Min.Y - nrgba.Rect.Min.Y) * nrgba.Stride
			for x := 0; x < w; x++ {
				off := rowStart + (x+bounds.Min.X-nrgba.Rect.Min.X)*4
				r, g, b, a := nrgba.Pix[off], nrgba.Pix[off+1], nrgba.Pix[off+2], nrgba.Pix[off+3]
				out = append(out, blendWhite(r, g, b, a)...)
			}
		}
		return out
	}

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			rowStart := (y + bounds.Min.Y - rgba.Rect.Min.Y) * rgba.Stride
			for x := 0; x < w; x++ {
				off := rowStart + (x+bounds.Min.X-rgba.Rect.Min.X)*4
				// Pix is alpha-premultiplied.
				a := rgba.Pix[off+3]
				out = append(out, blendPremultiplied(rgba.Pix[off], rgba.Pix[off+1], rgba.Pix[off+2], a)...)
			}
		}
		return out
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out = append(out, blendWhite(byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))...)
		}
	}
	return out
}

func blendWhite(r, g, b, a byte) []byte {
	if a == 255 {
		return []byte{r, g, b}
	}
	if a == 0 {
		return []byte{255, 255, 255}
	}
	inv := 255 - int(a)
	blend := func(c byte) byte {
		return byte((int(c)*int(a) + 255*inv) / 255)
	}
	return []byte{blend(r), blend(g), blend(b)}
}

func blendPremultiplied(rPre, gPre, bPre, a byte) []byte {
	if a == 255 {
		return []byte{rPre, gPre, bPre}
	}
	if a == 0 {
		return []byte{255, 255, 255}
	}
	bg := byte((255 * (255 - int(a))) / 255)
	add := func(c byte) byte {
		v := int(c) + int(bg)
		if v > 255 {
			v = 255
		}
		return byte(v)
	}
	return []byte{add(rPre), add(gPre), add(bPre)}
}

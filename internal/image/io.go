package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// LoadImage loads an image from the given file path. PNG, JPEG, TIFF and BMP
// are recognized from the content; 16-bit sources keep their depth.
func LoadImage(path string) (*Buf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadImageFromBytes loads an image from a byte slice, auto-detecting the format.
func LoadImageFromBytes(data []byte) (*Buf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Buf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// SaveImage writes the buffer to path, picking the encoder from the extension:
// .png, .jpg/.jpeg, .tif/.tiff or .bmp.
func (b *Buf) SaveImage(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, filepath.Ext(path)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode encodes the buffer in the format named by ext (with or without the
// leading dot).
func (b *Buf) Encode(w io.Writer, ext string) error {
	img := b.ToStdImage()

	var err error
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", ext, err)
	}
	return nil
}

// FromStdImage creates a Buf from a standard library image.Image.
// Gray sources map to FormatGray8/FormatGray16, 16-bit color sources to
// FormatRGBA16 and everything else to FormatRGBA8.
func FromStdImage(img image.Image) *Buf {
	bounds := img.Bounds()
	rect := image.Rect(0, 0, bounds.Dx(), bounds.Dy())

	var (
		dst    draw.Image
		pix    []byte
		stride int
		format Format
	)
	switch img.(type) {
	case *image.Gray:
		g := image.NewGray(rect)
		dst, pix, stride, format = g, g.Pix, g.Stride, FormatGray8
	case *image.Gray16:
		g := image.NewGray16(rect)
		dst, pix, stride, format = g, g.Pix, g.Stride, FormatGray16
	case *image.RGBA64, *image.NRGBA64:
		n := image.NewNRGBA64(rect)
		dst, pix, stride, format = n, n.Pix, n.Stride, FormatRGBA16
	default:
		n := image.NewNRGBA(rect)
		dst, pix, stride, format = n, n.Pix, n.Stride, FormatRGBA8
	}
	draw.Draw(dst, rect, img, bounds.Min, draw.Src)

	buf, err := FromRaw(pix, rect.Dx(), rect.Dy(), format, stride)
	if err != nil {
		// Zero-sized source: hand back an empty buffer rather than nil.
		return &Buf{format: format}
	}
	return buf
}

// ToStdImage converts the buffer to a standard library image.Image.
// The pixel data is copied.
func (b *Buf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		g := image.NewGray(rect)
		b.copyRowsTo(g.Pix, g.Stride)
		return g

	case FormatGray16:
		g := image.NewGray16(rect)
		b.copyRowsTo(g.Pix, g.Stride)
		return g

	case FormatRGBA16:
		n := image.NewNRGBA64(rect)
		b.copyRowsTo(n.Pix, n.Stride)
		return n

	case FormatRGB8:
		n := image.NewNRGBA(rect)
		for y := range b.height {
			row := b.RowBytes(y)
			dstStart := y * n.Stride
			for x := range b.width {
				copy(n.Pix[dstStart+x*4:dstStart+x*4+3], row[x*3:x*3+3])
				n.Pix[dstStart+x*4+3] = 255
			}
		}
		return n

	default:
		n := image.NewNRGBA(rect)
		b.copyRowsTo(n.Pix, n.Stride)
		return n
	}
}

// copyRowsTo copies packed rows into pix laid out with the given stride.
func (b *Buf) copyRowsTo(pix []byte, stride int) {
	if stride == b.stride {
		copy(pix, b.data)
		return
	}
	for y := range b.height {
		copy(pix[y*stride:], b.RowBytes(y))
	}
}

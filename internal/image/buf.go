package image

import (
	"errors"
	"image"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buf is a pixel buffer in native bit depth.
//
// Buf stores pixel data in a contiguous byte slice with a row stride that may
// exceed the packed row size.
//
// Thread safety: Buf is safe for concurrent reads. Concurrent writes are safe
// only when they touch disjoint pixels.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuf creates a zeroed buffer with the given dimensions and format.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates a Buf over existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buf.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Buf{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Buf{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Rect returns the image extent as a rectangle anchored at the origin.
func (b *Buf) Rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Data returns the raw pixel data slice.
func (b *Buf) Data() []byte {
	return b.data
}

// SameShape reports whether o has the same dimensions and format as b.
func (b *Buf) SameShape(o *Buf) bool {
	return o != nil && b.width == o.width && b.height == o.height && b.format == o.format
}

// RowBytes returns the packed pixel bytes of row y.
// Returns nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *Buf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// SetPixelBytes sets the raw bytes for pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *Buf) SetPixelBytes(x, y int, pixel []byte) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	copy(b.data[offset:offset+b.format.BytesPerPixel()], pixel)
	return nil
}

// Sample returns channel c of pixel (x, y) widened to uint32.
// Returns 0 for out-of-range coordinates or channels.
func (b *Buf) Sample(x, y, c int) uint32 {
	pixel := b.PixelBytes(x, y)
	if pixel == nil || c < 0 || c >= b.format.Channels() {
		return 0
	}
	if b.format.Is16Bit() {
		return uint32(pixel[2*c])<<8 | uint32(pixel[2*c+1])
	}
	return uint32(pixel[c])
}

// SetPixel writes the given samples into pixel (x, y). Samples beyond the
// format's channel count are ignored, missing ones leave the channel untouched,
// and values are clamped to the format's maximum.
func (b *Buf) SetPixel(x, y int, samples ...uint32) error {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return ErrOutOfBounds
	}
	maxValue := b.format.MaxValue()
	n := min(len(samples), b.format.Channels())
	for c := range n {
		v := min(samples[c], maxValue)
		if b.format.Is16Bit() {
			pixel[2*c] = byte(v >> 8)
			pixel[2*c+1] = byte(v)
		} else {
			pixel[c] = byte(v)
		}
	}
	return nil
}

// Fill sets every pixel to the given samples.
func (b *Buf) Fill(samples ...uint32) {
	if b.width == 0 || b.height == 0 {
		return
	}
	_ = b.SetPixel(0, 0, samples...)
	first := b.PixelBytes(0, 0)
	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := b.RowBytes(y)
		for off := 0; off < len(row); off += bpp {
			copy(row[off:off+bpp], first)
		}
	}
}

// Clear sets all pixels to zero.
func (b *Buf) Clear() {
	clear(b.data)
}

// ByteSize returns the total size of the image data in bytes.
func (b *Buf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the image has zero dimensions.
func (b *Buf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

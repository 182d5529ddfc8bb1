// Package image provides the pixel buffers the compositor reads and writes.
//
// Buffers store samples in their native bit depth (8 or 16 bits per channel).
// 16-bit samples are big-endian, the same layout as the standard library's
// image.RGBA64 and image.Gray16.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel).
	FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	// This is the standard format for most operations.
	FormatRGBA8

	// FormatRGBA16 is 64-bit non-premultiplied RGBA (8 bytes per pixel).
	FormatRGBA16

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels, alpha included.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// BitsPerChannel is the number of bits per channel (8 or 16).
	BitsPerChannel int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8:  {BytesPerPixel: 1, Channels: 1, BitsPerChannel: 8},
	FormatGray16: {BytesPerPixel: 2, Channels: 1, BitsPerChannel: 16},
	FormatRGB8:   {BytesPerPixel: 3, Channels: 3, BitsPerChannel: 8},
	FormatRGBA8:  {BytesPerPixel: 4, Channels: 4, HasAlpha: true, BitsPerChannel: 8},
	FormatRGBA16: {BytesPerPixel: 8, Channels: 4, HasAlpha: true, BitsPerChannel: 16},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// BitsPerChannel returns the number of bits per channel.
func (f Format) BitsPerChannel() int {
	return f.Info().BitsPerChannel
}

// Is16Bit reports whether samples are stored as 16-bit values.
func (f Format) Is16Bit() bool {
	return f.BitsPerChannel() == 16
}

// MaxValue returns the largest sample value: 255 or 65535.
func (f Format) MaxValue() uint32 {
	if f.Is16Bit() {
		return 0xffff
	}
	return 0xff
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBA16:
		return "RGBA16"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

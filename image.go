package quilt

import (
	intImage "github.com/gogpu/quilt/internal/image"
)

// Image is a pixel buffer in one of the supported formats. Samples keep their
// native bit depth.
type Image = intImage.Buf

// Format is the pixel layout of an Image.
type Format = intImage.Format

// Supported pixel formats.
const (
	FormatGray8  = intImage.FormatGray8
	FormatGray16 = intImage.FormatGray16
	FormatRGB8   = intImage.FormatRGB8
	FormatRGBA8  = intImage.FormatRGBA8
	FormatRGBA16 = intImage.FormatRGBA16
)

// NewImage allocates a zeroed width×height image.
func NewImage(width, height int, format Format) (*Image, error) {
	return intImage.NewBuf(width, height, format)
}

// LoadImage reads a PNG, JPEG, TIFF or BMP file.
func LoadImage(path string) (*Image, error) {
	return intImage.LoadImage(path)
}

// SaveImage writes img to path in the format named by the file extension.
func SaveImage(img *Image, path string) error {
	return img.SaveImage(path)
}

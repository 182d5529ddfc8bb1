package image

import "image"

// CopyRow copies columns [x0, x1) of row y from src to dst.
// Both buffers must share the same shape; the span is clipped to the image.
func CopyRow(dst, src *Buf, y, x0, x1 int) {
	if y < 0 || y >= dst.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, dst.width)
	if x0 >= x1 {
		return
	}
	bpp := dst.format.BytesPerPixel()
	d := dst.RowBytes(y)
	s := src.RowBytes(y)
	copy(d[x0*bpp:x1*bpp], s[x0*bpp:x1*bpp])
}

// CopyColumn copies rows [y0, y1) of column x from src to dst.
// Both buffers must share the same shape; the span is clipped to the image.
func CopyColumn(dst, src *Buf, x, y0, y1 int) {
	if x < 0 || x >= dst.width {
		return
	}
	y0 = max(y0, 0)
	y1 = min(y1, dst.height)
	bpp := dst.format.BytesPerPixel()
	for y := y0; y < y1; y++ {
		off := y*dst.stride + x*bpp
		soff := y*src.stride + x*bpp
		copy(dst.data[off:off+bpp], src.data[soff:soff+bpp])
	}
}

// CopyRect copies the pixels of r from src to dst row by row.
func CopyRect(dst, src *Buf, r image.Rectangle) {
	r = r.Intersect(dst.Rect())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		CopyRow(dst, src, y, r.Min.X, r.Max.X)
	}
}

// StrokeRect paints the one-pixel outline of r with the given samples.
// Pixels of the outline that fall outside the image are skipped.
func StrokeRect(dst *Buf, r image.Rectangle, samples ...uint32) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		_ = dst.SetPixel(x, r.Min.Y, samples...)
		_ = dst.SetPixel(x, r.Max.Y-1, samples...)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		_ = dst.SetPixel(r.Min.X, y, samples...)
		_ = dst.SetPixel(r.Max.X-1, y, samples...)
	}
}

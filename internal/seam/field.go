package seam

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	intImage "github.com/gogpu/quilt/internal/image"
	"github.com/gogpu/quilt/internal/parallel"
)

// Errors returned by BuildCost.
var (
	// ErrSizeMismatch is returned when background and foreground differ in size.
	ErrSizeMismatch = errors.New("seam: background and foreground sizes differ")

	// ErrFormatMismatch is returned when background and foreground differ in pixel format.
	ErrFormatMismatch = errors.New("seam: background and foreground formats differ")

	// ErrDegenerateHole is returned when the hole does not leave at least one
	// frame cell on every side of it.
	ErrDegenerateHole = errors.New("seam: degenerate hole")
)

// HoleFromMargin returns the hole left by insetting a width×height canvas by
// margin pixels on every side. ok is false when the result is degenerate:
// margin ≤ 0, an empty hole, or a canvas smaller than 3×3.
func HoleFromMargin(width, height, margin int) (hole image.Rectangle, ok bool) {
	if margin <= 0 || width < 3 || height < 3 {
		return image.Rectangle{}, false
	}
	if width-2*margin <= 0 || height-2*margin <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(margin, margin, width-margin, height-margin), true
}

// ValidateHole reports ErrDegenerateHole unless hole lies strictly inside a
// width×height canvas with at least one frame cell on each of its sides.
func ValidateHole(width, height int, hole image.Rectangle) error {
	if hole.Min.X < 1 || hole.Min.Y < 1 || hole.Max.X > width-1 || hole.Max.Y > height-1 ||
		hole.Min.X >= hole.Max.X || hole.Min.Y >= hole.Max.Y {
		return fmt.Errorf("%w: %v in %dx%d", ErrDegenerateHole, hole, width, height)
	}
	return nil
}

// Field is a per-cell cost grid over the canvas. Cells inside Hole hold +Inf
// and are never read or written by Accumulate or Trace.
//
// A Field starts out holding local mismatch costs (BuildCost). Accumulate
// turns it, in place, into accumulated path costs.
type Field struct {
	width  int
	height int
	hole   image.Rectangle
	cost   []float64
	pooled *[]float64
}

// NewField returns a field of the given size with every frame cell set to 0.
func NewField(width, height int, hole image.Rectangle) (*Field, error) {
	if err := ValidateHole(width, height, hole); err != nil {
		return nil, err
	}
	f := newField(width, height, hole)
	clear(f.cost)
	for y := range height {
		for x := range width {
			if image.Pt(x, y).In(hole) {
				f.cost[y*width+x] = math.Inf(1)
			}
		}
	}
	return f, nil
}

func newField(width, height int, hole image.Rectangle) *Field {
	buf := getCostBuffer(width * height)
	return &Field{
		width:  width,
		height: height,
		hole:   hole,
		cost:   (*buf)[:width*height],
		pooled: buf,
	}
}

// Width returns the field width.
func (f *Field) Width() int { return f.width }

// Height returns the field height.
func (f *Field) Height() int { return f.height }

// Hole returns the hole rectangle.
func (f *Field) Hole() image.Rectangle { return f.hole }

// At returns the cost at (x, y). Cells outside the canvas and inside the
// hole report +Inf.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return math.Inf(1)
	}
	return f.cost[y*f.width+x]
}

// Set stores v at (x, y). Writes outside the frame are ignored.
func (f *Field) Set(x, y int, v float64) {
	if !f.InFrame(image.Pt(x, y)) {
		return
	}
	f.cost[y*f.width+x] = v
}

// InFrame reports whether p is on the canvas and outside the hole.
func (f *Field) InFrame(p image.Point) bool {
	return p.X >= 0 && p.X < f.width && p.Y >= 0 && p.Y < f.height && !p.In(f.hole)
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := newField(f.width, f.height, f.hole)
	copy(c.cost, f.cost)
	return c
}

// Release hands the field's storage back for reuse. The field must not be
// used afterwards.
func (f *Field) Release() {
	if f.pooled == nil {
		return
	}
	putCostBuffer(f.pooled)
	f.pooled = nil
	f.cost = nil
}

// BuildCost computes the local mismatch cost of every frame cell: the sum over
// channels of |bg − fg| in the images' native sample values. Rows are computed
// on pool when it is non-nil.
func BuildCost(bg, fg *intImage.Buf, hole image.Rectangle, pool *parallel.WorkerPool) (*Field, error) {
	if bg.Width() != fg.Width() || bg.Height() != fg.Height() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			bg.Width(), bg.Height(), fg.Width(), fg.Height())
	}
	if bg.Format() != fg.Format() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrFormatMismatch, bg.Format(), fg.Format())
	}
	if err := ValidateHole(bg.Width(), bg.Height(), hole); err != nil {
		return nil, err
	}

	f := newField(bg.Width(), bg.Height(), hole)
	deep := bg.Format().Is16Bit()
	bpp := bg.Format().BytesPerPixel()

	buildRows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			b := bg.RowBytes(y)
			g := fg.RowBytes(y)
			row := f.cost[y*f.width : (y+1)*f.width]
			for x := range row {
				if y >= hole.Min.Y && y < hole.Max.Y && x >= hole.Min.X && x < hole.Max.X {
					row[x] = math.Inf(1)
					continue
				}
				off := x * bpp
				if deep {
					row[x] = manhattan16(b[off:off+bpp], g[off:off+bpp])
				} else {
					row[x] = manhattan8(b[off:off+bpp], g[off:off+bpp])
				}
			}
		}
	}

	if pool == nil {
		buildRows(0, f.height)
	} else {
		pool.Rows(f.height, buildRows)
	}
	return f, nil
}

func manhattan8(a, b []byte) float64 {
	var sum int
	for c := range a {
		d := int(a[c]) - int(b[c])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum)
}

func manhattan16(a, b []byte) float64 {
	var sum int
	for c := 0; c+1 < len(a); c += 2 {
		d := (int(a[c])<<8 | int(a[c+1])) - (int(b[c])<<8 | int(b[c+1]))
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum)
}

// costBufferPool recycles field storage between composites.
var costBufferPool = sync.Pool{
	New: func() any {
		buf := make([]float64, 0)
		return &buf
	},
}

// maxPooledCells bounds the buffers kept for reuse (about 8K×8K).
const maxPooledCells = 8192 * 8192

func getCostBuffer(size int) *[]float64 {
	buf := costBufferPool.Get().(*[]float64)
	if cap(*buf) < size {
		*buf = make([]float64, size)
	}
	*buf = (*buf)[:size]
	return buf
}

func putCostBuffer(buf *[]float64) {
	if cap(*buf) > maxPooledCells {
		return
	}
	costBufferPool.Put(buf)
}

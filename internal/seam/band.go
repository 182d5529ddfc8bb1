package seam

import "image"

// Band is one of the eight regions the frame splits into when the hole's
// sides are extended to the canvas edges. Bands are numbered in sweep order,
// clockwise from the band above the hole.
type Band uint8

const (
	BandTop Band = iota
	BandTopRight
	BandRight
	BandBottomRight
	BandBottom
	BandBottomLeft
	BandLeft
	BandTopLeft

	bandCount
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandTop:
		return "top"
	case BandTopRight:
		return "top-right"
	case BandRight:
		return "right"
	case BandBottomRight:
		return "bottom-right"
	case BandBottom:
		return "bottom"
	case BandBottomLeft:
		return "bottom-left"
	case BandLeft:
		return "left"
	case BandTopLeft:
		return "top-left"
	default:
		return "unknown"
	}
}

// prev returns the band swept immediately before b.
func (b Band) prev() Band {
	return (b + bandCount - 1) % bandCount
}

// side names the hole edge a band's foreground spans run to.
type side uint8

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// descriptor is everything the generic sweep and trace need to know about a
// band: where it is, in which order its cells are visited and which cells
// feed each of them.
type descriptor struct {
	band Band
	rect image.Rectangle

	// columnsFirst selects an outer loop over x (true) or over y (false).
	// stepX and stepY are +1 or -1 and give the direction along each axis.
	columnsFirst bool
	stepX, stepY int

	// preds are the offsets of the cells a path can arrive from, straight
	// ahead first.
	preds [3]image.Point

	side side
}

// ring is the frame around one hole, split into its eight bands.
type ring struct {
	width, height int
	hole          image.Rectangle
	bands         [bandCount]descriptor
}

func newRing(width, height int, hole image.Rectangle) *ring {
	l, t, r, b := hole.Min.X, hole.Min.Y, hole.Max.X, hole.Max.Y
	w, h := width, height

	return &ring{
		width:  width,
		height: height,
		hole:   hole,
		bands: [bandCount]descriptor{
			BandTop: {
				band: BandTop, rect: image.Rect(l, 0, r, t),
				columnsFirst: true, stepX: 1, stepY: 1,
				preds: [3]image.Point{{-1, 0}, {-1, 1}, {-1, -1}},
				side:  sideTop,
			},
			BandTopRight: {
				band: BandTopRight, rect: image.Rect(r, 0, w, t),
				columnsFirst: true, stepX: 1, stepY: 1,
				preds: [3]image.Point{{-1, -1}, {-1, 0}, {0, -1}},
				side:  sideRight,
			},
			BandRight: {
				band: BandRight, rect: image.Rect(r, t, w, b),
				columnsFirst: false, stepX: 1, stepY: 1,
				preds: [3]image.Point{{0, -1}, {-1, -1}, {1, -1}},
				side:  sideRight,
			},
			BandBottomRight: {
				band: BandBottomRight, rect: image.Rect(r, b, w, h),
				columnsFirst: false, stepX: -1, stepY: 1,
				preds: [3]image.Point{{1, -1}, {1, 0}, {0, -1}},
				side:  sideBottom,
			},
			BandBottom: {
				band: BandBottom, rect: image.Rect(l, b, r, h),
				columnsFirst: true, stepX: -1, stepY: 1,
				preds: [3]image.Point{{1, 0}, {1, -1}, {1, 1}},
				side:  sideBottom,
			},
			BandBottomLeft: {
				band: BandBottomLeft, rect: image.Rect(0, b, l, h),
				columnsFirst: true, stepX: -1, stepY: -1,
				preds: [3]image.Point{{1, 1}, {1, 0}, {0, 1}},
				side:  sideLeft,
			},
			BandLeft: {
				band: BandLeft, rect: image.Rect(0, t, l, b),
				columnsFirst: false, stepX: 1, stepY: -1,
				preds: [3]image.Point{{0, 1}, {1, 1}, {-1, 1}},
				side:  sideLeft,
			},
			BandTopLeft: {
				band: BandTopLeft, rect: image.Rect(0, 0, l, t),
				columnsFirst: false, stepX: 1, stepY: -1,
				preds: [3]image.Point{{-1, 1}, {-1, 0}, {0, 1}},
				side:  sideTop,
			},
		},
	}
}

// bandOf returns the band containing p. ok is false for points in the hole
// or off the canvas.
func (r *ring) bandOf(p image.Point) (Band, bool) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= r.height {
		return 0, false
	}
	col := 1
	switch {
	case p.X < r.hole.Min.X:
		col = 0
	case p.X >= r.hole.Max.X:
		col = 2
	}
	row := 1
	switch {
	case p.Y < r.hole.Min.Y:
		row = 0
	case p.Y >= r.hole.Max.Y:
		row = 2
	}
	band := bandGrid[row][col]
	return band, band != bandCount
}

// bandGrid maps (row, column) of the 3×3 split to a band; the centre is the hole.
var bandGrid = [3][3]Band{
	{BandTopLeft, BandTop, BandTopRight},
	{BandLeft, bandCount, BandRight},
	{BandBottomLeft, BandBottom, BandBottomRight},
}

// predecessors returns the cells a path through p (in band d) can arrive
// from, ordered by tie preference: nearest the hole first, then straight
// ahead. A cell qualifies only if it lies in d's band or in the band swept
// just before it.
func (r *ring) predecessors(d *descriptor, p image.Point) ([3]image.Point, int) {
	var out [3]image.Point
	n := 0
	for _, off := range d.preds {
		q := p.Add(off)
		qb, ok := r.bandOf(q)
		if !ok || (qb != d.band && qb != d.band.prev()) {
			continue
		}
		// Insertion keeps the straight-ahead order among equal distances.
		i := n
		for i > 0 && r.holeDistance(out[i-1]) > r.holeDistance(q) {
			out[i] = out[i-1]
			i--
		}
		out[i] = q
		n++
	}
	return out, n
}

// holeDistance is the Chebyshev distance from p to the nearest hole cell.
func (r *ring) holeDistance(p image.Point) int {
	dx := max(r.hole.Min.X-p.X, p.X-(r.hole.Max.X-1), 0)
	dy := max(r.hole.Min.Y-p.Y, p.Y-(r.hole.Max.Y-1), 0)
	return max(dx, dy)
}

// each calls fn for every cell of rect in d's sweep order.
func (d *descriptor) each(rect image.Rectangle, fn func(p image.Point)) {
	xs := span{rect.Min.X, rect.Max.X, d.stepX}
	ys := span{rect.Min.Y, rect.Max.Y, d.stepY}
	if d.columnsFirst {
		for x := xs.first(); xs.contains(x); x += xs.step {
			for y := ys.first(); ys.contains(y); y += ys.step {
				fn(image.Pt(x, y))
			}
		}
		return
	}
	for y := ys.first(); ys.contains(y); y += ys.step {
		for x := xs.first(); xs.contains(x); x += xs.step {
			fn(image.Pt(x, y))
		}
	}
}

// span is a half-open interval walked in the direction of step.
type span struct {
	lo, hi, step int
}

func (s span) first() int {
	if s.step > 0 {
		return s.lo
	}
	return s.hi - 1
}

func (s span) contains(v int) bool {
	return v >= s.lo && v < s.hi
}

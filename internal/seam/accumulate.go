package seam

import (
	"image"
	"math"
)

// Accumulate turns the local costs in f into accumulated path costs, in place.
//
// Afterwards each frame cell holds the cheapest cost of a path that enters
// the ring at the top band's first column, travels clockwise one step at a
// time (drifting at most one cell sideways per step) and ends at that cell.
// The sweep is inherently sequential and must not run concurrently with
// any other access to f.
func Accumulate(f *Field) {
	r := newRing(f.width, f.height, f.hole)
	top := &r.bands[BandTop]

	// The top band's first column is where the ring closes. Its local costs
	// seed the sweep and it is accumulated last, from the top-left corner.
	first := image.Rect(top.rect.Min.X, top.rect.Min.Y, top.rect.Min.X+1, top.rect.Max.Y)
	rest := image.Rect(first.Max.X, top.rect.Min.Y, top.rect.Max.X, top.rect.Max.Y)

	r.sweep(f, top, rest)
	for b := BandTopRight; b < bandCount; b++ {
		d := &r.bands[b]
		r.sweep(f, d, d.rect)
	}
	r.sweep(f, top, first)
}

// sweep relaxes every cell of rect (part of band d) in d's order.
func (r *ring) sweep(f *Field, d *descriptor, rect image.Rectangle) {
	d.each(rect, func(p image.Point) {
		preds, n := r.predecessors(d, p)
		best := math.Inf(1)
		for _, q := range preds[:n] {
			best = min(best, f.cost[q.Y*f.width+q.X])
		}
		if n > 0 {
			f.cost[p.Y*f.width+p.X] += best
		}
	})
}

package seam

import (
	"fmt"
	"image"
	"math"
)

// Axis is the direction of a copy instruction.
type Axis uint8

const (
	// Vertical instructions copy part of a column.
	Vertical Axis = iota
	// Horizontal instructions copy part of a row.
	Horizontal
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Instruction tells the compositor to copy foreground pixels over one
// segment: column Line, rows [From, To) for Vertical, or row Line,
// columns [From, To) for Horizontal.
type Instruction struct {
	Axis Axis
	Line int
	From int
	To   int
}

// Len returns the number of pixels the instruction covers.
func (in Instruction) Len() int {
	return max(in.To-in.From, 0)
}

// String renders the instruction for logs and test failures.
func (in Instruction) String() string {
	if in.Axis == Horizontal {
		return fmt.Sprintf("row %d [%d,%d)", in.Line, in.From, in.To)
	}
	return fmt.Sprintf("col %d [%d,%d)", in.Line, in.From, in.To)
}

func (in Instruction) sameLine(o Instruction) bool {
	return in.Axis == o.Axis && in.Line == o.Line
}

// Seam is a traced closed seam around the hole.
type Seam struct {
	// Path holds the seam cells in trace order, starting in the top band's
	// first column and walking counter-clockwise.
	Path []image.Point

	// Instructions are the foreground copies that fill the area between the
	// seam and the hole. Seam cells themselves stay background. No two
	// instructions touch the same pixel.
	Instructions []Instruction

	// Cost is the accumulated cost of the whole loop.
	Cost float64
}

// Trace walks the accumulated field f backwards from the cheapest cell of the
// top band's first column, once around the hole, and returns the seam.
//
// Among equally cheap candidates the trace picks the one nearest the hole,
// then the one straight ahead. With a uniform cost field the seam therefore
// hugs the hole and produces no instructions.
func Trace(f *Field) *Seam {
	r := newRing(f.width, f.height, f.hole)
	left := f.hole.Min.X

	start := image.Pt(left, 0)
	best := math.Inf(1)
	for y := 0; y < f.hole.Min.Y; y++ {
		if c := f.cost[y*f.width+left]; c <= best {
			best, start.Y = c, y
		}
	}

	s := &Seam{Cost: best}
	var pending Instruction
	hasPending := false

	p, band := start, BandTop
	for {
		s.Path = append(s.Path, p)

		in := r.instruction(band, p)
		if hasPending && !pending.sameLine(in) {
			s.emit(pending)
		}
		pending, hasPending = in, true

		next, ok := r.cheapestPredecessor(f, &r.bands[band], p)
		if !ok {
			break
		}
		nextBand, _ := r.bandOf(next)
		if nextBand == BandTop && next.X == left {
			break
		}
		p, band = next, nextBand
	}
	if hasPending {
		s.emit(pending)
	}
	return s
}

func (s *Seam) emit(in Instruction) {
	if in.Len() > 0 {
		s.Instructions = append(s.Instructions, in)
	}
}

// cheapestPredecessor picks the cheapest cell a path through p can come from.
// Earlier candidates win ties.
func (r *ring) cheapestPredecessor(f *Field, d *descriptor, p image.Point) (image.Point, bool) {
	preds, n := r.predecessors(d, p)
	if n == 0 {
		return image.Point{}, false
	}
	best := preds[0]
	for _, q := range preds[1:n] {
		if f.cost[q.Y*f.width+q.X] < f.cost[best.Y*f.width+best.X] {
			best = q
		}
	}
	return best, true
}

// instruction returns the span between seam cell p and the hole edge its
// band faces.
func (r *ring) instruction(band Band, p image.Point) Instruction {
	h := r.hole
	switch r.bands[band].side {
	case sideTop:
		return Instruction{Axis: Vertical, Line: p.X, From: p.Y + 1, To: h.Min.Y}
	case sideRight:
		return Instruction{Axis: Horizontal, Line: p.Y, From: h.Max.X, To: p.X}
	case sideBottom:
		return Instruction{Axis: Vertical, Line: p.X, From: h.Max.Y, To: p.Y}
	default:
		return Instruction{Axis: Horizontal, Line: p.Y, From: p.X + 1, To: h.Min.X}
	}
}

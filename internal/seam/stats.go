package seam

import (
	"gonum.org/v1/gonum/floats"
)

// Summary describes the cost values of a field's frame cells.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Cells int
}

// Summarize collects statistics over the frame cells of f. Hole cells are
// skipped. A field with no frame cells yields the zero Summary.
func Summarize(f *Field) Summary {
	frame := make([]float64, 0, f.width*f.height-f.hole.Dx()*f.hole.Dy())
	for y := range f.height {
		row := f.cost[y*f.width : (y+1)*f.width]
		if y < f.hole.Min.Y || y >= f.hole.Max.Y {
			frame = append(frame, row...)
			continue
		}
		frame = append(frame, row[:f.hole.Min.X]...)
		frame = append(frame, row[f.hole.Max.X:]...)
	}
	if len(frame) == 0 {
		return Summary{}
	}
	return Summary{
		Min:   floats.Min(frame),
		Max:   floats.Max(frame),
		Mean:  floats.Sum(frame) / float64(len(frame)),
		Cells: len(frame),
	}
}

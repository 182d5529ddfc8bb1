package quilt

import (
	"image"

	intImage "github.com/gogpu/quilt/internal/image"
	"github.com/gogpu/quilt/internal/seam"
)

// fillHole copies fg over the hole rows of out.
func (c *Compositor) fillHole(out, fg *Image, hole image.Rectangle) {
	c.pool.Rows(hole.Dy(), func(y0, y1 int) {
		for y := hole.Min.Y + y0; y < hole.Min.Y+y1; y++ {
			intImage.CopyRow(out, fg, y, hole.Min.X, hole.Max.X)
		}
	})
}

// apply runs the seam's copy instructions. Instructions never touch the same
// pixel, so chunks of them run concurrently.
func (c *Compositor) apply(out, fg *Image, instructions []seam.Instruction) {
	c.pool.Rows(len(instructions), func(i0, i1 int) {
		for _, in := range instructions[i0:i1] {
			if in.Axis == seam.Horizontal {
				intImage.CopyRow(out, fg, in.Line, in.From, in.To)
			} else {
				intImage.CopyColumn(out, fg, in.Line, in.From, in.To)
			}
		}
	})
}

// overlay marks the seam cells and the hole outline.
func overlay(out *Image, path []image.Point, hole image.Rectangle) {
	maxValue := out.Format().MaxValue()
	px := overlaySamples(seamColor, maxValue)
	for _, p := range path {
		_ = out.SetPixel(p.X, p.Y, px...)
	}
	intImage.StrokeRect(out, hole, overlaySamples(holeColor, maxValue)...)
}

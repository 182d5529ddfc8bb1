// Package seam finds a closed minimum-cost seam around a rectangular hole.
//
// The canvas outside the hole (the frame) is split into eight bands by
// extending the hole's sides to the canvas edges. A path starts in the band
// above the hole, travels clockwise through every band and closes where it
// started. The work happens in three steps:
//
//	f, err := seam.BuildCost(bg, fg, hole, pool) // local mismatch per cell
//	seam.Accumulate(f)                          // cheapest path cost per cell
//	s := seam.Trace(f)                          // walk back, emit copies
//
// Inside the seam the foreground shows; outside it the background stays.
// The returned Instructions cover exactly the cells between the seam and the
// hole.
package seam

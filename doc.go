// Package quilt inserts a rectangular foreground patch into a background
// image without a visible rectangular cut.
//
// # Overview
//
// The caller supplies a background and a foreground of the same size and
// format, and a margin. The margin leaves a rectangular hole in the middle
// of the canvas that always shows the foreground. Around the hole, quilt
// finds the closed loop of pixels along which the two images differ least
// and shows the foreground everywhere inside that loop. The loop is the seam;
// its pixels and everything outside it keep the background.
//
// # Quick Start
//
//	import "github.com/gogpu/quilt"
//
//	bg, _ := quilt.LoadImage("plate.png")
//	fg, _ := quilt.LoadImage("patch.png")
//
//	out, err := quilt.Composite(bg, fg, quilt.Options{
//	    Margin: quilt.MarginFromBorder(0.3, fg.Height()),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	quilt.SaveImage(out, "result.png")
//
// # Formats
//
// Gray, RGB and RGBA images with 8 or 16 bits per channel are supported.
// Pixels are copied in their native depth; the result is a hard per-pixel
// choice between the two inputs with no blending.
//
// # Concurrency
//
// A [Compositor] owns a worker pool used for the row-parallel passes. The
// seam search itself is a sequential sweep. Compositors are safe for
// concurrent use; the package-level [Composite] shares one.
package quilt

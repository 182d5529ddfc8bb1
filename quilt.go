package quilt

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	intImage "github.com/gogpu/quilt/internal/image"
	"github.com/gogpu/quilt/internal/parallel"
	"github.com/gogpu/quilt/internal/seam"
)

// Errors returned by Composite.
var (
	// ErrSizeMismatch is returned when background and foreground differ in size.
	ErrSizeMismatch = seam.ErrSizeMismatch

	// ErrFormatMismatch is returned when background and foreground differ in pixel format.
	ErrFormatMismatch = seam.ErrFormatMismatch
)

// Compositor inserts a foreground patch into a background along a
// minimum-cost seam. A Compositor owns a worker pool for its row-parallel
// passes and may be used from several goroutines at once.
type Compositor struct {
	pool    *parallel.WorkerPool
	scratch *intImage.Pool
}

// NewCompositor creates a compositor with the given number of workers.
// If workers <= 0, GOMAXPROCS is used.
func NewCompositor(workers int) *Compositor {
	return &Compositor{
		pool:    parallel.NewWorkerPool(workers),
		scratch: intImage.NewPool(2),
	}
}

// Close releases the compositor's workers. A closed compositor still works,
// running every pass on the calling goroutine.
func (c *Compositor) Close() {
	c.pool.Close()
}

// Workers returns the number of workers the compositor runs passes on.
func (c *Compositor) Workers() int {
	return c.pool.Workers()
}

// Composite returns a new image showing fg inside a closed seam around the
// hole left by opts.Margin and bg outside it.
//
// When only one of bg and fg is given, Composite returns a copy of it; when
// neither is, it returns (nil, nil). A margin that leaves no hole yields a
// copy of fg. Images of different size or format are rejected.
func (c *Compositor) Composite(bg, fg *Image, opts Options) (*Image, error) {
	return c.composite(bg, fg, opts, cloneImage)
}

func cloneImage(src *Image) (*Image, error) { return src.Clone(), nil }

// composite does the work of Composite. Every image it returns is made by
// dup from one of the inputs and then modified in place.
func (c *Compositor) composite(bg, fg *Image, opts Options, dup func(*Image) (*Image, error)) (*Image, error) {
	switch {
	case bg == nil && fg == nil:
		return nil, nil
	case bg == nil:
		return dup(fg)
	case fg == nil:
		return dup(bg)
	}

	if w, h := bg.Bounds(); w != fg.Width() || h != fg.Height() {
		return nil, fmt.Errorf("quilt: %w: %dx%d vs %dx%d", ErrSizeMismatch, w, h, fg.Width(), fg.Height())
	}
	if bg.Format() != fg.Format() {
		return nil, fmt.Errorf("quilt: %w: %v vs %v", ErrFormatMismatch, bg.Format(), fg.Format())
	}

	log := Logger()
	hole, ok := seam.HoleFromMargin(bg.Width(), bg.Height(), opts.Margin)
	if !ok {
		log.Debug("quilt: no hole, copying foreground",
			"width", bg.Width(), "height", bg.Height(), "margin", opts.Margin)
		return dup(fg)
	}
	log.Debug("quilt: hole", "rect", hole, "margin", opts.Margin, "format", bg.Format())

	field, err := seam.BuildCost(bg, fg, hole, c.pool)
	if err != nil {
		return nil, fmt.Errorf("quilt: cost field: %w", err)
	}
	defer field.Release()

	if log.Enabled(context.Background(), slog.LevelDebug) {
		sum := seam.Summarize(field)
		log.Debug("quilt: cost", "min", sum.Min, "max", sum.Max, "mean", sum.Mean, "cells", sum.Cells)
	}

	seam.Accumulate(field)
	s := seam.Trace(field)
	log.Debug("quilt: seam", "cost", s.Cost, "length", len(s.Path), "instructions", len(s.Instructions))

	out, err := dup(bg)
	if err != nil {
		return nil, err
	}
	c.fillHole(out, fg, hole)
	c.apply(out, fg, s.Instructions)
	if opts.Debug {
		overlay(out, s.Path, hole)
	}
	return out, nil
}

// Render composites bg and fg into dst. It is meant for host boundaries that
// must not fail: any error or panic is logged at warn level, dst is left
// untouched and Render returns false.
func (c *Compositor) Render(dst, bg, fg *Image, opts Options) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("quilt: render panicked", "panic", r)
			ok = false
		}
	}()

	if dst == nil {
		Logger().Warn("quilt: render without destination")
		return false
	}
	out, err := c.composite(bg, fg, opts, c.scratch.GetCopy)
	if err != nil {
		Logger().Warn("quilt: render failed", "err", err)
		return false
	}
	if out == nil {
		Logger().Warn("quilt: render without inputs")
		return false
	}
	defer c.scratch.Put(out)
	if !dst.SameShape(out) {
		Logger().Warn("quilt: render destination mismatch",
			"dst", dst.Rect(), "dstFormat", dst.Format(), "src", out.Rect(), "srcFormat", out.Format())
		return false
	}
	intImage.CopyRect(dst, out, dst.Rect())
	return true
}

var defaultCompositor = sync.OnceValue(func() *Compositor {
	return NewCompositor(0)
})

// Composite composites bg and fg on a shared compositor.
// See [Compositor.Composite].
func Composite(bg, fg *Image, opts Options) (*Image, error) {
	return defaultCompositor().Composite(bg, fg, opts)
}

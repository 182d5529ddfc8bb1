// Command quilt inserts a foreground image into a background along a
// minimum-cost seam.
//
// Usage:
//
//	quilt -bg plate.png -fg patch.png -o out.png [-border 0.2 | -margin 40] [-debug]
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/quilt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "quilt: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("quilt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := DefaultConfig()
	var (
		bgPath     = fs.String("bg", "", "background image")
		fgPath     = fs.String("fg", "", "foreground image")
		output     = fs.String("o", "quilt.png", "output file (.png, .jpg, .tif, .bmp)")
		margin     = fs.Int("margin", def.Margin, "frame width in pixels (overrides -border)")
		border     = fs.Float64("border", def.Border, "frame width as a share of half the image height")
		debug      = fs.Bool("debug", def.Debug, "paint the seam and the hole outline")
		workers    = fs.Int("workers", def.Workers, "worker goroutines (0 = GOMAXPROCS)")
		configPath = fs.String("config", "", "YAML configuration file")
		verbose    = fs.Bool("v", false, "verbose (debug) logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "margin":
			cfg.Margin = *margin
		case "border":
			cfg.Border = *border
		case "debug":
			cfg.Debug = *debug
		case "workers":
			cfg.Workers = *workers
		}
	})
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	quilt.SetLogger(logger)
	defer quilt.SetLogger(nil)

	if *bgPath == "" && *fgPath == "" {
		return errors.New("at least one of -bg and -fg is required")
	}

	bg, fg, err := loadPair(*bgPath, *fgPath)
	if err != nil {
		return err
	}

	ref := fg
	if ref == nil {
		ref = bg
	}
	opts := quilt.Options{
		Margin: cfg.MarginFor(ref.Height(), quilt.MarginFromBorder),
		Debug:  cfg.Debug,
	}

	c := quilt.NewCompositor(cfg.Workers)
	defer c.Close()

	logger.Debug("compositing", "bg", *bgPath, "fg", *fgPath, "margin", opts.Margin, "workers", c.Workers())
	out, err := c.Composite(bg, fg, opts)
	if err != nil {
		return err
	}
	if err := quilt.SaveImage(out, *output); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%s: %d×%d, margin %d, %d pixels differ from the background\n",
		*output, out.Width(), out.Height(), opts.Margin, changedPixels(out, bg))
	return nil
}

// loadPair decodes the background and foreground concurrently. An empty path
// leaves that image nil.
func loadPair(bgPath, fgPath string) (bg, fg *quilt.Image, err error) {
	var g errgroup.Group
	load := func(path string, dst **quilt.Image) {
		if path == "" {
			return
		}
		g.Go(func() error {
			img, err := quilt.LoadImage(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			*dst = img
			return nil
		})
	}
	load(bgPath, &bg)
	load(fgPath, &fg)
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return bg, fg, nil
}

// changedPixels counts the pixels of out that differ from bg.
func changedPixels(out, bg *quilt.Image) int {
	if bg == nil || !out.SameShape(bg) {
		return out.Width() * out.Height()
	}
	n := 0
	for y := range out.Height() {
		for x := range out.Width() {
			if !bytes.Equal(out.PixelBytes(x, y), bg.PixelBytes(x, y)) {
				n++
			}
		}
	}
	return n
}

package seam

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	intImage "github.com/gogpu/quilt/internal/image"
)

func vert(col, from, to int) Instruction {
	return Instruction{Axis: Vertical, Line: col, From: from, To: to}
}

func horiz(row, from, to int) Instruction {
	return Instruction{Axis: Horizontal, Line: row, From: from, To: to}
}

func traceImages(t testing.TB, bg, fg *intImage.Buf, margin int) *Seam {
	t.Helper()
	f, err := BuildCost(bg, fg, mustHole(t, bg.Width(), bg.Height(), margin), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Release()
	Accumulate(f)
	return Trace(f)
}

func TestInstruction(t *testing.T) {
	if got := vert(2, 5, 3).Len(); got != 0 {
		t.Errorf("reversed Len() = %d, want 0", got)
	}
	if got := horiz(1, 2, 6).Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if got := horiz(1, 2, 6).String(); got != "row 1 [2,6)" {
		t.Errorf("String() = %q", got)
	}
	if got := vert(3, 0, 1).String(); got != "col 3 [0,1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestTrace_UniformHugsHole(t *testing.T) {
	bg := newImage(t, 10, 10, 0, 0, 0, 255)
	fg := newImage(t, 10, 10, 255, 255, 255, 255)

	s := traceImages(t, bg, fg, 2)

	if len(s.Instructions) != 0 {
		t.Errorf("Instructions = %v, want none", s.Instructions)
	}
	want := []image.Point{
		{2, 1}, {1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}, {1, 7},
		{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {6, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 6}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {7, 1},
		{6, 1}, {5, 1}, {4, 1}, {3, 1},
	}
	if diff := cmp.Diff(want, s.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	// The start cell closes the loop and is counted on both ends.
	if want := float64(29 * 765); s.Cost != want {
		t.Errorf("Cost = %v, want %v", s.Cost, want)
	}
}

func TestTrace_IdenticalImages(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	bg := randomImage(t, rng, 14, 12, intImage.FormatRGBA8)

	s := traceImages(t, bg, bg.Clone(), 3)
	if len(s.Instructions) != 0 || s.Cost != 0 {
		t.Errorf("identical images: instructions %v, cost %v; want none, 0", s.Instructions, s.Cost)
	}
}

// stripeImages returns a 14×12 pair whose foreground differs from the
// background on the two rings nearest the hole and on a bright stripe in
// column 5 above row 2.
func stripeImages(t testing.TB) (bg, fg *intImage.Buf) {
	t.Helper()
	const w, h, margin = 14, 12, 3
	r := newRing(w, h, mustHole(t, w, h, margin))

	bg = newImage(t, w, h, 10, 10, 10, 255)
	fg = newImage(t, w, h, 10, 10, 10, 255)
	for y := range h {
		for x := range w {
			p := image.Pt(x, y)
			switch d := r.holeDistance(p); {
			case x == 5 && y < 2:
				_ = fg.SetPixel(x, y, 250, 250, 250, 255)
			case !p.In(r.hole) && d >= 1 && d <= 2:
				_ = fg.SetPixel(x, y, 40, 40, 40, 255)
			}
		}
	}
	return bg, fg
}

func TestTrace_RoutesAroundStripe(t *testing.T) {
	bg, fg := stripeImages(t)
	s := traceImages(t, bg, fg, 3)

	want := []Instruction{
		vert(3, 1, 3), vert(2, 1, 3), vert(1, 1, 3),
		horiz(3, 1, 3), horiz(4, 1, 3), horiz(5, 1, 3), horiz(6, 1, 3),
		horiz(7, 1, 3), horiz(8, 1, 3), horiz(9, 1, 3), horiz(10, 1, 3),
		vert(3, 9, 11), vert(4, 9, 11), vert(5, 9, 11), vert(6, 9, 11),
		vert(7, 9, 11), vert(8, 9, 11), vert(9, 9, 11), vert(10, 9, 11),
		vert(11, 9, 11), vert(12, 9, 11),
		horiz(8, 11, 13), horiz(7, 11, 13), horiz(6, 11, 13), horiz(5, 11, 13),
		horiz(4, 11, 13), horiz(3, 11, 13), horiz(2, 11, 13), horiz(1, 11, 13),
		vert(10, 1, 3), vert(9, 1, 3), vert(8, 1, 3), vert(7, 1, 3),
		vert(6, 2, 3), vert(4, 2, 3),
	}
	if diff := cmp.Diff(want, s.Instructions); diff != "" {
		t.Errorf("Instructions mismatch (-want +got):\n%s", diff)
	}

	// Only the dip past the stripe crosses the costly rings.
	if s.Cost != 3*90 {
		t.Errorf("Cost = %v, want 270", s.Cost)
	}
	for _, in := range s.Instructions {
		if in.Axis == Vertical && in.Line == 5 && in.From < 2 {
			t.Errorf("instruction %v copies the stripe", in)
		}
	}
	if len(s.Path) != 44 {
		t.Errorf("len(Path) = %d, want 44", len(s.Path))
	}
}

func TestTrace_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	bg := randomImage(t, rng, 23, 19, intImage.FormatRGB8)
	fg := randomImage(t, rng, 23, 19, intImage.FormatRGB8)

	first := traceImages(t, bg, fg, 5)
	for range 3 {
		again := traceImages(t, bg, fg, 5)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("Trace not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestTrace_MinimalRing(t *testing.T) {
	f := fieldFromGrid(t, [][]float64{
		{9, 9, 9},
		{9, 0, 9},
		{9, 9, 9},
	}, image.Rect(1, 1, 2, 2))
	Accumulate(f)
	s := Trace(f)

	want := []image.Point{{1, 0}, {0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}
	if diff := cmp.Diff(want, s.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	if len(s.Instructions) != 0 {
		t.Errorf("Instructions = %v, want none", s.Instructions)
	}
}

// TestTrace_Properties checks, over many random fields, that the seam visits
// every band, that no pixel is covered twice, and that neither the hole nor
// the seam itself is covered by an instruction.
func TestTrace_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(41, 42))
	for i := range 300 {
		w, h := 3+rng.IntN(20), 3+rng.IntN(20)
		hole := randomHole(rng, w, h)

		f, err := NewField(w, h, hole)
		if err != nil {
			t.Fatal(err)
		}
		for y := range h {
			for x := range w {
				f.Set(x, y, float64(rng.IntN(4)))
			}
		}
		Accumulate(f)
		s := Trace(f)
		f.Release()

		r := newRing(w, h, hole)
		bands := make(map[Band]bool)
		onSeam := make(map[image.Point]bool)
		for _, p := range s.Path {
			b, ok := r.bandOf(p)
			if !ok {
				t.Fatalf("case %d: path cell %v outside the frame", i, p)
			}
			bands[b] = true
			onSeam[p] = true
		}
		if len(bands) != int(bandCount) {
			t.Fatalf("case %d (%dx%d, hole %v): seam visits %d bands", i, w, h, hole, len(bands))
		}

		covered := make(map[image.Point]bool)
		for _, in := range s.Instructions {
			if in.Len() == 0 {
				t.Fatalf("case %d: empty instruction %v", i, in)
			}
			for k := in.From; k < in.To; k++ {
				p := image.Pt(in.Line, k)
				if in.Axis == Horizontal {
					p = image.Pt(k, in.Line)
				}
				switch {
				case p.In(hole):
					t.Fatalf("case %d: %v covers hole cell %v", i, in, p)
				case onSeam[p]:
					t.Fatalf("case %d: %v covers seam cell %v", i, in, p)
				case covered[p]:
					t.Fatalf("case %d: %v covers %v twice", i, in, p)
				case !p.In(image.Rect(0, 0, w, h)):
					t.Fatalf("case %d: %v leaves the canvas at %v", i, in, p)
				}
				covered[p] = true
			}
		}
	}
}

func BenchmarkTrace(b *testing.B) {
	const w, h = 1024, 768
	rng := rand.New(rand.NewPCG(2, 2))
	f, err := NewField(w, h, image.Rect(64, 64, w-64, h-64))
	if err != nil {
		b.Fatal(err)
	}
	for y := range h {
		for x := range w {
			f.Set(x, y, float64(rng.IntN(765)))
		}
	}
	Accumulate(f)

	for b.Loop() {
		_ = Trace(f)
	}
}

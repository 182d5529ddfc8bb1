package image

import (
	"image"
	"testing"
)

func newFilled(t *testing.T, w, h int, v uint32) *Buf {
	t.Helper()
	buf, err := NewBuf(w, h, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	buf.Fill(v, v, v, 255)
	return buf
}

func TestCopyRow(t *testing.T) {
	dst := newFilled(t, 5, 2, 0)
	src := newFilled(t, 5, 2, 9)

	CopyRow(dst, src, 1, 1, 3)
	CopyRow(dst, src, 0, 4, 99) // clipped
	CopyRow(dst, src, 5, 0, 5)  // out of range row

	want := [2][5]uint32{
		{0, 0, 0, 0, 9},
		{0, 9, 9, 0, 0},
	}
	for y := range 2 {
		for x := range 5 {
			if got := dst.Sample(x, y, 0); got != want[y][x] {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestCopyColumn(t *testing.T) {
	dst := newFilled(t, 2, 5, 0)
	src := newFilled(t, 2, 5, 7)

	CopyColumn(dst, src, 1, 2, 4)
	CopyColumn(dst, src, 0, -3, 1)

	for y := range 5 {
		wantLeft := uint32(0)
		if y < 1 {
			wantLeft = 7
		}
		wantRight := uint32(0)
		if y >= 2 && y < 4 {
			wantRight = 7
		}
		if got := dst.Sample(0, y, 0); got != wantLeft {
			t.Errorf("(0,%d) = %d, want %d", y, got, wantLeft)
		}
		if got := dst.Sample(1, y, 0); got != wantRight {
			t.Errorf("(1,%d) = %d, want %d", y, got, wantRight)
		}
	}
}

func TestCopyRect(t *testing.T) {
	dst := newFilled(t, 6, 6, 0)
	src := newFilled(t, 6, 6, 3)
	r := image.Rect(2, 1, 4, 5)

	CopyRect(dst, src, r)

	for y := range 6 {
		for x := range 6 {
			want := uint32(0)
			if image.Pt(x, y).In(r) {
				want = 3
			}
			if got := dst.Sample(x, y, 0); got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStrokeRect(t *testing.T) {
	dst := newFilled(t, 6, 6, 0)
	r := image.Rect(1, 1, 5, 4)

	StrokeRect(dst, r, 255, 255, 0, 255)

	for y := range 6 {
		for x := range 6 {
			onEdge := image.Pt(x, y).In(r) && (x == 1 || x == 4 || y == 1 || y == 3)
			got := dst.Sample(x, y, 0) == 255
			if got != onEdge {
				t.Errorf("(%d,%d) painted = %v, want %v", x, y, got, onEdge)
			}
		}
	}
}

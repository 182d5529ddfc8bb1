package quilt

// Options controls a single composite.
type Options struct {
	// Margin is the frame width in pixels between the canvas edge and the
	// hole. Margins that leave no hole make Composite return the foreground.
	Margin int

	// Debug paints the seam and the hole outline into the result.
	Debug bool
}

// MarginFromBorder converts a border fraction into a margin in pixels.
// border is the share of half the image height given to the frame and is
// clamped to [0, 1].
//
// Example:
//
//	opts := quilt.Options{Margin: quilt.MarginFromBorder(0.25, fg.Height())}
func MarginFromBorder(border float64, height int) int {
	border = min(max(border, 0), 1)
	return int(border * float64(height/2))
}

// Debug overlay colours, as fractions of the format's maximum sample.
var (
	seamColor = [4]bool{true, false, true, true}
	holeColor = [4]bool{true, true, false, true}
)

// overlaySamples expands a colour mask into samples for a format whose
// maximum sample value is maxValue.
func overlaySamples(mask [4]bool, maxValue uint32) []uint32 {
	out := make([]uint32, len(mask))
	for i, on := range mask {
		if on {
			out[i] = maxValue
		}
	}
	return out
}

package image

import "testing"

func TestFormat_Info(t *testing.T) {
	tests := []struct {
		format   Format
		bpp      int
		channels int
		alpha    bool
		maxValue uint32
	}{
		{FormatGray8, 1, 1, false, 0xFF},
		{FormatGray16, 2, 1, false, 0xFFFF},
		{FormatRGB8, 3, 3, false, 0xFF},
		{FormatRGBA8, 4, 4, true, 0xFF},
		{FormatRGBA16, 8, 4, true, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
			if got := tt.format.MaxValue(); got != tt.maxValue {
				t.Errorf("MaxValue() = %#x, want %#x", got, tt.maxValue)
			}
			if got := tt.format.Is16Bit(); got != (tt.maxValue == 0xFFFF) {
				t.Errorf("Is16Bit() = %v", got)
			}
		})
	}
}

func TestFormat_Invalid(t *testing.T) {
	f := formatCount
	if f.IsValid() {
		t.Error("formatCount should not be valid")
	}
	if f.String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", f.String())
	}
	if f.Info() != (FormatInfo{}) {
		t.Errorf("Info() = %+v, want zero", f.Info())
	}
}

func TestFormat_Bytes(t *testing.T) {
	if got := FormatRGB8.RowBytes(10); got != 30 {
		t.Errorf("RowBytes(10) = %d, want 30", got)
	}
	if got := FormatRGBA16.ImageBytes(3, 2); got != 48 {
		t.Errorf("ImageBytes(3, 2) = %d, want 48", got)
	}
}

package core

import "testing"

func TestNewFramebuffer(t *testing.T) {
	f := NewFramebuffer(80, 24)

	if f.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", f.Width())
	}
	if f.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", f.Height())
	}
	if len(f.Pixels()) != 80*24 {
		t.Errorf("len(Pixels()) = %d, expected %d", len(f.Pixels()), 80*24)
	}
	if f.Count(ColorBlack) != 80*24 {
		t.Error("New framebuffer should be all black")
	}
}

func TestFramebufferSetGet(t *testing.T) {
	f := NewFramebuffer(10, 10)

	f.Set(5, 5, ColorWhite)
	if f.Get(5, 5) != ColorWhite {
		t.Errorf("Get(5, 5) = %v, expected %v", f.Get(5, 5), ColorWhite)
	}

	// Out of bounds should be silent
	f.Set(-1, 0, ColorGreen)
	f.Set(100, 0, ColorGreen)
	f.Set(0, -1, ColorGreen)
	f.Set(0, 100, ColorGreen)
	if f.Count(ColorGreen) != 0 {
		t.Error("Out of bounds Set should not write")
	}

	if f.Get(-1, 0) != ColorBlack {
		t.Error("Out of bounds Get should return black")
	}
}

func TestFramebufferRowMajor(t *testing.T) {
	f := NewFramebuffer(4, 3)
	f.Set(1, 2, ColorBlue)

	if f.Pixels()[2*4+1] != ColorBlue {
		t.Error("Set(1, 2) should write index y*width+x")
	}
}

func TestFramebufferClear(t *testing.T) {
	f := NewFramebuffer(10, 10)
	f.FillRect(0, 0, 10, 10, ColorWhite)

	f.Clear(ColorBlack)

	if f.Count(ColorBlack) != 100 {
		t.Errorf("After Clear, expected 100 black cells, got %d", f.Count(ColorBlack))
	}
}

func TestFramebufferFillRectClipping(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       int
	}{
		{"inside", 2, 2, 5, 5, 9},
		{"past right and bottom", 8, 8, 20, 20, 4},
		{"past left and top", -5, -5, 2, 2, 4},
		{"covers everything", -100, -100, 100, 100, 100},
		{"fully outside", 20, 20, 30, 30, 0},
		{"inverted", 5, 5, 2, 2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFramebuffer(10, 10)
			f.FillRect(tc.x0, tc.y0, tc.x1, tc.y1, ColorWhite)
			if got := f.Count(ColorWhite); got != tc.expected {
				t.Errorf("FillRect(%d, %d, %d, %d) painted %d cells, expected %d",
					tc.x0, tc.y0, tc.x1, tc.y1, got, tc.expected)
			}
		})
	}
}

func TestFramebufferDrawRect(t *testing.T) {
	f := NewFramebuffer(10, 10)
	f.DrawRect(NewRect(2.7, 2.2, 3, 3), ColorGreen)

	// Check filled area starts at the truncated position
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if f.Get(x, y) != ColorGreen {
				t.Errorf("DrawRect: expected green at (%d, %d), got %v", x, y, f.Get(x, y))
			}
		}
	}

	if f.Get(5, 5) != ColorBlack {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestFramebufferResize(t *testing.T) {
	f := NewFramebuffer(10, 10)
	f.Resize(8, 4)

	if f.Width() != 8 || f.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", f.Width(), f.Height())
	}
	if len(f.Pixels()) != 32 {
		t.Errorf("After resize, len(Pixels()) = %d, expected 32", len(f.Pixels()))
	}
}

func TestFramebufferImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, RGB(1, 2, 3))

	img := fb.Image()
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Image() size = %dx%d, expected 3x2", b.Dx(), b.Dy())
	}
	if got := img.RGBAAt(2, 1); got != RGB(1, 2, 3).RGBA() {
		t.Errorf("RGBAAt(2, 1) = %v, expected %v", got, RGB(1, 2, 3).RGBA())
	}
	if got := img.RGBAAt(0, 0); got.A != 0xFF {
		t.Errorf("Image() should be opaque, alpha = %d", got.A)
	}
}

package core

import "image"

// Framebuffer is a row-major software pixel buffer with the origin at the top-left.
// It decouples rendering from the display surface: bodies paint into it and
// the surface only ever sees the finished slice.
type Framebuffer struct {
	width  int
	height int
	pixels []Color
}

// NewFramebuffer creates a new buffer with the given dimensions, cleared to black.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width = Max(width, 0)
	height = Max(height, 0)
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Pixels returns the backing slice. It is valid until the next Resize.
func (f *Framebuffer) Pixels() []Color {
	return f.pixels
}

// Resize changes the dimensions and clears the buffer.
func (f *Framebuffer) Resize(width, height int) {
	width = Max(width, 0)
	height = Max(height, 0)
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.pixels = make([]Color, width*height)
}

// Clear fills the entire buffer with c.
func (f *Framebuffer) Clear(c Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, c Color) {
	if !f.InBounds(x, y) {
		return
	}
	f.pixels[y*f.width+x] = c
}

// Get returns the pixel at (x, y), or black for out-of-bounds coordinates.
func (f *Framebuffer) Get(x, y int) Color {
	if !f.InBounds(x, y) {
		return ColorBlack
	}
	return f.pixels[y*f.width+x]
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// FillRect fills the cells [x0, x1) x [y0, y1), clipped to the buffer.
func (f *Framebuffer) FillRect(x0, y0, x1, y1 int, c Color) {
	x0 = Clamp(x0, 0, f.width)
	x1 = Clamp(x1, 0, f.width)
	y0 = Clamp(y0, 0, f.height)
	y1 = Clamp(y1, 0, f.height)
	for y := y0; y < y1; y++ {
		row := f.pixels[y*f.width : (y+1)*f.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// DrawRect fills the pixel span of r.
func (f *Framebuffer) DrawRect(r Rect, c Color) {
	x0, y0, x1, y1 := r.Cells()
	f.FillRect(x0, y0, x1, y1, c)
}

// Count returns how many cells hold c. Used by tests and debug output.
func (f *Framebuffer) Count(c Color) int {
	n := 0
	for _, p := range f.pixels {
		if p == c {
			n++
		}
	}
	return n
}

// Image converts the buffer to an opaque RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetRGBA(x, y, f.pixels[y*f.width+x].RGBA())
		}
	}
	return img
}

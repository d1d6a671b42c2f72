package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/leapengine/internal/core"
)

// halfBlock shows two vertical pixels per cell: foreground on top,
// background below.
const halfBlock = "▀"

// cell is one terminal character worth of pixels.
type cell struct {
	top, bottom core.Color
}

// Renderer converts frames to styled strings, caching styles per color pair.
type Renderer struct {
	styles map[cell]lipgloss.Style
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cell]lipgloss.Style)}
}

// Render scales a width x height frame down to fit cols x rows terminal
// cells, keeping the aspect ratio, and renders it as truecolor half blocks.
// Adjacent cells with the same colors are styled as one run.
func (r *Renderer) Render(buf []core.Color, width, height, cols, rows int) string {
	grid := downsample(buf, width, height, cols, rows)

	var sb strings.Builder
	for y, line := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < len(line) {
			start := line[x]
			n := 0
			for x < len(line) && line[x] == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (r *Renderer) style(c cell) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
	r.styles[c] = s
	return s
}

// downsample picks the pixel at the center of each sampled area.
// The result has at most rows lines of at most cols cells.
func downsample(buf []core.Color, width, height, cols, rows int) [][]cell {
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 || len(buf) < width*height {
		return nil
	}

	// Source pixels per output pixel; each cell is one pixel wide and two tall.
	scale := math.Max(float64(width)/float64(cols), float64(height)/float64(2*rows))
	outCols := core.Clamp(int(float64(width)/scale), 1, cols)
	outRows := core.Clamp(int(math.Ceil(float64(height)/scale/2)), 1, rows)

	at := func(fx, fy float64) core.Color {
		x := core.Clamp(int(fx), 0, width-1)
		y := core.Clamp(int(fy), 0, height-1)
		return buf[y*width+x]
	}

	grid := make([][]cell, outRows)
	for cy := range outRows {
		line := make([]cell, outCols)
		for cx := range outCols {
			fx := (float64(cx) + 0.5) * scale
			line[cx] = cell{
				top:    at(fx, (float64(2*cy)+0.5)*scale),
				bottom: at(fx, (float64(2*cy)+1.5)*scale),
			}
		}
		grid[cy] = line
	}
	return grid
}

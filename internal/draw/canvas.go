// Package draw renders logical world coordinates onto the terminal using
// half-block characters for double vertical resolution.
package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Point is a position in logical canvas coordinates.
type Point struct {
	X, Y float64
}

// Block characters for two vertically stacked pixels per terminal cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a pixel buffer with 2x vertical resolution. Game code draws in
// logical coordinates; the canvas scales to the actual terminal size.
type Canvas struct {
	termWidth      int    // terminal columns
	termHeight     int    // terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // flat: [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64 // in sub-pixels
	scaleX        float64
	scaleY        float64

	// Offsets for centering when the terminal is larger than needed
	// (0-based columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	intersectionBuf []float64
}

// NewCanvas creates a canvas mapping the logical space onto the given
// terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions, keeping the logical
// coordinate space.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the centering offset. The canvas starts at terminal cell
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column centering offset.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row centering offset.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Set sets the pixel at logical coordinates.
func (c *Canvas) Set(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line in logical coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon in logical coordinates, filling the interior
// when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline centered at (cx, cy) with the given
// logical radius.
func (c *Canvas) DrawCircle(cx, cy, radius float64) {
	// Enough segments to look round at terminal resolution.
	segments := 12 + int(radius*4)
	step := 2 * math.Pi / float64(segments)
	prev := Point{X: cx + radius, Y: cy}
	for i := 1; i <= segments; i++ {
		a := float64(i) * step
		next := Point{X: cx + math.Cos(a)*radius, Y: cy + math.Sin(a)*radius}
		c.DrawLine(prev, next)
		prev = next
	}
}

// fillPolygon fills a polygon using a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		y := p.Y * c.scaleY
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(points)
		for i := 0; i < n; i++ {
			p1y := points[i].Y * c.scaleY
			p2y := points[(i+1)%n].Y * c.scaleY
			if (p1y <= scanY && p2y > scanY) || (p2y <= scanY && p1y > scanY) {
				t := (scanY - p1y) / (p2y - p1y)
				x := points[i].X*c.scaleX + t*(points[(i+1)%n].X-points[i].X)*c.scaleX
				intersections = append(intersections, x)
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize caps single writes for smooth flow over SSH; roughly one MTU.
const maxChunkSize = 1400

// Render writes the canvas to w using half-block characters. Empty cells
// are skipped, so the caller should clear the screen region first.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

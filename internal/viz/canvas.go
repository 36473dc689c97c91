package viz

import (
	"math"
	"strings"
)

const brailleBlank = 0x2800

// dot bit for sub-pixel (row, col) inside one 2x4 braille cell
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a character grid addressed in braille sub-pixels:
// Width*2 columns by Height*4 rows, origin top-left.
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for j := range row {
			row[j] = brailleBlank
		}
	}
}

// Set lights the sub-pixel at (x, y). Out-of-range points are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] |= brailleDots[y%4][x%2]
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Plot draws ys as a connected curve, stretching the samples across the
// full width and mapping [ymin, ymax] onto the full height. A non-finite
// sample breaks the curve.
func (c *Canvas) Plot(ys []float64, ymin, ymax float64) {
	if len(ys) == 0 || !(ymax > ymin) {
		return
	}
	pxW, pxH := c.Width*2-1, c.Height*4-1
	toPixel := func(i int, v float64) (int, int) {
		x := 0
		if len(ys) > 1 {
			x = int(math.Round(float64(i) * float64(pxW) / float64(len(ys)-1)))
		}
		y := int(math.Round((ymax - v) / (ymax - ymin) * float64(pxH)))
		return x, y
	}

	havePrev := false
	var px, py int
	for i, v := range ys {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			havePrev = false
			continue
		}
		x, y := toPixel(i, v)
		if havePrev {
			c.Line(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, havePrev = x, y, true
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Bounds returns the finite min and max over all series, padded when flat.
func Bounds(series ...[]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return -1, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

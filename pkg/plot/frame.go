package plot

import (
	"math"
	"strconv"
)

// Frame maps data coordinates onto a pixel rectangle. Pixel y grows
// downward.
type Frame struct {
	Data   Bounds
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewFrame pads the spec bounds by 5% and fits them into the rectangle.
func NewFrame(b Bounds, left, top, width, height float64) Frame {
	return Frame{Data: b.Padded(0.05), Left: left, Top: top, Width: width, Height: height}
}

func (f Frame) ToPixel(x, y float64) (float64, float64) {
	rx := (x - f.Data.MinX) / (f.Data.MaxX - f.Data.MinX)
	ry := (y - f.Data.MinY) / (f.Data.MaxY - f.Data.MinY)
	return f.Left + rx*f.Width, f.Top + f.Height - ry*f.Height
}

func (f Frame) Right() float64 {
	return f.Left + f.Width
}

func (f Frame) Bottom() float64 {
	return f.Top + f.Height
}

// Nearest returns the index of the point closest to (px, py) in pixel space
// within radius, or -1.
func (f Frame) Nearest(points []Point, px, py, radius float64) int {
	best := -1
	bestDist := radius * radius
	for i, p := range points {
		x, y := f.ToPixel(p.X, p.Y)
		d := (x-px)*(x-px) + (y-py)*(y-py)
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Ticks returns round tick values covering [min, max], about n of them. It
// returns nil when the step vanishes next to the magnitude of the range.
func Ticks(min, max float64, n int) []float64 {
	if n < 1 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min {
		return nil
	}
	step := niceStep((max - min) / float64(n))
	start := math.Ceil(min/step) * step
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(start) || start+step == start {
		return nil
	}
	k := int(math.Floor((max-start)/step + 1e-9))
	var out []float64
	for i := 0; i <= k && i <= 4*n; i++ {
		v := start + float64(i)*step
		// Snap to the step grid to keep labels like 0.30000000000000004 out.
		out = append(out, math.Round(v/step)*step)
	}
	return out
}

// FormatTick renders an axis tick value compactly.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch frac := raw / base; {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

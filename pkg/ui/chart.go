package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"seatbench/pkg/plot"
)

const (
	chartMarginLeft   = 64
	chartMarginRight  = 160
	chartMarginTop    = 36
	chartMarginBottom = 48

	pointRadius     = 5
	highlightRadius = 9
	hoverRadius     = 10
	mutedAlpha      = 77
)

// ScatterChart draws a plot.Spec and shows the hover text of the point under
// the mouse.
type ScatterChart struct {
	widget.BaseWidget
	spec   plot.Spec
	points []plot.Point
	hover  int
}

var (
	_ fyne.Widget       = (*ScatterChart)(nil)
	_ desktop.Hoverable = (*ScatterChart)(nil)
)

func NewScatterChart() *ScatterChart {
	c := &ScatterChart{hover: -1}
	c.ExtendBaseWidget(c)
	return c
}

// SetSpec replaces the plotted data and clears the hover state.
func (c *ScatterChart) SetSpec(spec plot.Spec) {
	c.spec = spec
	c.points = spec.Points()
	c.hover = -1
	c.Refresh()
}

func (c *ScatterChart) Spec() plot.Spec {
	return c.spec
}

// HoverText returns the tooltip currently shown, or "".
func (c *ScatterChart) HoverText() string {
	if c.hover < 0 || c.hover >= len(c.points) {
		return ""
	}
	return c.points[c.hover].HoverText
}

func (c *ScatterChart) frame(size fyne.Size) (plot.Frame, bool) {
	w := float64(size.Width) - chartMarginLeft - chartMarginRight
	h := float64(size.Height) - chartMarginTop - chartMarginBottom
	if w <= 0 || h <= 0 || len(c.points) == 0 {
		return plot.Frame{}, false
	}
	return plot.NewFrame(c.spec.Bounds, chartMarginLeft, chartMarginTop, w, h), true
}

func (c *ScatterChart) MouseIn(e *desktop.MouseEvent) {
	c.MouseMoved(e)
}

func (c *ScatterChart) MouseMoved(e *desktop.MouseEvent) {
	idx := -1
	if f, ok := c.frame(c.Size()); ok {
		idx = f.Nearest(c.points, float64(e.Position.X), float64(e.Position.Y), hoverRadius)
	}
	if idx != c.hover {
		c.hover = idx
		c.Refresh()
	}
}

func (c *ScatterChart) MouseOut() {
	if c.hover != -1 {
		c.hover = -1
		c.Refresh()
	}
}

func (c *ScatterChart) CreateRenderer() fyne.WidgetRenderer {
	r := &scatterRenderer{chart: c}
	r.rebuild(c.Size())
	return r
}

type scatterRenderer struct {
	chart   *ScatterChart
	objects []fyne.CanvasObject
}

func (r *scatterRenderer) Destroy() {}

func (r *scatterRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

func (r *scatterRenderer) MinSize() fyne.Size {
	return fyne.NewSize(chartMarginLeft+chartMarginRight+200, chartMarginTop+chartMarginBottom+160)
}

func (r *scatterRenderer) Refresh() {
	r.rebuild(r.chart.Size())
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *scatterRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// rebuild lays out every canvas object for the given size. Points are added
// muted first and highlighted last so the highlight stays on top.
func (r *scatterRenderer) rebuild(size fyne.Size) {
	c := r.chart
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	bg.Resize(size)
	objects := []fyne.CanvasObject{bg}

	f, ok := c.frame(size)
	if !ok {
		msg := canvas.NewText("No data to plot", theme.Color(theme.ColorNameDisabled))
		msg.Move(centered(msg, size.Width/2, size.Height/2))
		r.objects = append(objects, msg)
		return
	}

	fg := theme.Color(theme.ColorNameForeground)
	grid := theme.Color(theme.ColorNameSeparator)
	left, right := float32(f.Left), float32(f.Right())
	top, bottom := float32(f.Top), float32(f.Bottom())

	for _, t := range plot.Ticks(f.Data.MinX, f.Data.MaxX, 6) {
		x, _ := f.ToPixel(t, f.Data.MinY)
		objects = append(objects, newLine(float32(x), top, float32(x), bottom, grid, 1))
		label := newText(plot.FormatTick(t), fg, 11)
		label.Move(centered(label, float32(x), bottom+12))
		objects = append(objects, label)
	}
	for _, t := range plot.Ticks(f.Data.MinY, f.Data.MaxY, 6) {
		_, y := f.ToPixel(f.Data.MinX, t)
		objects = append(objects, newLine(left, float32(y), right, float32(y), grid, 1))
		label := newText(plot.FormatTick(t), fg, 11)
		label.Move(fyne.NewPos(left-8-label.MinSize().Width, float32(y)-label.MinSize().Height/2))
		objects = append(objects, label)
	}
	objects = append(objects,
		newLine(left, bottom, right, bottom, fg, 1),
		newLine(left, top, left, bottom, fg, 1),
	)

	title := newText(c.spec.Title, fg, 15)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Move(centered(title, (left+right)/2, top/2))
	xLabel := newText(c.spec.XLabel, fg, 12)
	xLabel.Move(centered(xLabel, (left+right)/2, bottom+32))
	yLabel := newText(c.spec.YLabel, fg, 12)
	yLabel.Move(fyne.NewPos(4, top-yLabel.MinSize().Height-2))
	objects = append(objects, title, xLabel, yLabel)

	for _, pass := range []plot.Emphasis{plot.EmphasisMuted, plot.EmphasisNormal, plot.EmphasisHighlight} {
		for _, p := range c.points {
			if p.Emphasis != pass {
				continue
			}
			x, y := f.ToPixel(p.X, p.Y)
			objects = append(objects, marker(p, float32(x), float32(y)))
		}
	}

	legendX := right + 16
	for i, item := range c.spec.Legend {
		row := top + float32(i)*20
		swatch := canvas.NewRectangle(item.Color.RGBA())
		swatch.Resize(fyne.NewSize(12, 12))
		swatch.Move(fyne.NewPos(legendX, row+2))
		name := newText(item.Project, fg, 12)
		name.Move(fyne.NewPos(legendX+18, row))
		objects = append(objects, swatch, name)
	}

	if c.hover >= 0 && c.hover < len(c.points) {
		p := c.points[c.hover]
		x, y := f.ToPixel(p.X, p.Y)
		objects = append(objects, tooltip(p.HoverText, float32(x), float32(y), size)...)
	}

	r.objects = objects
}

func marker(p plot.Point, x, y float32) fyne.CanvasObject {
	fill := p.Color.RGBA()
	radius := float32(pointRadius)
	circle := canvas.NewCircle(fill)
	switch p.Emphasis {
	case plot.EmphasisMuted:
		fill.A = mutedAlpha
		circle.FillColor = fill
	case plot.EmphasisHighlight:
		radius = highlightRadius
		circle.StrokeColor = color.Black
		circle.StrokeWidth = 2
	}
	circle.Resize(fyne.NewSize(2*radius, 2*radius))
	circle.Move(fyne.NewPos(x-radius, y-radius))
	return circle
}

func tooltip(text string, x, y float32, bounds fyne.Size) []fyne.CanvasObject {
	fg := theme.Color(theme.ColorNameForeground)
	var lines []*canvas.Text
	var w, h float32
	for _, s := range strings.Split(text, "\n") {
		t := newText(s, fg, 12)
		lines = append(lines, t)
		w = max(w, t.MinSize().Width)
		h += t.MinSize().Height
	}
	const pad = 6
	w, h = w+2*pad, h+2*pad

	left, top := x+12, y-h-8
	if left+w > bounds.Width {
		left = x - w - 12
	}
	if top < 0 {
		top = y + 12
	}

	box := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	box.StrokeColor = theme.Color(theme.ColorNameShadow)
	box.StrokeWidth = 1
	box.Resize(fyne.NewSize(w, h))
	box.Move(fyne.NewPos(left, top))

	out := []fyne.CanvasObject{box}
	rowY := top + pad
	for _, t := range lines {
		t.Move(fyne.NewPos(left+pad, rowY))
		rowY += t.MinSize().Height
		out = append(out, t)
	}
	return out
}

func newText(s string, c color.Color, size float32) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextSize = size
	return t
}

func newLine(x1, y1, x2, y2 float32, c color.Color, width float32) *canvas.Line {
	l := canvas.NewLine(c)
	l.StrokeWidth = width
	l.Position1 = fyne.NewPos(x1, y1)
	l.Position2 = fyne.NewPos(x2, y2)
	return l
}

// centered returns the position that centers t on (x, y).
func centered(t *canvas.Text, x, y float32) fyne.Position {
	s := t.MinSize()
	return fyne.NewPos(x-s.Width/2, y-s.Height/2)
}

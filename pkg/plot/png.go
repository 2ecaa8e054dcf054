package plot

import (
	"errors"
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	minPNGWidth  = 320
	minPNGHeight = 240

	pointDotWidth     = 4
	highlightDotWidth = 8
	ringDotWidth      = 10
	mutedAlpha        = 77
	legendSwatch      = 5
)

var errNothingToPlot = errors.New("plot has no points")

// SavePNG renders the spec into a PNG file.
func SavePNG(path string, spec Spec, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, spec, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePNG draws one dot series per legend project, the highlight last
// over a dark ring, and a legend in the top left corner of the plot area.
func WritePNG(w io.Writer, spec Spec, width, height int) error {
	if width < minPNGWidth || height < minPNGHeight {
		return fmt.Errorf("image size %dx%d is too small", width, height)
	}
	ch, err := buildChart(spec)
	if err != nil {
		return err
	}
	ch.Width = width
	ch.Height = height
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

func buildChart(spec Spec) (chart.Chart, error) {
	byProject := make(map[string][]Point)
	var highlights []Point
	for _, p := range spec.Points() {
		if p.Highlighted() {
			highlights = append(highlights, p)
			continue
		}
		byProject[p.Project] = append(byProject[p.Project], p)
	}

	var series []chart.Series
	for _, it := range spec.Legend {
		points := byProject[it.Project]
		if len(points) == 0 {
			continue
		}
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i], ys[i] = p.X, p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    it.Project,
			XValues: xs,
			YValues: ys,
			Style:   dotStyle(dotColor(points[0]), pointDotWidth),
		})
	}
	for _, p := range highlights {
		series = append(series,
			chart.ContinuousSeries{
				XValues: []float64{p.X},
				YValues: []float64{p.Y},
				Style:   dotStyle(drawing.ColorBlack, ringDotWidth),
			},
			chart.ContinuousSeries{
				Name:    p.Project,
				XValues: []float64{p.X},
				YValues: []float64{p.Y},
				Style:   dotStyle(dotColor(p), highlightDotWidth),
			})
	}
	if len(series) == 0 {
		return chart.Chart{}, errNothingToPlot
	}

	b := spec.Bounds.Padded(0.05)
	ch := chart.Chart{
		Title: spec.Title,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			Range:          &chart.ContinuousRange{Min: b.MinX, Max: b.MaxX},
			ValueFormatter: tickFormatter,
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			Range:          &chart.ContinuousRange{Min: b.MinY, Max: b.MaxY},
			ValueFormatter: tickFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{legend(spec.Legend)}
	return ch, nil
}

func dotStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{StrokeWidth: chart.Disabled, DotWidth: width, DotColor: col}
}

func dotColor(p Point) drawing.Color {
	c := drawing.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 255}
	if p.Emphasis == EmphasisMuted {
		c.A = mutedAlpha
	}
	return c
}

// tickFormatter labels the ticks go-chart generates. Explicit chart.Tick
// values would reset the axis range to the outer ticks.
func tickFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return FormatTick(f)
	}
	return fmt.Sprint(v)
}

// legend lists every project with a dot swatch in its color.
func legend(items []LegendItem) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(items) == 0 {
			return
		}
		text := chart.Style{FontColor: chart.DefaultTextColor, FontSize: 8}.InheritFrom(defaults)
		text.WriteTextOptionsToRenderer(r)

		lineHeight, textWidth := 0, 0
		for _, it := range items {
			tb := r.MeasureText(it.Project)
			lineHeight = max(lineHeight, tb.Height())
			textWidth = max(textWidth, tb.Width())
		}
		lineHeight += 6

		pad := 6
		box := chart.Box{
			Left: cb.Left + 8,
			Top:  cb.Top + 8,
		}
		box.Right = box.Left + pad*3 + legendSwatch*2 + textWidth
		box.Bottom = box.Top + pad*2 + lineHeight*len(items)
		chart.Draw.Box(r, box, chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: 1,
		})

		for i, it := range items {
			y := box.Top + pad + lineHeight*i + lineHeight/2
			col := drawing.Color{R: it.Color.R, G: it.Color.G, B: it.Color.B, A: 255}
			r.SetFillColor(col)
			r.SetStrokeColor(col)
			r.SetStrokeWidth(1)
			r.Circle(legendSwatch, box.Left+pad+legendSwatch, y)
			r.FillStroke()

			text.WriteTextOptionsToRenderer(r)
			tb := r.MeasureText(it.Project)
			r.Text(it.Project, box.Left+pad*2+legendSwatch*2, y+tb.Height()/2)
		}
	}
}

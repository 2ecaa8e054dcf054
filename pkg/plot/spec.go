// Package plot builds a declarative scatter chart description of a seat
// dataset and renders it to PNG or JSON. Drawing to screen is left to the UI.
package plot

import (
	"errors"
	"fmt"
	"strconv"

	"seatbench/pkg/core"
)

const (
	Title  = "Vehicle project seat performance vs. weight"
	XLabel = "Seat modal performance"
	YLabel = "Seat weight"

	SeriesName = "projects"
	ModeMarker = "markers"
)

var ErrEmptyDataset = errors.New("dataset is empty, load data first")

// Emphasis is the visual weight of a point.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisHighlight
	EmphasisMuted
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisHighlight:
		return "highlight"
	case EmphasisMuted:
		return "muted"
	default:
		return "normal"
	}
}

func (e Emphasis) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Emphasis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*e = EmphasisNormal
	case "highlight":
		*e = EmphasisHighlight
	case "muted":
		*e = EmphasisMuted
	default:
		return fmt.Errorf("unknown emphasis %q", text)
	}
	return nil
}

// Point is one marker.
type Point struct {
	EntryID   string   `json:"entry_id"`
	Project   string   `json:"project"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Color     Color    `json:"-"`
	ColorCSS  string   `json:"color"`
	HoverText string   `json:"hover_text"`
	Emphasis  Emphasis `json:"emphasis"`
}

func (p Point) Highlighted() bool {
	return p.Emphasis == EmphasisHighlight
}

type Series struct {
	Name   string  `json:"name"`
	Mode   string  `json:"mode"`
	Points []Point `json:"points"`
}

type LegendItem struct {
	Project  string `json:"project"`
	Color    Color  `json:"-"`
	ColorCSS string `json:"color"`
}

// Bounds is the data range covered by the points.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Padded widens the bounds by frac of each span. A zero span is widened by
// one unit so points never sit on a degenerate axis.
func (b Bounds) Padded(frac float64) Bounds {
	dx := b.MaxX - b.MinX
	if dx == 0 {
		dx = 1
	}
	dy := b.MaxY - b.MinY
	if dy == 0 {
		dy = 1
	}
	return Bounds{
		MinX: b.MinX - dx*frac,
		MaxX: b.MaxX + dx*frac,
		MinY: b.MinY - dy*frac,
		MaxY: b.MaxY + dy*frac,
	}
}

// Spec is a complete scatter chart description.
type Spec struct {
	Title        string       `json:"title"`
	XLabel       string       `json:"x_label"`
	YLabel       string       `json:"y_label"`
	Series       []Series     `json:"series"`
	Legend       []LegendItem `json:"legend"`
	Bounds       Bounds       `json:"bounds"`
	HasHighlight bool         `json:"has_highlight"`
}

// Points returns the points of every series in order.
func (s Spec) Points() []Point {
	var out []Point
	for _, series := range s.Series {
		out = append(out, series.Points...)
	}
	return out
}

// HighlightCount returns how many points carry highlight emphasis.
func (s Spec) HighlightCount() int {
	n := 0
	for _, p := range s.Points() {
		if p.Highlighted() {
			n++
		}
	}
	return n
}

// HoverText formats the label shown when hovering a point.
func HoverText(r core.Record) string {
	return fmt.Sprintf("%s\n%s: %s\n%s: %s",
		r.Project,
		XLabel, formatValue(r.Performance),
		YLabel, formatValue(r.Weight),
	)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package plot

import (
	"math"

	"seatbench/pkg/core"
)

// Render builds the scatter spec for ds. Colors are assigned per distinct
// project by colors; a nil assigner falls back to fresh random colors. When
// hl is set, the matching point is highlighted and every other point muted.
func Render(ds core.Dataset, hl *core.Highlight, colors ColorAssigner) (Spec, error) {
	if ds.Empty() {
		return Spec{}, ErrEmptyDataset
	}
	if colors == nil {
		colors = NewRandomColors(nil)
	}

	projects := ds.Projects()
	palette := colors.Assign(projects)

	legend := make([]LegendItem, 0, len(projects))
	for _, p := range projects {
		c := palette[p]
		legend = append(legend, LegendItem{Project: p, Color: c, ColorCSS: c.String()})
	}

	bounds := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	points := make([]Point, 0, len(ds))
	for _, e := range ds {
		c := palette[e.Project]
		pt := Point{
			EntryID:   e.ID,
			Project:   e.Project,
			X:         e.Performance,
			Y:         e.Weight,
			Color:     c,
			ColorCSS:  c.String(),
			HoverText: HoverText(e.Record),
		}
		if hl != nil {
			if hl.Matches(e) {
				pt.Emphasis = EmphasisHighlight
			} else {
				pt.Emphasis = EmphasisMuted
			}
		}
		points = append(points, pt)

		bounds.MinX = math.Min(bounds.MinX, pt.X)
		bounds.MaxX = math.Max(bounds.MaxX, pt.X)
		bounds.MinY = math.Min(bounds.MinY, pt.Y)
		bounds.MaxY = math.Max(bounds.MaxY, pt.Y)
	}

	return Spec{
		Title:        Title,
		XLabel:       XLabel,
		YLabel:       YLabel,
		Series:       []Series{{Name: SeriesName, Mode: ModeMarker, Points: points}},
		Legend:       legend,
		Bounds:       bounds,
		HasHighlight: hl != nil,
	}, nil
}

package ui

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatbench/pkg/config"
	"seatbench/pkg/entry"
	"seatbench/pkg/plot"
	"seatbench/pkg/session"
)

func sampleSpec(t *testing.T) plot.Spec {
	t.Helper()
	s := session.New(session.WithColors(plot.StableColors{}))
	for _, f := range []entry.Form{
		{Project: "A", Performance: 25.5, Weight: 18.2},
		{Project: "B", Performance: 27, Weight: 19.75},
		{Project: "C", Performance: 30, Weight: 21},
	} {
		_, _, err := s.AddEntry(f)
		require.NoError(t, err)
	}
	spec, err := s.Render()
	require.NoError(t, err)
	return spec
}

func TestScatterChart_HoverShowsPointText(t *testing.T) {
	test.NewTempApp(t)

	c := NewScatterChart()
	c.Resize(fyne.NewSize(900, 600))
	spec := sampleSpec(t)
	c.SetSpec(spec)

	r := test.WidgetRenderer(c)
	assert.NotEmpty(t, r.Objects())

	f, ok := c.frame(c.Size())
	require.True(t, ok)
	last := spec.Points()[2]
	x, y := f.ToPixel(last.X, last.Y)

	c.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(float32(x), float32(y))}})
	assert.Equal(t, "C\nSeat modal performance: 30\nSeat weight: 21", c.HoverText())

	c.MouseOut()
	assert.Empty(t, c.HoverText())
}

func TestScatterChart_EmptySpec(t *testing.T) {
	test.NewTempApp(t)

	c := NewScatterChart()
	c.Resize(fyne.NewSize(600, 400))
	_, ok := c.frame(c.Size())
	assert.False(t, ok)
	assert.Len(t, test.WidgetRenderer(c).Objects(), 2)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validatorFor(entry.StepPerformance)("12.5"))
	assert.Error(t, validatorFor(entry.StepWeight)("heavy"))
	assert.NoError(t, validatorFor(entry.StepProject)("ProjA"))
	assert.ErrorIs(t, validatorFor(entry.StepProject)("  "), errProjectRequired)
}

func TestIconPNG(t *testing.T) {
	data, err := IconPNG()
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, iconSize, img.Bounds().Dx())
	assert.Equal(t, iconSize, img.Bounds().Dy())
}

func TestSeatBenchApp_Actions(t *testing.T) {
	a := test.NewTempApp(t)
	s := session.New()
	sa := NewSeatBenchApp(a, s, config.Default(), zerolog.Nop())

	dir := t.TempDir()
	path := filepath.Join(dir, "seats.csv")
	require.NoError(t, os.WriteFile(path, []byte("project,performance,weight\nA,25.5,18.2\nB,27,19.75\n"), 0o644))

	sa.showPlot()
	assert.Nil(t, sa.plotWindow)

	sa.rememberDir(path)
	sa.loadPath(path)
	assert.Len(t, s.Dataset(), 2)
	assert.Equal(t, dir, sa.lastDir())

	sa.showPlot()
	require.NotNil(t, sa.plotWindow)
	assert.Len(t, sa.plotWindow.Chart.Spec().Points(), 2)

	s.CollectEntry(entry.Values("C", "30", "21"), sa.entryDone)
	assert.Equal(t, 1, sa.plotWindow.Chart.Spec().HighlightCount())

	sa.showStats()
	require.NotNil(t, sa.statsWindow)
	assert.Equal(t, s.Describe().String(), sa.statsWindow.Report.Text)
	assert.Equal(t, "Records: 3", sa.statsWindow.Summary.Text)

	out := filepath.Join(dir, "out.csv")
	sa.savePath(out)
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestScatterChart_LargeMagnitudeWeights(t *testing.T) {
	test.NewTempApp(t)

	s := session.New(session.WithColors(plot.StableColors{}))
	for _, f := range []entry.Form{
		{Project: "A", Performance: 1, Weight: 1e16},
		{Project: "A", Performance: 2, Weight: 1e16 + 2},
	} {
		_, _, err := s.AddEntry(f)
		require.NoError(t, err)
	}
	spec, err := s.Render()
	require.NoError(t, err)

	c := NewScatterChart()
	c.Resize(fyne.NewSize(600, 400))
	c.SetSpec(spec)
	assert.NotEmpty(t, test.WidgetRenderer(c).Objects())
}

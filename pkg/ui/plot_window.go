package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"seatbench/pkg/plot"
)

// PlotWindow hosts the scatter chart and its export toolbar. One instance is
// reused for every render while it stays open.
type PlotWindow struct {
	Window fyne.Window
	Chart  *ScatterChart
}

func (sa *SeatBenchApp) newPlotWindow() *PlotWindow {
	w := sa.FyneApp.NewWindow(plot.Title)
	w.Resize(fyne.NewSize(float32(sa.cfg.PlotWidth), float32(sa.cfg.PlotHeight)))

	pw := &PlotWindow{Window: w, Chart: NewScatterChart()}

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() { sa.exportPNG(pw) }),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { sa.exportJSON(pw) }),
	)
	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, pw.Chart))
	w.SetOnClosed(func() {
		if sa.plotWindow == pw {
			sa.plotWindow = nil
		}
	})
	return pw
}

// presentSpec shows spec in the plot window, opening it if needed.
func (sa *SeatBenchApp) presentSpec(spec plot.Spec) {
	if sa.plotWindow == nil {
		sa.plotWindow = sa.newPlotWindow()
	}
	sa.plotWindow.Chart.SetSpec(spec)
	sa.plotWindow.Window.Show()
}

func (sa *SeatBenchApp) exportPNG(pw *PlotWindow) {
	spec := pw.Chart.Spec()
	sa.saveFile(pw.Window, extPNG, "seats.png", func(path string) {
		if err := plot.SavePNG(path, spec, sa.cfg.PlotWidth, sa.cfg.PlotHeight); err != nil {
			sa.log.Error().Err(err).Str("path", path).Msg("png export failed")
			dialog.ShowError(err, pw.Window)
			return
		}
		sa.log.Info().Str("path", path).Msg("png exported")
		dialog.ShowInformation("Information", "Chart exported.", pw.Window)
	})
}

func (sa *SeatBenchApp) exportJSON(pw *PlotWindow) {
	spec := pw.Chart.Spec()
	sa.saveFile(pw.Window, extJSON, "seats.json", func(path string) {
		if err := plot.SaveJSON(path, spec); err != nil {
			sa.log.Error().Err(err).Str("path", path).Msg("json export failed")
			dialog.ShowError(err, pw.Window)
			return
		}
		sa.log.Info().Str("path", path).Msg("json exported")
		dialog.ShowInformation("Information", "Chart exported.", pw.Window)
	})
}

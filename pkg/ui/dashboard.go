package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"seatbench/pkg/core"
)

// StatsWindow shows the descriptive statistics report.
type StatsWindow struct {
	Window  fyne.Window
	Summary *widget.Label
	Report  *widget.Label
}

func NewStatsWindow(a fyne.App) *StatsWindow {
	w := a.NewWindow("Data statistics")
	w.Resize(fyne.NewSize(560, 340))

	summary := widget.NewLabel("")
	report := widget.NewLabel("")
	report.TextStyle = fyne.TextStyle{Monospace: true}

	closeButton := widget.NewButton("Close", func() { w.Close() })

	w.SetContent(container.NewBorder(
		summary,
		container.NewHBox(layout.NewSpacer(), closeButton),
		nil, nil,
		container.NewScroll(report),
	))

	return &StatsWindow{Window: w, Summary: summary, Report: report}
}

func (s *StatsWindow) Show() {
	s.Window.Show()
}

func (s *StatsWindow) Update(r core.Report) {
	count := 0
	if len(r.Columns) > 0 {
		count = r.Columns[0].Count
	}
	s.Summary.SetText(fmt.Sprintf("Records: %d", count))
	s.Report.SetText(r.String())
}

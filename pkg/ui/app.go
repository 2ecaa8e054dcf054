package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"seatbench/pkg/config"
	"seatbench/pkg/logging"
	"seatbench/pkg/session"
)

const appID = "com.github.seatbench"

type SeatBenchApp struct {
	FyneApp fyne.App
	Window  fyne.Window

	session *session.Session
	cfg     config.Config
	log     zerolog.Logger

	plotWindow  *PlotWindow
	statsWindow *StatsWindow
}

// Launch builds the desktop app and blocks until the main window closes.
func Launch(cfg config.Config, s *session.Session, log zerolog.Logger) error {
	sa := NewSeatBenchApp(app.NewWithID(appID), s, cfg, log)
	sa.Run()
	return nil
}

func NewSeatBenchApp(a fyne.App, s *session.Session, cfg config.Config, log zerolog.Logger) *SeatBenchApp {
	w := a.NewWindow("Seat Benchmark")
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	sa := &SeatBenchApp{
		FyneApp: a,
		Window:  w,
		session: s,
		cfg:     cfg,
		log:     logging.Component(log, "ui"),
	}

	if icon, err := IconResource(); err != nil {
		sa.log.Warn().Err(err).Msg("icon generation failed")
	} else {
		w.SetIcon(icon)
	}

	sa.setupUI()
	return sa
}

func (sa *SeatBenchApp) Run() {
	sa.Window.SetMaster()
	sa.Window.ShowAndRun()
}

func (sa *SeatBenchApp) setupUI() {
	buttons := container.NewVBox(
		widget.NewButtonWithIcon("Load data", theme.FolderOpenIcon(), sa.loadData),
		widget.NewButtonWithIcon("Plot chart", theme.VisibilityIcon(), sa.showPlot),
		widget.NewButtonWithIcon("Add entry", theme.ContentAddIcon(), sa.addEntry),
		widget.NewButtonWithIcon("Save changes", theme.DocumentSaveIcon(), sa.saveData),
		widget.NewButtonWithIcon("Show statistics", theme.InfoIcon(), sa.showStats),
	)
	sa.Window.SetContent(container.NewPadded(container.NewCenter(buttons)))
}

func (sa *SeatBenchApp) loadData() {
	sa.openFile(sa.Window, extCSV, sa.loadPath)
}

func (sa *SeatBenchApp) loadPath(path string) {
	n, err := sa.session.Load(path)
	sa.notify(session.LoadNotice(n, err))
	if err == nil && sa.plotWindow != nil {
		// Keep an open chart in step with the new dataset.
		if spec, err := sa.session.Render(); err == nil {
			sa.plotWindow.Chart.SetSpec(spec)
		}
	}
}

func (sa *SeatBenchApp) showPlot() {
	spec, err := sa.session.Render()
	if err != nil {
		sa.notify(session.RenderNotice(err))
		return
	}
	sa.presentSpec(spec)
}

func (sa *SeatBenchApp) addEntry() {
	sa.session.CollectEntry(NewDialogPrompter(sa.Window), sa.entryDone)
}

func (sa *SeatBenchApp) entryDone(res session.AddResult) {
	if !res.Applied() {
		if res.Err != nil {
			dialog.ShowError(res.Err, sa.Window)
		}
		return
	}
	sa.presentSpec(res.Spec)
}

func (sa *SeatBenchApp) saveData() {
	sa.saveFile(sa.Window, extCSV, defaultDataFile, sa.savePath)
}

func (sa *SeatBenchApp) savePath(path string) {
	sa.notify(session.SaveNotice(sa.session.Save(path)))
}

func (sa *SeatBenchApp) showStats() {
	if sa.statsWindow == nil {
		sw := NewStatsWindow(sa.FyneApp)
		sw.Window.SetOnClosed(func() { sa.statsWindow = nil })
		sa.statsWindow = sw
	}
	sa.statsWindow.Update(sa.session.Describe())
	sa.statsWindow.Show()
}

func (sa *SeatBenchApp) notify(n session.Notice) {
	switch n.Level {
	case session.LevelError:
		dialog.ShowError(errors.New(n.Message), sa.Window)
	default:
		dialog.ShowInformation(n.Title, n.Message, sa.Window)
	}
}

package ui

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const (
	prefLastDirKey = "lastDir"

	extCSV  = ".csv"
	extPNG  = ".png"
	extJSON = ".json"

	defaultDataFile = "seats.csv"
)

func (sa *SeatBenchApp) lastDir() string {
	return strings.TrimSpace(sa.FyneApp.Preferences().StringWithFallback(prefLastDirKey, ""))
}

// rememberDir stores the directory of path as the starting point for the
// next file dialog.
func (sa *SeatBenchApp) rememberDir(path string) {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return
	}
	sa.FyneApp.Preferences().SetString(prefLastDirKey, dir)
}

// lastDirLocation is nil when no directory was remembered or it no longer
// exists.
func (sa *SeatBenchApp) lastDirLocation() fyne.ListableURI {
	dir := sa.lastDir()
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	loc, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return nil
	}
	return loc
}

// openFile asks for an existing file with the given extension and passes its
// local path to onPath.
func (sa *SeatBenchApp) openFile(parent fyne.Window, ext string, onPath func(string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		sa.rememberDir(path)
		onPath(path)
	}, parent)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	if loc := sa.lastDirLocation(); loc != nil {
		d.SetLocation(loc)
	}
	d.Show()
}

// saveFile asks for a destination path. The dialog creates the file; it is
// closed before onPath runs so the caller can rewrite it.
func (sa *SeatBenchApp) saveFile(parent fyne.Window, ext, name string, onPath func(string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if writer == nil {
			return // cancelled
		}
		path := writer.URI().Path()
		writer.Close()
		sa.rememberDir(path)
		onPath(path)
	}, parent)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.SetFileName(name)
	if loc := sa.lastDirLocation(); loc != nil {
		d.SetLocation(loc)
	}
	d.Show()
}

package session

import (
	"errors"
	"fmt"

	"seatbench/pkg/core"
	"seatbench/pkg/plot"
)

// Level is the severity of a user notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Notice is the single message shown to the user after an action.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

func LoadNotice(n int, err error) Notice {
	switch {
	case err == nil:
		return Notice{Level: LevelInfo, Title: "Information", Message: fmt.Sprintf("Data loaded (%d records).", n)}
	case errors.Is(err, core.ErrEmptyInput):
		return Notice{Level: LevelError, Title: "Error", Message: "The file is empty or has no data rows."}
	default:
		return Notice{Level: LevelError, Title: "Error", Message: fmt.Sprintf("Error reading data: %v", err)}
	}
}

func SaveNotice(err error) Notice {
	if err == nil {
		return Notice{Level: LevelInfo, Title: "Information", Message: "Data saved."}
	}
	return Notice{Level: LevelError, Title: "Error", Message: fmt.Sprintf("Error saving data: %v", err)}
}

// RenderNotice is only meaningful for a failed render.
func RenderNotice(err error) Notice {
	if errors.Is(err, plot.ErrEmptyDataset) {
		return Notice{Level: LevelWarning, Title: "Warning", Message: "Please load data first."}
	}
	return Notice{Level: LevelError, Title: "Error", Message: fmt.Sprintf("Error plotting data: %v", err)}
}

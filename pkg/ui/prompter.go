package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"seatbench/pkg/entry"
)

var errProjectRequired = errors.New("project name is required")

// DialogPrompter asks each entry step in its own form dialog. Dismissing a
// dialog cancels the step.
type DialogPrompter struct {
	parent fyne.Window
}

var _ entry.Prompter = (*DialogPrompter)(nil)

func NewDialogPrompter(parent fyne.Window) *DialogPrompter {
	return &DialogPrompter{parent: parent}
}

func (dp *DialogPrompter) Prompt(step entry.Step, reply func(string, bool)) {
	input := widget.NewEntry()
	input.Validator = validatorFor(step)

	d := dialog.NewForm("Add entry", "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(step.Label(), input)},
		func(ok bool) { reply(input.Text, ok) },
		dp.parent)
	input.OnSubmitted = func(string) { d.Submit() }
	d.Resize(fyne.NewSize(380, 180))
	d.Show()
	dp.parent.Canvas().Focus(input)
}

func validatorFor(step entry.Step) fyne.StringValidator {
	if step.Numeric() {
		return validateNumber
	}
	return validateProject
}

func validateNumber(s string) error {
	_, err := entry.ParseNumber(s)
	return err
}

func validateProject(s string) error {
	if strings.TrimSpace(s) == "" {
		return errProjectRequired
	}
	return nil
}

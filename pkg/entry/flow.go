// Package entry collects a new seat record through three sequential prompts.
// Any step can be cancelled, which abandons the whole entry.
package entry

import (
	"fmt"
	"strconv"
	"strings"

	"seatbench/pkg/core"
)

// Step identifies one prompt in the sequence.
type Step int

const (
	StepProject Step = iota
	StepPerformance
	StepWeight
)

// Steps lists the prompts in the order they are asked.
var Steps = []Step{StepProject, StepPerformance, StepWeight}

func (s Step) String() string {
	switch s {
	case StepProject:
		return "project"
	case StepPerformance:
		return "performance"
	case StepWeight:
		return "weight"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Label is the question shown to the user.
func (s Step) Label() string {
	switch s {
	case StepProject:
		return "Enter the vehicle project name:"
	case StepPerformance:
		return "Enter the seat modal performance:"
	case StepWeight:
		return "Enter the seat weight:"
	default:
		return ""
	}
}

// Numeric reports whether the step expects a float.
func (s Step) Numeric() bool {
	return s == StepPerformance || s == StepWeight
}

// Form is a fully collected entry.
type Form struct {
	Project     string
	Performance float64
	Weight      float64
}

func (f Form) Record() core.Record {
	return core.Record{Project: f.Project, Performance: f.Performance, Weight: f.Weight}
}

// Result is either a complete form or the step at which collection stopped.
// Err is set when the value given at CancelledAt could not be used.
type Result struct {
	Form        Form
	Complete    bool
	CancelledAt Step
	Err         error
}

// Prompter asks for the value of one step and calls reply exactly once.
// ok is false when the user dismissed the prompt.
type Prompter interface {
	Prompt(step Step, reply func(value string, ok bool))
}

// Collect runs the steps in order and calls done exactly once. Prompters
// that reply synchronously complete before Collect returns.
func Collect(p Prompter, done func(Result)) {
	var form Form
	var ask func(i int)
	ask = func(i int) {
		if i == len(Steps) {
			done(Result{Form: form, Complete: true})
			return
		}
		step := Steps[i]
		p.Prompt(step, func(value string, ok bool) {
			if !ok {
				done(Result{CancelledAt: step})
				return
			}
			if err := apply(&form, step, value); err != nil {
				done(Result{CancelledAt: step, Err: err})
				return
			}
			if step == StepProject && form.Project == "" {
				done(Result{CancelledAt: step})
				return
			}
			ask(i + 1)
		})
	}
	ask(0)
}

func apply(form *Form, step Step, value string) error {
	switch step {
	case StepProject:
		form.Project = strings.TrimSpace(value)
	case StepPerformance:
		v, err := ParseNumber(value)
		if err != nil {
			return err
		}
		form.Performance = v
	case StepWeight:
		v, err := ParseNumber(value)
		if err != nil {
			return err
		}
		form.Weight = v
	}
	return nil
}

// ParseNumber coerces user input to a float.
func ParseNumber(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", strings.TrimSpace(value))
	}
	return v, nil
}

// Package session owns the dataset for one user session and exposes the
// user-facing actions: load, render, add entry, save and describe.
package session

import (
	"errors"

	"github.com/rs/zerolog"

	"seatbench/pkg/core"
	"seatbench/pkg/entry"
	"seatbench/pkg/logging"
	"seatbench/pkg/plot"
	"seatbench/pkg/telemetry"
)

// Session is driven from a single interaction goroutine and is not safe for
// concurrent use.
type Session struct {
	store   *core.Store
	colors  plot.ColorAssigner
	log     zerolog.Logger
	metrics *telemetry.Recorder
}

type Option func(*Session)

func WithColors(c plot.ColorAssigner) Option {
	return func(s *Session) {
		if c != nil {
			s.colors = c
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = logging.Component(l, "session")
	}
}

func WithRecorder(r *telemetry.Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.metrics = r
		}
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		store:   core.NewStore(),
		colors:  plot.NewRandomColors(nil),
		log:     zerolog.Nop(),
		metrics: telemetry.NewRecorder(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the dataset with the contents of path and clears the
// highlight. On failure the current dataset is kept.
func (s *Session) Load(path string) (int, error) {
	ds, err := core.LoadDataset(path)
	if err != nil {
		if errors.Is(err, core.ErrEmptyInput) {
			s.metrics.Load(telemetry.ResultEmpty)
		} else {
			s.metrics.Load(telemetry.ResultError)
		}
		s.log.Warn().Err(err).Str("path", path).Msg("load failed")
		return 0, err
	}

	s.store.Replace(ds)
	s.metrics.Load(telemetry.ResultOK)
	s.metrics.Records(s.store.Len())
	s.log.Info().Str("path", path).Int("records", ds.Len()).Msg("dataset loaded")
	return ds.Len(), nil
}

// Render builds the plot for the current dataset and highlight. It returns
// plot.ErrEmptyDataset when there is nothing to plot.
func (s *Session) Render() (plot.Spec, error) {
	ds := s.store.Dataset()
	var hl *core.Highlight
	if h, ok := s.store.Highlight(); ok {
		hl = &h
	}

	spec, err := plot.Render(ds, hl, s.colors)
	if err != nil {
		s.log.Debug().Err(err).Msg("render skipped")
		return plot.Spec{}, err
	}
	s.metrics.Rendered()
	s.log.Debug().Int("points", ds.Len()).Bool("highlight", hl != nil).Msg("plot rendered")
	return spec, nil
}

// AddEntry appends the form as a new record, highlights it and re-renders.
func (s *Session) AddEntry(form entry.Form) (core.Entry, plot.Spec, error) {
	rec, err := core.NewRecord(form.Project, form.Performance, form.Weight)
	if err != nil {
		return core.Entry{}, plot.Spec{}, err
	}

	e := s.store.Append(rec)
	s.metrics.Added()
	s.metrics.Records(s.store.Len())
	s.log.Info().
		Str("project", rec.Project).
		Float64("performance", rec.Performance).
		Float64("weight", rec.Weight).
		Msg("entry added")

	spec, err := s.Render()
	if err != nil {
		return e, plot.Spec{}, err
	}
	return e, spec, nil
}

// AddResult is what CollectEntry reports once the prompts finish.
type AddResult struct {
	Entry entry.Result
	Added core.Entry
	Spec  plot.Spec
	Err   error
}

// Applied reports whether the dataset changed.
func (r AddResult) Applied() bool {
	return r.Entry.Complete && r.Err == nil
}

// CollectEntry runs the prompt sequence and, when it completes, adds the
// entry. A cancelled or invalid sequence leaves the dataset unchanged.
func (s *Session) CollectEntry(p entry.Prompter, done func(AddResult)) {
	entry.Collect(p, func(res entry.Result) {
		if !res.Complete {
			s.metrics.Cancelled(res.CancelledAt.String())
			ev := s.log.Info().Stringer("step", res.CancelledAt)
			if res.Err != nil {
				ev = ev.AnErr("reason", res.Err)
			}
			ev.Msg("entry cancelled")
			done(AddResult{Entry: res, Err: res.Err})
			return
		}

		added, spec, err := s.AddEntry(res.Form)
		done(AddResult{Entry: res, Added: added, Spec: spec, Err: err})
	})
}

// Save writes the current dataset to path. The dataset is not modified.
func (s *Session) Save(path string) error {
	ds := s.store.Dataset()
	if err := core.SaveDataset(path, ds); err != nil {
		s.metrics.Save(telemetry.ResultError)
		s.log.Error().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	s.metrics.Save(telemetry.ResultOK)
	s.log.Info().Str("path", path).Int("records", ds.Len()).Msg("dataset saved")
	return nil
}

// Describe computes statistics over the current dataset.
func (s *Session) Describe() core.Report {
	return core.Describe(s.store.Dataset())
}

func (s *Session) Dataset() core.Dataset {
	return s.store.Dataset()
}

func (s *Session) Highlight() (core.Highlight, bool) {
	return s.store.Highlight()
}

func (s *Session) Empty() bool {
	return s.store.Empty()
}

func (s *Session) Metrics() *telemetry.Recorder {
	return s.metrics
}

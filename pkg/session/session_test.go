package session

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatbench/pkg/core"
	"seatbench/pkg/entry"
	"seatbench/pkg/logging"
	"seatbench/pkg/plot"
)

func csvFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "seats.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const sampleCSV = "project,performance,weight\nA,25.5,18.2\nB,27,19.75\nA,24.1,17.9\n"

func TestAddEntry_OnEmptyDataset(t *testing.T) {
	s := New()

	added, spec, err := s.AddEntry(entry.Form{Project: "ProjA", Performance: 12.5, Weight: 3.2})
	require.NoError(t, err)

	ds := s.Dataset()
	require.Len(t, ds, 1)
	assert.Equal(t, core.Record{Project: "ProjA", Performance: 12.5, Weight: 3.2}, ds[0].Record)

	h, ok := s.Highlight()
	require.True(t, ok)
	assert.Equal(t, added.ID, h.ID)
	assert.True(t, h.Record.Equal(core.Record{Project: "ProjA", Performance: 12.5, Weight: 3.2}))

	assert.Equal(t, 1, spec.HighlightCount())
	assert.Equal(t, "ProjA\nSeat modal performance: 12.5\nSeat weight: 3.2", spec.Points()[0].HoverText)
}

func TestLoad_ThenAddHighlightsOnlyNewPoint(t *testing.T) {
	s := New()
	n, err := s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	spec, err := s.Render()
	require.NoError(t, err)
	assert.Zero(t, spec.HighlightCount())
	require.Len(t, spec.Series, 1)

	// Same triple as an existing record: only the appended entry lights up.
	_, spec, err = s.AddEntry(entry.Form{Project: "A", Performance: 25.5, Weight: 18.2})
	require.NoError(t, err)
	pts := spec.Points()
	require.Len(t, pts, 4)
	assert.Equal(t, 1, spec.HighlightCount())
	assert.True(t, pts[3].Highlighted())
	assert.Equal(t, plot.EmphasisMuted, pts[0].Emphasis)

	again, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, again.HighlightCount())
}

func TestLoad_EmptyFileKeepsDataset(t *testing.T) {
	s := New()
	_, err := s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	_, _, err = s.AddEntry(entry.Form{Project: "N", Performance: 1, Weight: 1})
	require.NoError(t, err)
	before := s.Dataset()

	_, err = s.Load(csvFile(t, ""))
	assert.ErrorIs(t, err, core.ErrEmptyInput)
	assert.Equal(t, before, s.Dataset())
	_, ok := s.Highlight()
	assert.True(t, ok)
}

func TestLoad_MalformedKeepsDataset(t *testing.T) {
	s := New()
	_, err := s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	before := s.Dataset()

	_, err = s.Load(csvFile(t, "A,1\n"))
	var re *core.ReadError
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, before, s.Dataset())
}

func TestLoad_ResetsHighlight(t *testing.T) {
	s := New()
	_, _, err := s.AddEntry(entry.Form{Project: "N", Performance: 1, Weight: 1})
	require.NoError(t, err)

	_, err = s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	_, ok := s.Highlight()
	assert.False(t, ok)
	assert.Len(t, s.Dataset(), 3)
}

func TestRender_EmptyWarns(t *testing.T) {
	_, err := New().Render()
	assert.ErrorIs(t, err, plot.ErrEmptyDataset)
	assert.Equal(t, LevelWarning, RenderNotice(err).Level)
}

func TestCollectEntry_CancelLeavesDatasetUnchanged(t *testing.T) {
	for _, step := range entry.Steps {
		t.Run(step.String(), func(t *testing.T) {
			s := New()
			_, err := s.Load(csvFile(t, sampleCSV))
			require.NoError(t, err)
			before := s.Dataset()

			answers := []entry.Answer{{Value: "X", OK: true}, {Value: "1", OK: true}, {Value: "2", OK: true}}
			answers[step] = entry.Answer{OK: false}

			var got AddResult
			s.CollectEntry(&entry.Scripted{Answers: answers}, func(r AddResult) { got = r })

			assert.False(t, got.Applied())
			assert.Equal(t, step, got.Entry.CancelledAt)
			assert.Equal(t, before, s.Dataset())
			_, ok := s.Highlight()
			assert.False(t, ok)
		})
	}
}

func TestCollectEntry_Complete(t *testing.T) {
	s := New(WithColors(plot.StableColors{}))
	var got AddResult
	s.CollectEntry(entry.Values("ProjA", "12.5", "3.2"), func(r AddResult) { got = r })

	require.True(t, got.Applied())
	assert.Equal(t, "ProjA", got.Added.Project)
	assert.Equal(t, 1, got.Spec.HighlightCount())
	assert.Len(t, s.Dataset(), 1)
}

func TestSave_RoundTrip(t *testing.T) {
	s := New()
	_, err := s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	_, _, err = s.AddEntry(entry.Form{Project: "C", Performance: 30.25, Weight: 21})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, s.Save(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "project_name,performance,weight\nA,25.5,18.2\nB,27,19.75\nA,24.1,17.9\nC,30.25,21\n", string(data))

	other := New()
	n, err := other.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, s.Dataset().Records(), other.Dataset().Records())
}

func TestSave_FailureLeavesDataset(t *testing.T) {
	s := New()
	_, err := s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	before := s.Dataset()

	err = s.Save(filepath.Join(t.TempDir(), "missing", "out.csv"))
	var we *core.WriteError
	assert.ErrorAs(t, err, &we)
	assert.Equal(t, before, s.Dataset())
	assert.Equal(t, LevelError, SaveNotice(err).Level)
}

func TestDescribe(t *testing.T) {
	s := New()
	for _, p := range []float64{1, 2, 3} {
		_, _, err := s.AddEntry(entry.Form{Project: "A", Performance: p, Weight: 1})
		require.NoError(t, err)
	}
	perf, ok := s.Describe().Column(core.ColumnPerformance)
	require.True(t, ok)
	assert.Equal(t, 3, perf.Count)
	assert.InDelta(t, 2.0, perf.Mean, 1e-12)
	assert.InDelta(t, 1.0, perf.Min, 1e-12)
	assert.InDelta(t, 3.0, perf.Max, 1e-12)
}

func TestSession_LogsAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "debug", logging.FormatJSON)
	require.NoError(t, err)

	s := New(WithLogger(l))
	_, err = s.Load(csvFile(t, sampleCSV))
	require.NoError(t, err)
	_, _ = s.Load(csvFile(t, ""))

	assert.Contains(t, buf.String(), `"component":"session"`)
	assert.Contains(t, buf.String(), "dataset loaded")

	var metrics bytes.Buffer
	require.NoError(t, s.Metrics().WriteText(&metrics))
	assert.Contains(t, metrics.String(), `seatbench_dataset_loads_total{result="ok"} 1`)
	assert.Contains(t, metrics.String(), `seatbench_dataset_loads_total{result="empty"} 1`)
	assert.Contains(t, metrics.String(), "seatbench_dataset_records 3")
}

func TestLoadNotice(t *testing.T) {
	assert.Equal(t, "Data loaded (3 records).", LoadNotice(3, nil).Message)
	assert.Equal(t, "The file is empty or has no data rows.", LoadNotice(0, core.ErrEmptyInput).Message)
	assert.Equal(t, LevelError, LoadNotice(0, &core.ReadError{Err: os.ErrNotExist}).Level)
}

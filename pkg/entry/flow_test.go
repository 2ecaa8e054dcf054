package entry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatbench/pkg/core"
)

func collect(t *testing.T, p Prompter) Result {
	t.Helper()
	var got *Result
	Collect(p, func(r Result) {
		require.Nil(t, got, "done called twice")
		got = &r
	})
	require.NotNil(t, got, "done not called")
	return *got
}

func TestCollect_Complete(t *testing.T) {
	p := Values("ProjA", "12.5", " 3.2 ")
	res := collect(t, p)

	require.True(t, res.Complete)
	assert.NoError(t, res.Err)
	assert.Equal(t, Form{Project: "ProjA", Performance: 12.5, Weight: 3.2}, res.Form)
	assert.Equal(t, core.Record{Project: "ProjA", Performance: 12.5, Weight: 3.2}, res.Form.Record())
	assert.Equal(t, Steps, p.Asked())
}

func TestCollect_CancelAtEachStep(t *testing.T) {
	tests := []struct {
		name    string
		answers []Answer
		want    Step
	}{
		{"cancel project", []Answer{{OK: false}}, StepProject},
		{"empty project", []Answer{{Value: "  ", OK: true}}, StepProject},
		{"cancel performance", []Answer{{Value: "A", OK: true}, {OK: false}}, StepPerformance},
		{"cancel weight", []Answer{{Value: "A", OK: true}, {Value: "1", OK: true}, {OK: false}}, StepWeight},
		{"script exhausted", []Answer{{Value: "A", OK: true}}, StepPerformance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Scripted{Answers: tt.answers}
			res := collect(t, p)
			assert.False(t, res.Complete)
			assert.Equal(t, tt.want, res.CancelledAt)
			assert.NoError(t, res.Err)
			assert.Equal(t, tt.want, p.Asked()[len(p.Asked())-1])
		})
	}
}

func TestCollect_NonNumeric(t *testing.T) {
	res := collect(t, Values("A", "fast"))
	assert.False(t, res.Complete)
	assert.Equal(t, StepPerformance, res.CancelledAt)
	assert.ErrorContains(t, res.Err, `"fast" is not a number`)
}

func TestLinePrompter(t *testing.T) {
	in := strings.NewReader("车型A\n25.5\n18.2")
	var out bytes.Buffer

	res := collect(t, NewLinePrompter(in, &out))
	require.True(t, res.Complete)
	assert.Equal(t, Form{Project: "车型A", Performance: 25.5, Weight: 18.2}, res.Form)
	assert.Contains(t, out.String(), StepWeight.Label())
}

func TestLinePrompter_EmptyLineCancels(t *testing.T) {
	res := collect(t, NewLinePrompter(strings.NewReader("A\n\n"), &bytes.Buffer{}))
	assert.False(t, res.Complete)
	assert.Equal(t, StepPerformance, res.CancelledAt)
}

func TestLinePrompter_EOFCancels(t *testing.T) {
	res := collect(t, NewLinePrompter(strings.NewReader("A\n1\n"), &bytes.Buffer{}))
	assert.False(t, res.Complete)
	assert.Equal(t, StepWeight, res.CancelledAt)
}

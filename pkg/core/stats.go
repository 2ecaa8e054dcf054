package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// ColumnStats summarizes one numeric column.
type ColumnStats struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Report holds descriptive statistics for every numeric column.
type Report struct {
	Columns []ColumnStats
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max for performance and weight. An empty dataset yields count 0 and
// NaN everywhere else.
func Describe(ds Dataset) Report {
	return Report{Columns: []ColumnStats{
		describeColumn(ColumnPerformance, ds.Performances()),
		describeColumn(ColumnWeight, ds.Weights()),
	}}
}

func describeColumn(name string, xs []float64) ColumnStats {
	cs := ColumnStats{Name: name, Count: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		cs.Mean, cs.Std, cs.Min, cs.Q1, cs.Median, cs.Q3, cs.Max = nan, nan, nan, nan, nan, nan, nan
		return cs
	}

	sample := stats.Sample{Xs: append([]float64(nil), xs...)}
	sample.Sort()

	cs.Mean = sample.Mean()
	cs.Min, cs.Max = sample.Bounds()
	if len(xs) > 1 {
		cs.Std = sample.StdDev()
	} else {
		cs.Std = math.NaN()
	}
	cs.Q1 = quantile(sample.Xs, 0.25)
	cs.Median = quantile(sample.Xs, 0.50)
	cs.Q3 = quantile(sample.Xs, 0.75)
	return cs
}

// quantile interpolates linearly between closest ranks of sorted xs, with
// rank h = (n-1)q.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Column looks up the summary for a column name.
func (r Report) Column(name string) (ColumnStats, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnStats{}, false
}

// String renders the report as a fixed-width table, one column per field.
func (r Report) String() string {
	var b strings.Builder

	rows := []struct {
		label string
		value func(ColumnStats) string
	}{
		{"count", func(c ColumnStats) string { return fmt.Sprintf("%d", c.Count) }},
		{"mean", func(c ColumnStats) string { return formatStat(c.Mean) }},
		{"std", func(c ColumnStats) string { return formatStat(c.Std) }},
		{"min", func(c ColumnStats) string { return formatStat(c.Min) }},
		{"25%", func(c ColumnStats) string { return formatStat(c.Q1) }},
		{"50%", func(c ColumnStats) string { return formatStat(c.Median) }},
		{"75%", func(c ColumnStats) string { return formatStat(c.Q3) }},
		{"max", func(c ColumnStats) string { return formatStat(c.Max) }},
	}

	fmt.Fprintf(&b, "%-6s", "")
	for _, c := range r.Columns {
		fmt.Fprintf(&b, " %14s", c.Name)
	}
	b.WriteString("\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "%-6s", row.label)
		for _, c := range r.Columns {
			fmt.Fprintf(&b, " %14s", row.value(c))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}

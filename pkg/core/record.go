package core

import (
	"errors"
	"strings"
)

// Column names used for the CSV header and statistics output.
const (
	ColumnProject     = "project_name"
	ColumnPerformance = "performance"
	ColumnWeight      = "weight"
)

// Columns is the fixed schema, in file order.
var Columns = []string{ColumnProject, ColumnPerformance, ColumnWeight}

var ErrEmptyProject = errors.New("project name is empty")

// Record is one project's seat observation. Two records are the same
// observation when all three fields are equal.
type Record struct {
	Project     string
	Performance float64
	Weight      float64
}

func NewRecord(project string, performance, weight float64) (Record, error) {
	r := Record{Project: strings.TrimSpace(project), Performance: performance, Weight: weight}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.Project) == "" {
		return ErrEmptyProject
	}
	return nil
}

// Equal compares the full triple with exact float equality.
func (r Record) Equal(o Record) bool {
	return r.Project == o.Project && r.Performance == o.Performance && r.Weight == o.Weight
}

// Entry is a record held by the store. ID is assigned when the record enters
// the store and never leaves the process.
type Entry struct {
	ID string
	Record
}

// Dataset is the ordered collection of entries for a session.
type Dataset []Entry

func (d Dataset) Len() int {
	return len(d)
}

func (d Dataset) Empty() bool {
	return len(d) == 0
}

func (d Dataset) Records() []Record {
	out := make([]Record, len(d))
	for i, e := range d {
		out[i] = e.Record
	}
	return out
}

func (d Dataset) Performances() []float64 {
	out := make([]float64, len(d))
	for i, e := range d {
		out[i] = e.Performance
	}
	return out
}

func (d Dataset) Weights() []float64 {
	out := make([]float64, len(d))
	for i, e := range d {
		out[i] = e.Weight
	}
	return out
}

// Projects returns the distinct project names in first-seen order.
func (d Dataset) Projects() []string {
	seen := make(map[string]bool, len(d))
	var out []string
	for _, e := range d {
		if seen[e.Project] {
			continue
		}
		seen[e.Project] = true
		out = append(out, e.Project)
	}
	return out
}

// Clone returns a copy that does not share the backing array.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// Highlight designates the most recently added entry. An empty ID means the
// highlight is matched by value only.
type Highlight struct {
	ID     string
	Record Record
}

func (h Highlight) Matches(e Entry) bool {
	if h.ID != "" {
		return e.ID == h.ID
	}
	return e.Record.Equal(h.Record)
}

package core

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadDataset_PositionalMapping(t *testing.T) {
	p := writeFile(t, "seats.csv", "车型项目名称,座椅模态性能,座椅重量\n"+
		"A1,25.5,18.2\n"+
		"B2,27,19.75\n"+
		"A1,24.1,17.9\n")

	ds, err := LoadDataset(p)
	require.NoError(t, err)
	require.Len(t, ds, 3)

	assert.Equal(t, []Record{
		{Project: "A1", Performance: 25.5, Weight: 18.2},
		{Project: "B2", Performance: 27, Weight: 19.75},
		{Project: "A1", Performance: 24.1, Weight: 17.9},
	}, ds.Records())

	ids := map[string]bool{}
	for _, e := range ds {
		assert.NotEmpty(t, e.ID)
		ids[e.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestReadDataset_HeaderOptional(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"with header", "name,perf,weight\nX,1,2\nY,3,4\n", 2},
		{"without header", "X,1,2\nY,3,4\n", 2},
		{"arbitrary header text", "a,b,c\nX,1,2\n", 1},
		{"bom and blank lines", "\xEF\xBB\xBFp,q,r\n\nX,1,2\n\n", 1},
		{"whitespace around fields", "X , 1.5 , 2.5\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadDataset(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Len(t, ds, tt.want)
		})
	}
}

func TestReadDataset_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "name,perf,weight\n", "   \n"} {
		_, err := ReadDataset(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", input)
	}
}

func TestReadDataset_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"too few columns", "name,perf,weight\nX,1\n", 2},
		{"too many columns", "X,1,2,3\n", 1},
		{"non numeric weight", "name,perf,weight\nX,1,2\nY,3,heavy\n", 3},
		{"empty project", "name,perf,weight\n,1,2\n", 2},
		{"invalid utf8", "name,perf,weight\n\xff\xfe,1,2\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDataset(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrEmptyInput))

			var re *ReadError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.wantLine, re.Line)
		})
	}
}

func TestReadDataset_BadQuoting(t *testing.T) {
	_, err := ReadDataset(strings.NewReader("X,\"1,2\n"))
	var re *ReadError
	assert.ErrorAs(t, err, &re)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.csv")
	_, err := LoadDataset(p)

	var re *ReadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, p, re.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDataset_EmptyFile(t *testing.T) {
	p := writeFile(t, "empty.csv", "")
	_, err := LoadDataset(p)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), p)
}

func TestWriteDataset_Format(t *testing.T) {
	ds := Dataset{
		{ID: "1", Record: Record{Project: "A, Ltd", Performance: 12.5, Weight: 3.2}},
		{ID: "2", Record: Record{Project: "B", Performance: 30, Weight: 0.1}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDataset(&buf, ds))
	assert.Equal(t, "project_name,performance,weight\n\"A, Ltd\",12.5,3.2\nB,30,0.1\n", buf.String())
}

func TestSaveDataset_RoundTrip(t *testing.T) {
	src := writeFile(t, "in.csv", "项目,性能,重量\n"+
		"车型A,25.123456789,18.2\n"+
		"车型B,1e-3,1000000\n"+
		"车型A,-4,0\n")
	ds, err := LoadDataset(src)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveDataset(out, ds))

	again, err := LoadDataset(out)
	require.NoError(t, err)
	assert.Equal(t, ds.Records(), again.Records())
}

func TestSaveDataset_BadPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")
	err := SaveDataset(p, Dataset{{ID: "1", Record: Record{Project: "A", Performance: 1, Weight: 2}}})

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, p, we.Path)
}

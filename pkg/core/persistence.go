package core

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadDataset reads a three-column CSV file. Columns are mapped by position;
// header text, when present, is ignored.
func LoadDataset(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	ds, err := ReadDataset(file)
	if err != nil {
		var re *ReadError
		if errors.As(err, &re) {
			re.Path = path
			return nil, re
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// SaveDataset writes the dataset with a header row and no index column.
func SaveDataset(path string, ds Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := WriteDataset(file, ds); err != nil {
		file.Close()
		var we *WriteError
		if errors.As(err, &we) {
			we.Path = path
			return we
		}
		return &WriteError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func ReadDataset(r io.Reader) (Dataset, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	ds := make(Dataset, 0)
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReadError{Err: err}
		}
		line, _ := cr.FieldPos(0)

		if blankRow(row) {
			continue
		}
		if err := checkRow(row); err != nil {
			return nil, &ReadError{Line: line, Err: err}
		}

		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, &ReadError{Line: line, Err: err}
		}
		ds = append(ds, Entry{ID: NewEntryID(), Record: rec})
	}

	if len(ds) == 0 {
		return nil, ErrEmptyInput
	}
	return ds, nil
}

func WriteDataset(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return &WriteError{Err: err}
	}
	for _, e := range ds {
		row := []string{
			e.Project,
			formatFloat(e.Performance),
			formatFloat(e.Weight),
		}
		if err := cw.Write(row); err != nil {
			return &WriteError{Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

func blankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func checkRow(row []string) error {
	if len(row) != len(Columns) {
		return fmt.Errorf("expected %d columns, got %d", len(Columns), len(row))
	}
	for _, f := range row {
		if !utf8.ValidString(f) {
			return errors.New("invalid UTF-8 encoding")
		}
	}
	return nil
}

// isHeader reports whether the first row is a header: either numeric column
// fails to parse.
func isHeader(row []string) bool {
	if _, err := parseFloat(row[1]); err != nil {
		return true
	}
	if _, err := parseFloat(row[2]); err != nil {
		return true
	}
	return false
}

func parseRow(row []string) (Record, error) {
	performance, err := parseFloat(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColumnPerformance, err)
	}
	weight, err := parseFloat(row[2])
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColumnWeight, err)
	}
	return NewRecord(row[0], performance, weight)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

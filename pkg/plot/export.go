package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// EncodeJSON writes the spec as indented JSON for external renderers.
func EncodeJSON(w io.Writer, spec Spec) error {
	data, err := sonic.ConfigStd.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plot spec: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func SaveJSON(path string, spec Spec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeJSON(f, spec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecodeJSON reads a spec written by EncodeJSON. Point and legend colors are
// restored from their CSS form.
func DecodeJSON(r io.Reader) (Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Spec{}, err
	}
	var spec Spec
	if err := sonic.ConfigStd.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("unmarshal plot spec: %w", err)
	}
	for i := range spec.Series {
		for j := range spec.Series[i].Points {
			p := &spec.Series[i].Points[j]
			if p.Color, err = ParseColor(p.ColorCSS); err != nil {
				return Spec{}, fmt.Errorf("series %q point %d: %w", spec.Series[i].Name, j, err)
			}
		}
	}
	for i := range spec.Legend {
		item := &spec.Legend[i]
		if item.Color, err = ParseColor(item.ColorCSS); err != nil {
			return Spec{}, fmt.Errorf("legend %q: %w", item.Project, err)
		}
	}
	return spec, nil
}

// ParseColor parses the "rgb(r, g, b)" form produced by Color.String.
func ParseColor(s string) (Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

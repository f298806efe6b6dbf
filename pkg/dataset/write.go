package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Write encodes d to w in the given format.
func Write(w io.Writer, d Dataset, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, d)
	case FormatYAML:
		return WriteYAML(w, d)
	default:
		return WriteText(w, d)
	}
}

// WriteJSON encodes d as indented JSON. The output can be re-read with
// [ReadJSON].
func WriteJSON(w io.Writer, d Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes d as YAML.
func WriteYAML(w io.Writer, d Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Save writes d to path, picking the encoding by extension.
func Save(d Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, d, DetectFormat(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

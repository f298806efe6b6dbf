package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sankeyflow/pkg/errors"
)

// Format is a dataset encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatNames lists the dataset encodings.
func FormatNames() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// DetectFormat guesses the encoding from a file extension. Anything that is
// not .json, .yaml or .yml is read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ParseFormat validates a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", errors.ValidateFormat(s, FormatNames())
}

// Read decodes a dataset from r in the given format.
func Read(r io.Reader, format Format) (Dataset, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return ParseText(r)
	}
}

// Parse decodes a dataset held in memory.
func Parse(data []byte, format Format) (Dataset, error) {
	return Read(bytes.NewReader(data), format)
}

// ReadJSON decodes a JSON dataset from r. Unknown fields are rejected so that
// typos in keys surface instead of silently producing empty links.
func ReadJSON(r io.Reader) (Dataset, error) {
	var d Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON dataset")
	}
	return d, nil
}

// ReadYAML decodes a YAML dataset from r.
func ReadYAML(r io.Reader) (Dataset, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return Dataset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode YAML dataset")
	}
	return d, nil
}

// Load reads the dataset file at path, picking the decoder by extension.
//
// Load returns the same validation errors as the decoders, wrapped with the
// file path for context.
func Load(path string) (Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Dataset{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f, DetectFormat(path))
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadLists reads a dataset from a node list file and a link list file.
func LoadLists(nodesPath, linksPath string) (Dataset, error) {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", nodesPath, err)
	}
	defer nf.Close()
	lf, err := os.Open(linksPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", linksPath, err)
	}
	defer lf.Close()

	nodes, err := ParseNodes(nf)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", nodesPath, err)
	}
	links, err := ParseLinks(lf)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", linksPath, err)
	}
	return Dataset{Nodes: nodes, Links: links}, nil
}

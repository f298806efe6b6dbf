package dataset

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
)

// Section headers of a combined text dataset.
const (
	nodesHeader = "nodes:"
	linksHeader = "links:"
)

// ParseNodes reads one node name per line. Names are trimmed and blank
// lines skipped; order defines the node index.
func ParseNodes(r io.Reader) ([]flow.NodeSpec, error) {
	var nodes []flow.NodeSpec
	err := eachLine(r, func(line int, text string) error {
		n, err := parseNodeLine(text)
		if err != nil {
			return errors.AtLine(err, line)
		}
		nodes = append(nodes, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// ParseLinks reads one "source,target,value" triple per line. Blank lines
// are skipped. Names are resolved later, when the graph is built.
func ParseLinks(r io.Reader) ([]flow.LinkSpec, error) {
	var links []flow.LinkSpec
	err := eachLine(r, func(line int, text string) error {
		l, err := parseLinkLine(text)
		if err != nil {
			return errors.AtLine(err, line)
		}
		l.Line = line
		links = append(links, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ParseText reads a combined dataset with "nodes:" and "links:" sections.
// Either header may come first; content before the first header is an
// error. Line numbers in errors count every physical line of r.
func ParseText(r io.Reader) (Dataset, error) {
	var d Dataset
	section := ""
	err := eachLine(r, func(line int, text string) error {
		switch strings.ToLower(text) {
		case nodesHeader, linksHeader:
			section = strings.ToLower(text)
			return nil
		}
		switch section {
		case nodesHeader:
			n, err := parseNodeLine(text)
			if err != nil {
				return errors.AtLine(err, line)
			}
			d.Nodes = append(d.Nodes, n)
		case linksHeader:
			l, err := parseLinkLine(text)
			if err != nil {
				return errors.AtLine(err, line)
			}
			l.Line = line
			d.Links = append(d.Links, l)
		default:
			err := errors.New(errors.ErrCodeInvalidLine, "expected %q or %q header", nodesHeader, linksHeader)
			return errors.AtLine(err, line)
		}
		return nil
	})
	if err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// ParseLists reads a dataset from separate node and link lists.
func ParseLists(nodes, links io.Reader) (Dataset, error) {
	ns, err := ParseNodes(nodes)
	if err != nil {
		return Dataset{}, err
	}
	ls, err := ParseLinks(links)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{Nodes: ns, Links: ls}, nil
}

func parseNodeLine(text string) (flow.NodeSpec, error) {
	if err := errors.ValidateNodeName(text); err != nil {
		return flow.NodeSpec{}, err
	}
	return flow.NodeSpec{Name: text}, nil
}

func parseLinkLine(text string) (flow.LinkSpec, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return flow.LinkSpec{}, errors.New(errors.ErrCodeInvalidLine,
			"expected \"source,target,value\", got %d fields in %q", len(parts), text)
	}
	v, err := errors.ParseValue(parts[2])
	if err != nil {
		return flow.LinkSpec{}, err
	}
	return flow.LinkSpec{
		Source: strings.TrimSpace(parts[0]),
		Target: strings.TrimSpace(parts[1]),
		Value:  v,
	}, nil
}

// eachLine calls fn with the 1-based number of every non-blank line and its
// trimmed text.
func eachLine(r io.Reader, fn func(line int, text string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := fn(line, text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read dataset")
	}
	return nil
}

// WriteText writes d as a combined text dataset. Colours are not part of
// the text format and are dropped.
func WriteText(w io.Writer, d Dataset) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(nodesHeader + "\n")
	for _, n := range d.Nodes {
		bw.WriteString(n.Name + "\n")
	}
	bw.WriteString(linksHeader + "\n")
	for _, l := range d.Links {
		bw.WriteString(l.Source + "," + l.Target + "," + formatValue(l.Value) + "\n")
	}
	return bw.Flush()
}

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"synaudit/internal/core"
)

// JSONSink writes the report as one indented JSON document.
type JSONSink struct {
	w io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) Write(rep *core.Report) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDoc(rep))
}

// YAMLSink writes the report as a YAML document.
type YAMLSink struct {
	w io.Writer
}

func NewYAMLSink(w io.Writer) *YAMLSink {
	return &YAMLSink{w: w}
}

func (s *YAMLSink) Write(rep *core.Report) error {
	enc := yaml.NewEncoder(s.w)
	defer enc.Close()
	return enc.Encode(toDoc(rep))
}

// NewSink selects a writer-backed sink by format name.
func NewSink(format string, w io.Writer) (Sink, error) {
	switch format {
	case "text", "":
		return NewTextSink(w), nil
	case "json":
		return NewJSONSink(w), nil
	case "yaml":
		return NewYAMLSink(w), nil
	default:
		return nil, fmt.Errorf("%w: %s (must be text/json/yaml)", core.ErrUnknownFormat, format)
	}
}

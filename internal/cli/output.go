package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats shared by eval, run and history.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeFormatted writes v as JSON or YAML, or calls text for the text format.
func writeFormatted(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatText:
		return text(w)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// validateFormat rejects an unknown format before any work is done.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

// evalReport is the structured form of an eval result.
type evalReport struct {
	Expression string  `json:"expression" yaml:"expression"`
	Result     string  `json:"result" yaml:"result"`
	Value      float64 `json:"value" yaml:"value"`
}

// runReport is the structured form of a command run.
// Fields are ordered to minimize memory padding.
type runReport struct {
	Command   string   `json:"command" yaml:"command"`
	Verb      string   `json:"verb" yaml:"verb"`
	Output    string   `json:"output" yaml:"output"`
	Args      []string `json:"args" yaml:"args"`
	ExitCode  int      `json:"exitCode" yaml:"exitCode"`
	Truncated bool     `json:"truncated" yaml:"truncated"`
}

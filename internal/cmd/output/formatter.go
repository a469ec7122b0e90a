// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatCSV represents CSV output format.
	FormatCSV Format = "csv"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates the appropriate formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// Data represents rows prepared for tabular output. RightAlign marks the
// columns holding numbers.
type Data struct {
	Headers    []string
	Rows       [][]string
	RightAlign []int
}

// TableFormatter renders aligned tables for terminals.
type TableFormatter struct{}

// Format outputs data in table format. Non-tabular data falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	tableData, ok := data.(Data)
	if !ok {
		jsonFormatter := &JSONFormatter{Indent: "  "}
		return jsonFormatter.Format(w, data)
	}

	config := tablewriter.Config{}
	if len(tableData.RightAlign) > 0 {
		align := make([]tw.Align, len(tableData.Headers))
		for i := range align {
			align[i] = tw.Skip
		}
		for _, col := range tableData.RightAlign {
			if col < len(align) {
				align[col] = tw.AlignRight
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	headers := make([]any, len(tableData.Headers))
	for i, h := range tableData.Headers {
		headers[i] = h
	}
	table.Header(headers...)

	for _, row := range tableData.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// CSVFormatter emits tabular data as plain CSV, for piping into other tools.
type CSVFormatter struct{}

// Format outputs tabular data in CSV form. Non-tabular data falls back to
// JSON.
func (f *CSVFormatter) Format(w io.Writer, data any) error {
	tableData, ok := data.(Data)
	if !ok {
		jsonFormatter := &JSONFormatter{}
		return jsonFormatter.Format(w, data)
	}

	writeLine := func(cells []string) error {
		for i, cell := range cells {
			if strings.ContainsAny(cell, ",\"\n") {
				cells[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(cells, ","))
		return err
	}

	if err := writeLine(append([]string(nil), tableData.Headers...)); err != nil {
		return err
	}
	for _, row := range tableData.Rows {
		if err := writeLine(append([]string(nil), row...)); err != nil {
			return err
		}
	}
	return nil
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, csv", s)
	}
}

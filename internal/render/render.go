// Package render formats catalog listings for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/sciconst/internal/catalog"
	"github.com/ensigniasec/sciconst/internal/history"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatText  = "text"
)

// entryView is the serialized shape of a single constant.
type entryView struct {
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Value       string    `json:"value" yaml:"value"`
	Description string    `json:"description" yaml:"description"`
	History     []float64 `json:"history,omitempty" yaml:"history,omitempty"`
}

// Rows writes a two-column name/value listing.
func Rows(w io.Writer, rows []catalog.Row, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, rows)
	case FormatYAML:
		return renderYAML(w, rows)
	case FormatText:
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s: %s\n", r.Name, r.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		if len(rows) == 0 {
			_, err := fmt.Fprintln(w, "(no constants)")
			return err
		}
		t := newTable(w)
		t.AppendHeader(table.Row{"Constant", "Value"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.Name, r.Value})
		}
		t.Render()
		return nil
	}
}

// Entry writes the full detail of a constant. category is empty for custom constants.
func Entry(w io.Writer, category string, e catalog.Entry, format string) error {
	v := entryView{Name: e.Name, Category: category, Value: e.Value, Description: e.Description, History: e.History}
	switch format {
	case FormatJSON:
		return renderJSON(w, v)
	case FormatYAML:
		return renderYAML(w, v)
	case FormatText:
		_, err := fmt.Fprintf(w, "%s\n\nValue: %s\n\nDescription: %s\n", e.Name, e.Value, e.Description)
		return err
	default:
		t := newTable(w)
		if category != "" {
			t.AppendRow(table.Row{"Category", category})
		}
		t.AppendRow(table.Row{"Constant", e.Name})
		t.AppendRow(table.Row{"Value", e.Value})
		t.AppendRow(table.Row{"Description", e.Description})
		t.Render()
		return nil
	}
}

// Strings writes a plain list, e.g. category names.
func Strings(w io.Writer, items []string, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, items)
	case FormatYAML:
		return renderYAML(w, items)
	default:
		for _, s := range items {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	}
}

// History writes the copy log, oldest first.
func History(w io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No constants have been copied yet.")
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s: %s\n", i+1, e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit describes how a field value should be rendered.
type Unit int

const (
	// Won is a monetary amount in KRW, grouped and rounded to whole won.
	Won Unit = iota
	// Percent is a percentage rendered with two decimals.
	Percent
	// Months is a whole month count.
	Months
	// Text is a non-numeric field; Value is ignored and Text is shown.
	Text
)

// Field is one named value of a calculation result.
type Field struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  Unit    `json:"-"`
	Text  string  `json:"text,omitempty"`
}

// Result is a rendered calculation: an ordered list of named fields plus
// any warnings raised while computing it.
type Result struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Fields   []Field  `json:"fields"`
	Warnings []string `json:"warnings,omitempty"`
}

// Pretty writes a human-readable table of the results.
func Pretty(w io.Writer, results []Result) {
	p := message.NewPrinter(language.Korean)
	for _, result := range results {
		fmt.Fprintf(w, "--- %s (%s) ---\n", result.Name, result.Type)
		for _, field := range result.Fields {
			fmt.Fprintf(w, "%-28s | %s\n", field.Label, formatValue(p, field))
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warning)
		}
		fmt.Fprintln(w)
	}
}

func formatValue(p *message.Printer, field Field) string {
	switch field.Unit {
	case Percent:
		return fmt.Sprintf("%.2f%%", field.Value)
	case Months:
		return fmt.Sprintf("%d months", int(field.Value))
	case Text:
		return field.Text
	default:
		return p.Sprintf("%.0f KRW", field.Value)
	}
}

// Csv writes the results as flat CSV rows of name, type, label, value.
func Csv(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "type", "field", "value"}); err != nil {
		return err
	}
	for _, result := range results {
		for _, field := range result.Fields {
			value := strconv.FormatFloat(field.Value, 'f', -1, 64)
			if field.Unit == Text {
				value = field.Text
			}
			if err := writer.Write([]string{result.Name, result.Type, field.Label, value}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// JSON writes the results as an indented JSON array.
func JSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

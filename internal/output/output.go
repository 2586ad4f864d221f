// Package output renders lesson results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
)

// Row is one labelled result line.
type Row struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Report is what a lesson run produces.
type Report struct {
	Lesson  string `json:"lesson"`
	Version string `json:"version"`
	Rows    []Row  `json:"rows"`
}

// Add appends a row and returns the report for chaining.
func (r *Report) Add(label string, value any) *Report {
	r.Rows = append(r.Rows, Row{Label: label, Value: value})
	return r
}

// UnknownFormatError is returned for formats other than text and json.
type UnknownFormatError struct{ Format string }

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return "output: unknown format " + strconv.Quote(e.Format)
}

// Write renders r to w in format ("text" or "json").
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "", "text":
		return writeText(w, r)
	case "json":
		return writeJSON(w, r)
	}
	return UnknownFormatError{Format: format}
}

func writeText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "# %s (%s)\n", r.Lesson, r.Version); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", row.Label, FormatValue(row.Value)); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, r Report) error {
	if r.Rows == nil {
		r.Rows = []Row{}
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// FormatValue renders floats with at most four decimals and everything else with %v.
func FormatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return humanize.FtoaWithDigits(x, 4)
	case float32:
		return humanize.FtoaWithDigits(float64(x), 4)
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}

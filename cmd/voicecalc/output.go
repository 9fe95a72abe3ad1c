package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/session"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	colorValue  = "#a78bfa"
	colorMuted  = "#94a3b8"
	colorFailed = "#fb7185"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(*termenv.Output) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(termenv.NewOutput(w))
}

// renderResult prints the explanation, then the value highlighted.
func renderResult(w io.Writer, format string, r interpreter.Result) error {
	return render(w, format, r, func(out *termenv.Output) error {
		color := colorValue
		if r.Sentinel() {
			color = colorFailed
		}

		value := out.String(r.Value).Bold().Foreground(out.Color(color))
		if r.Tool != "" {
			tool := out.String("(" + r.Tool + ")").Foreground(out.Color(colorMuted))
			_, err := fmt.Fprintf(out, "%s\n= %s %s\n", r.Explanation, value, tool)
			return err
		}
		_, err := fmt.Fprintf(out, "%s\n= %s\n", r.Explanation, value)
		return err
	})
}

// renderHistory lists entries oldest first in text mode.
func renderHistory(w io.Writer, format string, entries []session.Entry) error {
	return render(w, format, entries, func(out *termenv.Output) error {
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			ts := out.String(e.Timestamp.Local().Format("15:04:05")).Foreground(out.Color(colorMuted))
			if _, err := fmt.Fprintf(out, "%s  %s = %s\n", ts, e.Input, out.String(e.Value).Bold()); err != nil {
				return err
			}
		}
		return nil
	})
}

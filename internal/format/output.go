package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Texter is implemented by values with a one-line human rendering.
type Texter interface {
	Text() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - edn
// - text (values implementing Texter; anything else falls back to json)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		return WriteText(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s (want json|edn|text)", format)
	}
}

// Valid reports whether Write accepts format.
func Valid(format string) bool {
	switch format {
	case "", "json", "edn", "text":
		return true
	}
	return false
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText writes v.Text() on its own line.
func WriteText(w io.Writer, v any, pretty bool) error {
	t, ok := v.(Texter)
	if !ok {
		return WriteJSON(w, v, pretty)
	}
	_, err := fmt.Fprintln(w, t.Text())
	return err
}

package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes one JSON document per call.
//
// HTML escaping is off so token values and payloads containing <, > or &
// print as they are. An empty Indent writes compact single line output.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(data)
}

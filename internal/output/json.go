/*
PURPOSE:
  Writes chart reports as JSON.
  Optimized for machine parsing and for feeding Chart.js directly.

REQUIREMENTS:
  User-specified:
  - JSON output of the chart-ready structure ({labels, datasets}).

  Implementation-discovered:
  - The HTTP API and the file writer share one encoder setup.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/server
  - Consumes: internal/chart.Report, internal/chart.RadarData

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("radar.json")
  w.Write(report)
  w.Close()

RELATED FILES:
  - internal/chart/report.go
*/

package output

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/daryltucker/solver-radar/internal/chart"
)

// JSONWriter handles writing reports to a JSON file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter.
// It overwrites the file if it exists.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: newEncoder(f),
	}, nil
}

// Write writes a report as one indented JSON document.
func (jw *JSONWriter) Write(r chart.Report) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(r)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

// WriteJSON encodes v to w with the same settings as JSONWriter.
func WriteJSON(w io.Writer, v any) error {
	return newEncoder(w).Encode(v)
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

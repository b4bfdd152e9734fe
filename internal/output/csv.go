/*
PURPOSE:
  Writes count vectors to a CSV file, one row per (class, solver, category).
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output to CSV for spreadsheet comparison of solver configurations.

  Implementation-discovered:
  - Long format keeps COP (5 categories) and CSP (4) in one table.
  - Overwrite on each run; the data is rebuilt from the inputs every time.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/chart.RadarData

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter("radar.csv")
  w.Write(radarData)
  w.Close()

RELATED FILES:
  - internal/chart/radar.go

MAINTENANCE:
  - Update Write() mapping when RadarData changes.
*/

package output

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/solver-radar/internal/chart"
)

// CSVHeader is the first row of every CSV file.
var CSVHeader = []string{"class", "solver", "category", "count", "instances"}

// CSVWriter handles writing count rows to a CSV file.
type CSVWriter struct {
	closer io.Closer
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	cw, err := newCSVWriter(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return cw, nil
}

func newCSVWriter(w io.Writer, c io.Closer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return &CSVWriter{closer: c, writer: cw}, nil
}

// Write writes every (solver, category) cell of one radar plot.
// It is thread-safe.
func (cw *CSVWriter) Write(rd chart.RadarData) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	instances := strconv.Itoa(rd.Instances)
	for _, ds := range rd.Datasets {
		for i, label := range rd.Labels {
			count := 0
			if i < len(ds.Data) {
				count = ds.Data[i]
			}
			record := []string{string(rd.Class), ds.Label, label, strconv.Itoa(count), instances}
			if err := cw.writer.Write(record); err != nil {
				return err
			}
		}
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	if cw.closer == nil {
		return cw.writer.Error()
	}
	return cw.closer.Close()
}

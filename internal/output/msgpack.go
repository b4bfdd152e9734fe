package output

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/daryltucker/solver-radar/internal/chart"
)

// WriteMsgpack encodes the report to w. Field names follow the msgpack
// struct tags, which match the JSON ones.
func WriteMsgpack(w io.Writer, r chart.Report) error {
	return msgpack.NewEncoder(w).Encode(r)
}

// SaveMsgpack writes the report to path.
func SaveMsgpack(path string, r chart.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMsgpack(f, r); err != nil {
		f.Close()
		return fmt.Errorf("encode msgpack: %w", err)
	}
	return f.Close()
}

// ReadMsgpack decodes a report written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (chart.Report, error) {
	var out chart.Report
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return chart.Report{}, err
	}
	return out, nil
}

/*
PURPOSE:
  Turns user-selected benchmark files into instance lists and keeps the
  two component-local data slots (COP and CSP).

REQUIREMENTS:
  User-specified:
  - Accept one JSON array of instances per problem class.
  - Malformed JSON is logged and leaves prior state untouched.
  - A new file of the same class replaces the previous data outright.

  Implementation-discovered:
  - Only .json files are accepted (the dropzone filter of the web front-end).
  - Upload size is capped so a stray file cannot exhaust memory.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/server, internal/cli
  - Uses: internal/model, internal/output

ERROR HANDLING:
  - Decode failures wrap ErrParse, rejected names wrap ErrUnsupportedFile.
  - No retry; the caller may simply load again.

IMPLEMENTATION RULES:
  - Slots are written only through Load/Reset.
  - Snapshot copies slot headers so renderers never observe a half update.

USAGE:
  ws := ingest.NewWorkspace()
  err := ws.Load(model.ClassCOP, "cop.json", f)

RELATED FILES:
  - internal/model/decode.go
*/

package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/daryltucker/solver-radar/internal/model"
	"github.com/daryltucker/solver-radar/internal/output"
)

// MaxFileSize bounds how much of an upload is read.
const MaxFileSize = 64 << 20

var (
	// ErrParse marks a file that is not a JSON array of instances.
	ErrParse = errors.New("invalid benchmark file")
	// ErrUnsupportedFile marks a file rejected by its name before reading.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Accept reports whether a file name passes the .json filter.
func Accept(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

// Decode reads a JSON array of benchmark instances.
func Decode(r io.Reader) ([]model.BenchmarkInstance, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrParse, err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrParse, MaxFileSize)
	}

	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		// Catch syntax errors first so the message points at the real problem.
		if !json.Valid(trimmed) {
			var target any
			err := json.Unmarshal(trimmed, &target)
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: expected a JSON array of instances", ErrParse)
	}

	var instances []model.BenchmarkInstance
	if err := json.Unmarshal(trimmed, &instances); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if instances == nil {
		instances = []model.BenchmarkInstance{}
	}
	return instances, nil
}

// Slot is the data currently held for one problem class.
type Slot struct {
	Name      string
	Instances []model.BenchmarkInstance
	Loaded    bool
	LoadedAt  time.Time
}

// Workspace holds one slot per problem class. It is safe for concurrent use.
type Workspace struct {
	mu    sync.RWMutex
	slots map[model.ProblemClass]Slot
	now   func() time.Time
}

// NewWorkspace returns a workspace with both slots empty.
func NewWorkspace() *Workspace {
	return &Workspace{
		slots: make(map[model.ProblemClass]Slot, len(model.Classes)),
		now:   time.Now,
	}
}

// Load decodes r and replaces the slot for class. On any error the
// workspace is left exactly as it was.
func (w *Workspace) Load(class model.ProblemClass, name string, r io.Reader) error {
	if !Accept(name) {
		output.Logger.Warn("Rejected file (not .json)", "class", class, "file", name)
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}

	instances, err := Decode(r)
	if err != nil {
		output.Logger.Error("Error parsing JSON", "class", class, "file", name, "error", err)
		return err
	}

	w.Set(class, name, instances)
	output.Logger.Info("Loaded benchmark file", "class", class, "file", name, "instances", len(instances))
	return nil
}

// Set replaces the slot for class with already-decoded instances.
func (w *Workspace) Set(class model.ProblemClass, name string, instances []model.BenchmarkInstance) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.slots[class] = Slot{Name: name, Instances: instances, Loaded: true, LoadedAt: w.now()}
}

// Get returns the slot for class.
func (w *Workspace) Get(class model.ProblemClass) Slot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.slots[class]
}

// Ready reports whether every problem class has been loaded.
func (w *Workspace) Ready() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, class := range model.Classes {
		if !w.slots[class].Loaded {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of all slots keyed by class.
func (w *Workspace) Snapshot() map[model.ProblemClass]Slot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(map[model.ProblemClass]Slot, len(w.slots))
	for class, slot := range w.slots {
		out[class] = slot
	}
	return out
}

// Reset empties both slots.
func (w *Workspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.slots = make(map[model.ProblemClass]Slot, len(model.Classes))
}

// Package potatolog provides an in-memory sink for the structured log, so
// that the log can be shown inside the TUI, which owns the terminal.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries a log keeps by default.
const DefaultCapacity = 1000

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It keeps at most its capacity in entries, dropping the oldest ones.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns a pointer to a new, empty log of the given
// capacity.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		log:      []LogEntry{},
		capacity: capacity,
	}
}

// Write appends a JSON-formatted log entry (as written by zerolog) to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = w.log[len(w.log)-w.capacity:]
	}
	return len(p), nil
}

// Get returns (a copy of) the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}

// Field returns the value of the entry's field with the given key as a
// string, or "" if the entry has no such field.
func Field(entry LogEntry, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

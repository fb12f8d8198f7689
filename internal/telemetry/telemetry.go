// Package telemetry provides a JSONL event stream for recording design
// sessions. Every placement, removal, field change and catalog operation is
// written as one JSON object per line so sessions can be audited or replayed.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart  = "session_start"
	KindBubblePlaced  = "bubble_placed"
	KindBubbleRemoved = "bubble_removed"
	KindDesignReset   = "design_reset"
	KindFieldChanged  = "field_changed"
	KindLevelSaved    = "level_saved"
	KindLevelLoaded   = "level_loaded"
	KindLevelDeleted  = "level_deleted"
)

// Kinds returns every event kind.
func Kinds() []string {
	return []string{
		KindSessionStart,
		KindBubblePlaced,
		KindBubbleRemoved,
		KindDesignReset,
		KindFieldChanged,
		KindLevelSaved,
		KindLevelLoaded,
		KindLevelDeleted,
	}
}

// Event is a single telemetry record: a timestamp, a kind tag, the session
// that produced it, the level title when one applies, and free-form data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Title     string    `json:"title,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events as JSONL. It is safe for concurrent use by
// multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	closer io.Closer
	enc    *json.Encoder
	mu     sync.Mutex
}

// NewEmitter creates an Emitter appending to the file at path, creating the
// file if it does not exist.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		closer: f,
		enc:    json.NewEncoder(f),
	}, nil
}

// NewWriterEmitter creates an Emitter writing to w. Close does not close w.
func NewWriterEmitter(w io.Writer) *Emitter {
	return &Emitter{enc: json.NewEncoder(w)}
}

// Emit writes a single event. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the Emitter owns one. Calling Close
// on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.closer.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

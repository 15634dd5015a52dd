package event

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// DeadLetterSchemaVersion tags each line of the dead-letter log
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one undeliverable event in the dead-letter log
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSON-lines file
type DeadLetterWriter struct {
	mu  sync.Mutex
	w   io.WriteCloser
	now func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter log: %w", err)
	}
	return &DeadLetterWriter{w: f, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Write records evt after attempts failed deliveries
func (d *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	entry.Timestamp = d.now()
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode dead letter %s: %w", evt.Type, err)
	}
	if _, err := d.w.Write(append(line, '\n')); err != nil {
		return err
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)
	return nil
}

// Close closes the underlying file
func (d *DeadLetterWriter) Close() error {
	return d.w.Close()
}

// ReadDeadLetters parses a dead-letter log. Blank lines are skipped; a
// malformed line fails the read with its line number.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	var entries []DeadLetterEntry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), DeadLetterMaxLineBytes)
	for n := 1; sc.Scan(); n++ {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return entries, fmt.Errorf("dead-letter line %d: %w", n, err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

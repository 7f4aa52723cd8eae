package main

import (
    "fmt"
    "io"
    "os"
    "time"
)

// EventLogger writes timestamped events to a writer.  The device keeps no
// state across resets, so events go to stderr rather than a file.
type EventLogger struct {
    w io.Writer
}

// NewEventLogger creates a logger writing to w.  A nil writer means stderr.
func NewEventLogger(w io.Writer) *EventLogger {
    if w == nil {
        w = os.Stderr
    }
    return &EventLogger{w: w}
}

// Log writes a single event with timestamp.  Write errors are ignored; there
// is nowhere else to report them.
func (el *EventLogger) Log(format string, args ...any) {
    msg := fmt.Sprintf(format, args...)
    ts := time.Now().Format(time.RFC3339)
    fmt.Fprintf(el.w, "%s - %s\n", ts, msg)
}

package main

import (
    "bytes"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestEventLoggerFormat(t *testing.T) {
    var out bytes.Buffer
    NewEventLogger(&out).Log("knock %d", 3)

    line := strings.TrimSuffix(out.String(), "\n")
    ts, msg, ok := strings.Cut(line, " - ")
    require.True(t, ok, "line %q", line)
    _, err := time.Parse(time.RFC3339, ts)
    assert.NoError(t, err)
    assert.Equal(t, "knock 3", msg)
}

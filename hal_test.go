//go:build !tinygo && (!linux || !arm || disablegpio)
// +build !tinygo
// +build !linux !arm disablegpio

package main

import (
    "bytes"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "periph.io/x/conn/v3/gpio"
)

func TestSimulatedLEDTracksLevel(t *testing.T) {
    var out bytes.Buffer
    led := ledPin(NewEventLogger(&out))
    require.NotNil(t, led)

    sim := led.(*simLED)
    require.NoError(t, led.Out(gpio.High))
    assert.Equal(t, gpio.High, sim.pin.L)
    require.NoError(t, led.Out(gpio.Low))
    assert.Equal(t, gpio.Low, sim.pin.L)

    lines := strings.Split(strings.TrimSpace(out.String()), "\n")
    require.Len(t, lines, 2)
    assert.Contains(t, lines[0], ledAlias+" ("+ledName+") High")
    assert.Contains(t, lines[1], ledAlias+" ("+ledName+") Low")
}

func TestSimulatedPatternEndsLow(t *testing.T) {
    var out bytes.Buffer
    logger := NewEventLogger(&out)
    led := ledPin(logger)

    require.NoError(t, NewPlayer(led, func(time.Duration) {}, logger).Play())
    assert.Equal(t, gpio.Low, led.(*simLED).pin.L)
    assert.Equal(t, 7, strings.Count(out.String(), ") High"))
}

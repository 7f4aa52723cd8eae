//go:build tinygo
// +build tinygo

package main

import (
    "machine"

    "periph.io/x/conn/v3/gpio"
)

// boardLED drives the board's built-in LED through TinyGo's machine package.
type boardLED struct {
    pin machine.Pin
}

func (b boardLED) Out(l gpio.Level) error {
    b.pin.Set(bool(l))
    return nil
}

// ledPin configures machine.LED as an output and returns it.  Every TinyGo
// board target defines machine.LED, so it is always ready.
func ledPin(_ *EventLogger) LED {
    machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
    return boardLED{pin: machine.LED}
}

//go:build !tinygo && (!linux || !arm || disablegpio)
// +build !tinygo
// +build !linux !arm disablegpio

package main

// This file provides a simulated LED so the pattern can be run and tested on
// a desktop machine without a board.  Level changes are written to the event
// logger instead of a pin.  hal_rpi.go and hal_tinygo.go provide the real
// implementations.

import (
    "periph.io/x/conn/v3/gpio"
    "periph.io/x/conn/v3/gpio/gpiotest"
)

// simLED logs every level change of an in-memory pin.
type simLED struct {
    pin    *gpiotest.Pin
    logger *EventLogger
}

func (s *simLED) Out(l gpio.Level) error {
    if err := s.pin.Out(l); err != nil {
        return err
    }
    s.logger.Log("%s (%s) %s", ledAlias, s.pin.N, l)
    return nil
}

// ledPin returns the simulated LED.  It is always ready.
func ledPin(logger *EventLogger) LED {
    return &simLED{pin: &gpiotest.Pin{N: ledName, Num: -1}, logger: logger}
}

//go:build linux && arm && !disablegpio && !tinygo
// +build linux,arm,!disablegpio,!tinygo

// This file provides a Raspberry Pi implementation of ledPin using the
// periph.io library.  When cross-compiling for other platforms or when the
// build tag "disablegpio" is specified, hal.go is used instead.

package main

import (
    "periph.io/x/host/v3"
)

// ledPin initialises the periph host and resolves the LED0 alias.  It returns
// nil when the host cannot be initialised or the pin does not exist; the
// caller treats that as a board without an LED.
func ledPin(_ *EventLogger) LED {
    if _, err := host.Init(); err != nil {
        return nil
    }
    return resolveLED(ledAlias, ledName)
}

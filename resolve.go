//go:build !tinygo
// +build !tinygo

package main

import "periph.io/x/conn/v3/gpio/gpioreg"

// resolveLED looks the LED up by alias in the periph pin registry, pointing
// the alias at name first unless a pin already answers to it.  It returns nil
// when the alias cannot be registered or its target pin does not exist.
func resolveLED(alias, name string) LED {
    if gpioreg.ByName(alias) == nil {
        if err := gpioreg.RegisterAlias(alias, name); err != nil {
            return nil
        }
    }
    p := gpioreg.ByName(alias)
    if p == nil {
        return nil
    }
    return p
}

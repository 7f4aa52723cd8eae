package main

import (
    "log"
    "time"
)

// ledAlias is the name the LED is looked up by, like a devicetree alias.
const ledAlias = "LED0"

// ledName names the pin behind ledAlias.  Override at build time with
// -ldflags "-X main.ledName=GPIO4".
var ledName = "GPIO17"

// Entry point: play "Shave and a Haircut" once, then leave the LED off.
func main() {
    logger := NewEventLogger(nil)
    player := NewPlayer(ledPin(logger), time.Sleep, logger)
    if err := player.Play(); err != nil {
        log.Fatalf("pattern aborted: %v", err)
    }
}

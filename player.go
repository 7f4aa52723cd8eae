package main

import (
    "fmt"
    "time"

    "periph.io/x/conn/v3/gpio"
)

// LED is the single digital output the pattern is played on.  Any periph
// gpio.PinOut satisfies it.  Driving it Low the first time also configures
// the pin as an output.
type LED interface {
    Out(l gpio.Level) error
}

// Player plays the knock pattern once on an LED.
type Player struct {
    led    LED
    sleep  func(time.Duration)
    logger *EventLogger
}

// NewPlayer returns a player for led.  A nil led means the hardware was not
// ready; Play is then a silent no-op.  sleep must block for the given
// duration; pass time.Sleep outside of tests.
func NewPlayer(led LED, sleep func(time.Duration), logger *EventLogger) *Player {
    if sleep == nil {
        sleep = time.Sleep
    }
    return &Player{led: led, sleep: sleep, logger: logger}
}

// Play runs the startup delay and the seven knocks, leaving the LED off.
// Nothing is written or logged when the LED is not ready.
func (p *Player) Play() error {
    if p.led == nil {
        return nil
    }
    if err := p.led.Out(gpio.Low); err != nil {
        return fmt.Errorf("configure led: %w", err)
    }
    p.logf("pattern start")
    p.sleep(startupDelay)

    for i, gap := range knockGaps {
        if err := p.led.Out(gpio.High); err != nil {
            return fmt.Errorf("knock %d on: %w", i+1, err)
        }
        p.sleep(knockDuration)
        if err := p.led.Out(gpio.Low); err != nil {
            return fmt.Errorf("knock %d off: %w", i+1, err)
        }
        if gap > 0 {
            p.sleep(gap)
        }
    }
    p.logf("pattern complete")
    return nil
}

func (p *Player) logf(format string, args ...any) {
    if p.logger != nil {
        p.logger.Log(format, args...)
    }
}

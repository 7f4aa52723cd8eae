package main

import "time"

// Note lengths at roughly 120 BPM.  The knock is the time the LED stays lit
// for each struck note; the rest of the note is spent dark.
//
//   "Shave  and-a  hair - cut"   [pause]   "two    bits"
//    q      e e    q      q      (+h)       q      (last)
const (
    knockDuration = 120 * time.Millisecond
    eighthNote    = 250 * time.Millisecond
    quarterNote   = 500 * time.Millisecond
    halfNote      = 1000 * time.Millisecond

    // startupDelay lets the pattern start cleanly after power-up.
    startupDelay = quarterNote
)

// knockGaps holds the dark time following each of the seven knocks.  It must
// not be modified; use gaps() to get a copy.
var knockGaps = [...]time.Duration{
    quarterNote - knockDuration,            // Shave
    eighthNote - knockDuration,             // and
    eighthNote - knockDuration,             // a
    quarterNote - knockDuration,            // hair
    quarterNote + halfNote - knockDuration, // cut, then the big pause
    quarterNote - knockDuration,            // two
    0,                                      // bits
}

// gaps returns a copy of the knock gap table.
func gaps() []time.Duration {
    out := make([]time.Duration, len(knockGaps))
    copy(out, knockGaps[:])
    return out
}

// patternDuration is the time from the first knock going high to the end of
// the last gap, excluding the startup delay.
func patternDuration() time.Duration {
    var total time.Duration
    for _, g := range knockGaps {
        total += knockDuration + g
    }
    return total
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpio

import (
	"log"
	"time"
)

// Trace is a dry-run Pins. It logs level changes when Verbose, and only
// accumulates the time it would have slept.
type Trace struct {
	Verbose bool
	Wiring  Wiring

	Writes  int           // Number of level changes.
	Elapsed time.Duration // Total requested sleep.
}

var _ Pins = (*Trace)(nil)

func (tr *Trace) SetLevel(pin Pin, level Level) (err error) {
	err = checkPin(pin, level)
	if err != nil {
		return
	}

	tr.Writes++
	if tr.Verbose {
		log.Printf("gpio: %v (D%d) <- %d\n", pin, tr.Wiring[pin], level)
	}
	return
}

func (tr *Trace) Sleep(d time.Duration) {
	tr.Elapsed += d
}

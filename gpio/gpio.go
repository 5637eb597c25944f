// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package gpio provides the digital output lines used to program SAP-1
// memory. The loader drives eight lines by role (four address lines, the
// shift register data, clock and latch lines, and the memory write line)
// through the Pins interface; implementations map roles onto hardware.
package gpio

import (
	"time"
)

// Pin is the role of an output line.
type Pin int

//go:generate go tool stringer -linecomment -type=Pin
const (
	PIN_ADDR0 = Pin(0) // addr0
	PIN_ADDR1 = Pin(1) // addr1
	PIN_ADDR2 = Pin(2) // addr2
	PIN_ADDR3 = Pin(3) // addr3
	PIN_DATA  = Pin(4) // data
	PIN_CLOCK = Pin(5) // clock
	PIN_LATCH = Pin(6) // latch
	PIN_WRITE = Pin(7) // write
)

// ADDRESS_LINES is the number of address lines.
const ADDRESS_LINES = 4

// PIN_COUNT is the number of pin roles.
const PIN_COUNT = 8

// AddressPin returns the role of address line n, LSB first.
func AddressPin(n int) Pin {
	return PIN_ADDR0 + Pin(n)
}

// Level is a digital output level.
type Level uint8

const (
	LOW  = Level(0)
	HIGH = Level(1)
)

// LevelOf returns HIGH if bit is set.
func LevelOf(bit bool) Level {
	if bit {
		return HIGH
	}
	return LOW
}

// Not returns the opposite level.
func (level Level) Not() Level {
	return level ^ 1
}

// Pins is the output capability consumed by the loader. It is owned by a
// single caller at a time.
type Pins interface {
	// SetLevel drives an output line.
	SetLevel(pin Pin, level Level) error
	// Sleep blocks for the duration.
	Sleep(d time.Duration)
}

// Wiring maps pin roles to physical pin numbers on the controller.
type Wiring [PIN_COUNT]int

// DefaultWiring is the reference Arduino wiring.
func DefaultWiring() Wiring {
	return Wiring{
		PIN_ADDR0: 8,
		PIN_ADDR1: 7,
		PIN_ADDR2: 6,
		PIN_ADDR3: 5,
		PIN_DATA:  2,
		PIN_CLOCK: 3,
		PIN_LATCH: 4,
		PIN_WRITE: 13,
	}
}

// Validate checks that no physical pin is shared by two roles.
func (w Wiring) Validate() (err error) {
	seen := make(map[int]Pin, PIN_COUNT)
	for n, number := range w {
		if number < 0 {
			err = ErrWiring{Pin: Pin(n), Number: number}
			return
		}
		other, ok := seen[number]
		if ok {
			err = ErrWiring{Pin: Pin(n), Number: number, Other: other, Shared: true}
			return
		}
		seen[number] = Pin(n)
	}
	return
}

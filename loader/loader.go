// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package loader writes a program image into SAP-1 memory by bit-banging a
// serial-in parallel-out shift register and pulsing the memory write line.
//
// For every address, in ascending order, the loader drives the address
// lines, shifts the 8-bit word into the register, latches it onto the
// memory data bus, and pulses write-enable. The protocol is open loop: the
// hardware never acknowledges.
package loader

import (
	"log"

	"github.com/ezrec/sap1/asm"
	"github.com/ezrec/sap1/gpio"
)

// Loader programs memory through a gpio.Pins.
type Loader struct {
	Verbose         bool     // If set, logs each address as it is written.
	Order           BitOrder // Shift order; the SAP-1 board is wired LSB first.
	Timing          Timing   // Protocol delays.
	WriteActiveHigh bool     // Write-enable polarity; active low if unset.
}

// NewLoader returns a loader for the reference circuit.
func NewLoader() *Loader {
	return &Loader{
		Order:  LSB_FIRST,
		Timing: DefaultTiming(),
	}
}

func (ld *Loader) writeLevel(active bool) gpio.Level {
	level := gpio.LevelOf(active)
	if !ld.WriteActiveHigh {
		level = level.Not()
	}
	return level
}

// Reset idles the lines: address zero, latch low, write-enable inactive.
func (ld *Loader) Reset(pins gpio.Pins) (err error) {
	for n := range gpio.ADDRESS_LINES {
		err = pins.SetLevel(gpio.AddressPin(n), gpio.LOW)
		if err != nil {
			return
		}
	}

	err = pins.SetLevel(gpio.PIN_LATCH, gpio.LOW)
	if err != nil {
		return
	}

	err = pins.SetLevel(gpio.PIN_WRITE, ld.writeLevel(false))
	return
}

// SetAddress drives the address lines, LSB on line 0.
func (ld *Loader) SetAddress(pins gpio.Pins, addr int) (err error) {
	for n := range gpio.ADDRESS_LINES {
		err = pins.SetLevel(gpio.AddressPin(n), gpio.LevelOf((addr>>n)&1 == 1))
		if err != nil {
			return
		}
	}
	return
}

// SendByte shifts value into the shift register and latches it to the
// register outputs.
func (ld *Loader) SendByte(pins gpio.Pins, value uint8) (err error) {
	// Latch low so shifting does not disturb the outputs.
	err = pins.SetLevel(gpio.PIN_LATCH, gpio.LOW)
	if err != nil {
		return
	}

	for n := range 8 {
		err = pins.SetLevel(gpio.PIN_DATA, gpio.LevelOf(ld.Order.Bit(value, n)))
		if err != nil {
			return
		}
		err = pins.SetLevel(gpio.PIN_CLOCK, gpio.HIGH)
		if err != nil {
			return
		}
		err = pins.SetLevel(gpio.PIN_CLOCK, gpio.LOW)
		if err != nil {
			return
		}
	}

	err = pins.SetLevel(gpio.PIN_LATCH, gpio.HIGH)
	if err != nil {
		return
	}
	pins.Sleep(ld.Timing.LatchSettle)
	err = pins.SetLevel(gpio.PIN_LATCH, gpio.LOW)
	return
}

// Commit pulses write-enable, storing the latched byte at the current
// address.
func (ld *Loader) Commit(pins gpio.Pins) (err error) {
	err = pins.SetLevel(gpio.PIN_WRITE, ld.writeLevel(true))
	if err != nil {
		return
	}
	pins.Sleep(ld.Timing.WritePulse)
	err = pins.SetLevel(gpio.PIN_WRITE, ld.writeLevel(false))
	return
}

// Load writes every word of img to memory, address 0 first. The first pin
// failure stops the load; addresses already committed stay written.
func (ld *Loader) Load(img asm.Image, pins gpio.Pins) (err error) {
	if len(img) > 1<<gpio.ADDRESS_LINES {
		err = ErrImageSize
		return
	}

	err = ld.Timing.Validate()
	if err != nil {
		return
	}

	err = ld.Reset(pins)
	if err != nil {
		err = &ErrHardware{Address: -1, Err: err}
		return
	}

	for addr, word := range img.Words() {
		err = ld.loadWord(pins, addr, word)
		if err != nil {
			err = &ErrHardware{Address: addr, Text: word.Text, Err: err}
			return
		}
	}

	return
}

func (ld *Loader) loadWord(pins gpio.Pins, addr int, word asm.Word) (err error) {
	if ld.Verbose {
		log.Printf("Accessing memory address %d: %04b\n", addr, addr)
	}

	err = ld.SetAddress(pins, addr)
	if err != nil {
		return
	}

	err = ld.SendByte(pins, word.Value)
	if err != nil {
		return
	}

	if ld.Verbose {
		log.Printf("\tWriting the instruction %v : %08b\n", word.Text, word.Value)
	}

	err = ld.Commit(pins)
	if err != nil {
		return
	}

	pins.Sleep(ld.Timing.AddressSettle)
	return
}

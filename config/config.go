// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config reads board description files.
//
// A board file is a Starlark script. Its global variables describe how the
// controller is wired to the SAP-1 and the protocol timing; any variable
// left unset keeps the reference circuit's value. For example:
//
//	port = "/dev/ttyACM0"
//	address = [8, 7, 6, 5]   # LSB first
//	data, clock, latch = 2, 3, 4
//	write = 13
//	write_active_low = True
//	bit_order = "lsb"
//	latch_settle_ms = 10
//	write_pulse_ms = 200 * ms
//	address_settle_ms = 100
//
// The predeclared name ms is 1, and s is 1000.
package config

import (
	"io"
	"math"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sap1/gpio"
	"github.com/ezrec/sap1/loader"
)

// DEFAULT_PORT is the serial port of the reference board.
const DEFAULT_PORT = "/dev/ttyUSB0"

// MAX_MILLIS is the largest delay, in ms, a time.Duration can hold.
const MAX_MILLIS = math.MaxInt64 / int64(time.Millisecond)

// Board is a board description.
type Board struct {
	Port            string
	Wiring          gpio.Wiring
	Order           loader.BitOrder
	WriteActiveHigh bool
	Timing          loader.Timing
}

// Default returns the reference board.
func Default() *Board {
	return &Board{
		Port:   DEFAULT_PORT,
		Wiring: gpio.DefaultWiring(),
		Order:  loader.LSB_FIRST,
		Timing: loader.DefaultTiming(),
	}
}

// Apply configures a loader for the board.
func (bd *Board) Apply(ld *loader.Loader) {
	ld.Order = bd.Order
	ld.Timing = bd.Timing
	ld.WriteActiveHigh = bd.WriteActiveHigh
}

var predeclared = starlark.StringDict{
	"ms": starlark.MakeInt(1),
	"s":  starlark.MakeInt(1000),
}

// Load evaluates a board file. The name is used in error messages.
func Load(name string, src io.Reader) (bd *Board, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, predeclared)
	if err != nil {
		return
	}

	bd = Default()
	err = bd.decode(globals)
	if err != nil {
		bd = nil
		return
	}

	err = bd.Wiring.Validate()
	if err != nil {
		bd = nil
		return
	}

	return
}

func (bd *Board) decode(globals starlark.StringDict) (err error) {
	for key, value := range globals {
		switch key {
		case "port":
			bd.Port, err = asString(key, value)
		case "address":
			err = bd.decodeAddress(value)
		case "data":
			bd.Wiring[gpio.PIN_DATA], err = asInt(key, value)
		case "clock":
			bd.Wiring[gpio.PIN_CLOCK], err = asInt(key, value)
		case "latch":
			bd.Wiring[gpio.PIN_LATCH], err = asInt(key, value)
		case "write":
			bd.Wiring[gpio.PIN_WRITE], err = asInt(key, value)
		case "write_active_low":
			var low bool
			low, err = asBool(key, value)
			bd.WriteActiveHigh = !low
		case "bit_order":
			var name string
			name, err = asString(key, value)
			if err == nil {
				bd.Order, err = loader.ParseBitOrder(name)
			}
		case "latch_settle_ms":
			bd.Timing.LatchSettle, err = asMillis(key, value)
		case "write_pulse_ms":
			bd.Timing.WritePulse, err = asMillis(key, value)
		case "address_settle_ms":
			bd.Timing.AddressSettle, err = asMillis(key, value)
		default:
			// Helper variables are allowed.
		}
		if err != nil {
			err = &ErrBoard{Key: key, Err: err}
			return
		}
	}

	err = bd.Timing.Validate()
	return
}

func (bd *Board) decodeAddress(value starlark.Value) (err error) {
	list, ok := value.(starlark.Indexable)
	if !ok {
		err = ErrType{Want: "list", Got: value.Type()}
		return
	}
	if list.Len() != gpio.ADDRESS_LINES {
		err = ErrAddressLines(list.Len())
		return
	}
	for n := range gpio.ADDRESS_LINES {
		bd.Wiring[gpio.AddressPin(n)], err = asInt("address", list.Index(n))
		if err != nil {
			return
		}
	}
	return
}

func asInt(key string, value starlark.Value) (n int, err error) {
	err = starlark.AsInt(value, &n)
	if err != nil {
		err = ErrType{Want: "int", Got: value.Type()}
	}
	return
}

func asString(key string, value starlark.Value) (str string, err error) {
	str, ok := starlark.AsString(value)
	if !ok {
		err = ErrType{Want: "string", Got: value.Type()}
	}
	return
}

func asBool(key string, value starlark.Value) (b bool, err error) {
	v, ok := value.(starlark.Bool)
	if !ok {
		err = ErrType{Want: "bool", Got: value.Type()}
		return
	}
	b = bool(v)
	return
}

func asMillis(key string, value starlark.Value) (d time.Duration, err error) {
	var ms int64
	err = starlark.AsInt(value, &ms)
	if err != nil {
		err = ErrType{Want: "int", Got: value.Type()}
		return
	}
	if ms > MAX_MILLIS || ms < -MAX_MILLIS {
		err = ErrMillis(ms)
		return
	}
	d = time.Duration(ms) * time.Millisecond
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpio

import (
	"strconv"
	"time"

	"gobot.io/x/gobot/v2/platforms/firmata"
)

// Firmata drives the pins of a Firmata-speaking microcontroller (ie an
// Arduino running StandardFirmata) over a serial port.
type Firmata struct {
	Port   string
	Wiring Wiring

	adaptor *firmata.Adaptor
	names   [PIN_COUNT]string
}

var _ Pins = (*Firmata)(nil)

// OpenFirmata connects to the controller on port.
func OpenFirmata(port string, wiring Wiring) (fm *Firmata, err error) {
	err = wiring.Validate()
	if err != nil {
		return
	}

	fm = &Firmata{
		Port:    port,
		Wiring:  wiring,
		adaptor: firmata.NewAdaptor(port),
	}
	for n, number := range wiring {
		fm.names[n] = strconv.Itoa(number)
	}

	err = fm.adaptor.Connect()
	if err != nil {
		fm = nil
		return
	}

	return
}

// Close releases the serial port.
func (fm *Firmata) Close() (err error) {
	if fm.adaptor == nil {
		return
	}
	err = fm.adaptor.Finalize()
	fm.adaptor = nil
	return
}

func (fm *Firmata) SetLevel(pin Pin, level Level) (err error) {
	err = checkPin(pin, level)
	if err != nil {
		return
	}
	if fm.adaptor == nil {
		err = ErrNotConnected
		return
	}

	err = fm.adaptor.DigitalWrite(fm.names[pin], byte(level))
	return
}

func (fm *Firmata) Sleep(d time.Duration) {
	time.Sleep(d)
}

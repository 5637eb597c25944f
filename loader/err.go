// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package loader

import (
	"errors"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	ErrHardwareIO     = errors.New(f("hardware i/o"))
	ErrImageSize      = errors.New(f("image larger than addressable memory"))
	ErrBitOrder       = errors.New(f("bit order must be 'lsb' or 'msb'"))
	ErrTimingNegative = errors.New(f("timing must not be negative"))
)

// ErrHardware is a pin failure while programming an address. Address is
// -1 if the failure happened while idling the lines before programming.
type ErrHardware struct {
	Address int
	Text    string
	Err     error
}

func (err *ErrHardware) Error() string {
	if err.Address < 0 {
		return f("reset: %v: %v", ErrHardwareIO, err.Err)
	}
	return f("address 0x%X '%v': %v: %v", err.Address, err.Text, ErrHardwareIO, err.Err)
}

func (err *ErrHardware) Unwrap() error {
	return err.Err
}

func (err *ErrHardware) Is(target error) bool {
	return target == ErrHardwareIO
}

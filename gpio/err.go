// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpio

import (
	"errors"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	ErrPinInvalid   = errors.New(f("pin invalid"))
	ErrLevelInvalid = errors.New(f("level invalid"))
	ErrWiringShared = errors.New(f("physical pin shared"))
	ErrNotConnected = errors.New(f("not connected"))
	ErrInjected     = errors.New(f("injected failure"))
)

// ErrWiring is a bad pin assignment.
type ErrWiring struct {
	Pin    Pin
	Number int
	Other  Pin
	Shared bool
}

func (err ErrWiring) Error() string {
	if err.Shared {
		return f("%v: pin %d already used by %v", err.Pin, err.Number, err.Other)
	}
	return f("%v: pin %d invalid", err.Pin, err.Number)
}

func (err ErrWiring) Is(target error) bool {
	if err.Shared {
		return target == ErrWiringShared
	}
	return target == ErrPinInvalid
}

func checkPin(pin Pin, level Level) (err error) {
	switch {
	case pin < 0 || pin >= PIN_COUNT:
		err = ErrPinInvalid
	case level > HIGH:
		err = ErrLevelInvalid
	}
	return
}

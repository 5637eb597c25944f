// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package config

import (
	"github.com/ezrec/sap1/gpio"
	"github.com/ezrec/sap1/translate"
)

var f = translate.From

// ErrBoard is an invalid board variable.
type ErrBoard struct {
	Key string
	Err error
}

func (err *ErrBoard) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err *ErrBoard) Unwrap() error {
	return err.Err
}

// ErrType is a board variable of the wrong type.
type ErrType struct {
	Want string
	Got  string
}

func (err ErrType) Error() string {
	return f("want %v, got %v", err.Want, err.Got)
}

// ErrAddressLines is an address list of the wrong length.
type ErrAddressLines int

func (err ErrAddressLines) Error() string {
	return f("want %d address pins, got %d", gpio.ADDRESS_LINES, int(err))
}

// ErrMillis is a delay too long to represent.
type ErrMillis int64

func (err ErrMillis) Error() string {
	return f("%d ms out of range", int64(err))
}

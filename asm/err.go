// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	ErrMalformedLine    = errors.New(f("malformed line, expected 'MNEMONIC [OPERAND]' or 'LITERAL'"))
	ErrOperandMissing   = errors.New(f("operand missing"))
	ErrUnknownOperand   = errors.New(f("unknown operand"))
	ErrCapacityOverflow = errors.New(f("program exceeds memory capacity"))
	ErrCapacityInvalid  = errors.New(f("capacity invalid"))
)

// ErrSyntax reports the listing line an assembly error was found on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperand is an operand or literal that is not a value in range.
type ErrOperand struct {
	Word string
	Max  int
}

func (err ErrOperand) Error() string {
	return f("'%v' is not a hex value from 0x0 to 0x%X", err.Word, err.Max)
}

func (err ErrOperand) Is(target error) bool {
	return target == ErrUnknownOperand
}

// ErrMissing is a missing operand for an instruction that requires one.
type ErrMissing string

func (err ErrMissing) Error() string {
	return f("%v requires an operand", string(err))
}

func (err ErrMissing) Is(target error) bool {
	return target == ErrOperandMissing || target == ErrMalformedLine
}

// ErrOverflow is a listing longer than the memory capacity.
type ErrOverflow struct {
	Capacity int
}

func (err ErrOverflow) Error() string {
	return f("more than %d words", err.Capacity)
}

func (err ErrOverflow) Is(target error) bool {
	return target == ErrCapacityOverflow
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Assembler converts a SAP-1 listing into a program image.
type Assembler struct {
	Verbose      bool            // If set, verbosely logs the assembler actions.
	Capacity     int             // Memory words; PROGRAM_LEN if zero.
	WideLiterals bool            // If set, data literals may span 0x00 to 0xFF.
	Set          *InstructionSet // Instruction set; Sap1() if nil.
}

func (asm *Assembler) capacity() int {
	if asm.Capacity == 0 {
		return PROGRAM_LEN
	}
	return asm.Capacity
}

func (asm *Assembler) set() *InstructionSet {
	if asm.Set == nil {
		return sap1
	}
	return asm.Set
}

// Parse reads a listing, one word per line, and assembles it.
func (asm *Assembler) Parse(input io.Reader) (img Image, err error) {
	scanner := bufio.NewScanner(input)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: len(lines) + 1, Err: err}
		return
	}

	img, err = asm.Assemble(lines)
	return
}

// Assemble encodes each line into one word, in order, and pads the result
// with zero words up to the capacity. Any error aborts assembly.
func (asm *Assembler) Assemble(lines []string) (img Image, err error) {
	capacity := asm.capacity()
	if capacity < 1 || capacity > PROGRAM_LEN {
		err = ErrCapacityInvalid
		return
	}

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			img = nil
		}
	}()

	img = make(Image, 0, capacity)

	for _, line = range lines {
		lineno++

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(img) == capacity {
			err = ErrOverflow{Capacity: capacity}
			return
		}

		var word Word
		word, err = asm.parseLine(line)
		if err != nil {
			return
		}
		word.LineNo = lineno
		img = append(img, word)
	}

	for len(img) < capacity {
		img = append(img, padWord())
	}

	return
}

// parseLine encodes a single line.
func (asm *Assembler) parseLine(line string) (word Word, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrMalformedLine
		return
	}

	inst, ok := asm.set().Lookup(words[0])
	if !ok {
		// Memory data, without an instruction.
		limit := PROGRAM_LEN - 1
		if asm.WideLiterals {
			limit = 0xff
		}
		var value uint8
		value, err = parseHex(words[0], limit)
		if err != nil {
			return
		}
		word = Word{Text: literalText(value), Value: value}
		return
	}

	var operand uint8
	if inst.Operand {
		if len(words) < 2 {
			err = ErrMissing(inst.Mnemonic)
			return
		}
		operand, err = parseHex(words[1], PROGRAM_LEN-1)
		if err != nil {
			return
		}
	}

	word = Word{
		Text:  instructionText(inst.Mnemonic, operand),
		Value: uint8(inst.Opcode)*PROGRAM_LEN + operand,
	}

	return
}

// parseHex parses a hex value, with an optional 0x prefix, in [0, limit].
func parseHex(word string, limit int) (value uint8, err error) {
	digits := word
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}

	v64, perr := strconv.ParseUint(digits, PROGRAM_LEN, 8)
	if perr != nil || v64 > uint64(limit) {
		err = ErrOperand{Word: word, Max: limit}
		return
	}

	value = uint8(v64)
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"iter"
)

// Word is one assembled memory word and its disassembly.
type Word struct {
	Text   string // Display text, ie "LDI 0x5" or "0x00".
	Value  uint8  // Encoded word.
	LineNo int    // Source line, or 0 for padding.
}

// Opcode returns the upper nibble of the word.
func (w Word) Opcode() Opcode {
	return Opcode(w.Value >> 4)
}

// Operand returns the lower nibble of the word.
func (w Word) Operand() uint8 {
	return w.Value & 0xf
}

// Padding reports whether the word was added to fill memory.
func (w Word) Padding() bool {
	return w.LineNo == 0
}

// Image is a program image, indexed by memory address.
type Image []Word

// Words iterates the image in ascending address order.
func (img Image) Words() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for addr, word := range img {
			if !yield(addr, word) {
				return
			}
		}
	}
}

// Bytes returns the encoded words.
func (img Image) Bytes() (data []byte) {
	data = make([]byte, len(img))
	for addr, word := range img {
		data[addr] = word.Value
	}
	return
}

// padWord is the filler for unused memory.
func padWord() Word {
	return Word{Text: literalText(0), Value: 0}
}

func instructionText(mnemonic string, operand uint8) string {
	return fmt.Sprintf("%v 0x%X", mnemonic, operand)
}

func literalText(value uint8) string {
	return fmt.Sprintf("0x%02X", value)
}

// Disassemble renders a word with the SAP-1 instruction set. Use
// InstructionSet.Disassemble for an image assembled with another set.
func Disassemble(value uint8) string {
	return sap1.Disassemble(value)
}

// Disassemble renders a word as an instruction when its opcode is in the
// set, otherwise as a literal.
func (is *InstructionSet) Disassemble(value uint8) string {
	inst, ok := is.Decode(Opcode(value >> 4))
	if !ok {
		return literalText(value)
	}
	operand := value & 0xf
	if !inst.Operand && operand != 0 {
		return literalText(value)
	}
	return instructionText(inst.Mnemonic, operand)
}

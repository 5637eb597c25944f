// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// PROGRAM_LEN is the number of words in SAP-1 memory. It is also the numeric
// base of operands, as one hex digit addresses every word.
const PROGRAM_LEN = 16

// Opcode is the upper nibble of an instruction word. It prints with its
// SAP-1 mnemonic.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0x0) // NOP
	OP_LDA = Opcode(0x1) // LDA
	OP_ADD = Opcode(0x2) // ADD
	OP_SUB = Opcode(0x3) // SUB
	OP_STA = Opcode(0x4) // STA
	OP_LDI = Opcode(0x5) // LDI
	OP_JMP = Opcode(0x6) // JMP
	OP_JC  = Opcode(0x7) // JC
	OP_JZ  = Opcode(0x8) // JZ
	OP_OUT = Opcode(0xE) // OUT
	OP_HLT = Opcode(0xF) // HLT
)

// Instruction describes one entry of an instruction set.
type Instruction struct {
	Mnemonic string
	Opcode   Opcode
	Operand  bool // Set if the instruction takes a 4-bit operand.
}

// InstructionSet is a read-only mnemonic lookup table.
type InstructionSet struct {
	byName   map[string]Instruction
	byOpcode map[Opcode]Instruction
}

// NewInstructionSet builds a lookup table from a list of instructions.
func NewInstructionSet(insts ...Instruction) *InstructionSet {
	is := &InstructionSet{
		byName:   make(map[string]Instruction, len(insts)),
		byOpcode: make(map[Opcode]Instruction, len(insts)),
	}
	for _, inst := range insts {
		is.byName[inst.Mnemonic] = inst
		is.byOpcode[inst.Opcode] = inst
	}
	return is
}

// Lookup finds an instruction by its mnemonic. Mnemonics are case sensitive.
func (is *InstructionSet) Lookup(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = is.byName[mnemonic]
	return
}

// Decode finds an instruction by its opcode.
func (is *InstructionSet) Decode(op Opcode) (inst Instruction, ok bool) {
	inst, ok = is.byOpcode[op]
	return
}

// Len returns the number of instructions in the set.
func (is *InstructionSet) Len() int {
	return len(is.byName)
}

var sap1 = NewInstructionSet(
	Instruction{"NOP", OP_NOP, false},
	Instruction{"LDA", OP_LDA, true},
	Instruction{"ADD", OP_ADD, true},
	Instruction{"SUB", OP_SUB, true},
	Instruction{"STA", OP_STA, true},
	Instruction{"LDI", OP_LDI, true},
	Instruction{"JMP", OP_JMP, true},
	Instruction{"JC", OP_JC, true},
	Instruction{"JZ", OP_JZ, true},
	Instruction{"OUT", OP_OUT, false},
	Instruction{"HLT", OP_HLT, false},
)

// Sap1 returns the SAP-1 instruction set.
func Sap1() *InstructionSet {
	return sap1
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements the assembler for the SAP-1 instruction memory.
//
// Each line of a listing is either an instruction (a mnemonic with an
// optional single hex digit operand) or a raw data literal, and encodes to
// exactly one 8-bit word. The assembled Image always holds one word per
// memory address, zero padded to the memory size.
package asm

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sap1/asm"
)

func TestRows(t *testing.T) {
	assert := assert.New(t)

	img, err := (&asm.Assembler{}).Assemble([]string{"LDI 5", "OUT", "HLT"})
	assert.NoError(err)

	rows := Rows(img)
	assert.Len(rows, asm.PROGRAM_LEN)
	assert.Equal(Row{"0x0", "LDI 0x5", "0x55", "01010101"}, rows[0])
	assert.Equal(Row{"0x1", "OUT 0x0", "0xE0", "11100000"}, rows[1])
	assert.Equal(Row{"0x2", "HLT 0x0", "0xF0", "11110000"}, rows[2])
	assert.Equal(Row{"0xF", "0x00", "0x00", "00000000"}, rows[15])
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	img, err := (&asm.Assembler{}).Assemble([]string{"LDI 5", "OUT"})
	assert.NoError(err)

	lines := strings.Split(strings.TrimSuffix(Format(img), "\n"), "\n")
	assert.Len(lines, asm.PROGRAM_LEN)
	assert.Equal("0x0 : LDI 0x5 \t 0x55 \t 01010101", lines[0])
	assert.Equal("0x1 : OUT 0x0 \t 0xE0 \t 11100000", lines[1])
	assert.Equal("0x2 : 0x00    \t 0x00 \t 00000000", lines[2])
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	img, err := (&asm.Assembler{}).Assemble([]string{"JMP 3"})
	assert.NoError(err)

	var plain bytes.Buffer
	assert.NoError(Write(&plain, img, false))
	assert.Equal(Format(img), plain.String())

	var styled bytes.Buffer
	assert.NoError(Write(&styled, img, true))
	assert.Contains(styled.String(), "JMP 0x3")
	assert.Contains(styled.String(), "01100011")
}

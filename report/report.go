// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report renders a program image as a table for dry-run review:
// one row per address with the disassembly, the word in hex and the word
// in binary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/sap1/asm"
)

// Row is one formatted table row.
type Row struct {
	Address string
	Text    string
	Hex     string
	Binary  string
}

// Rows formats each word of the image.
func Rows(img asm.Image) (rows []Row) {
	rows = make([]Row, 0, len(img))
	for addr, word := range img.Words() {
		rows = append(rows, Row{
			Address: fmt.Sprintf("0x%X", addr),
			Text:    word.Text,
			Hex:     fmt.Sprintf("0x%02X", word.Value),
			Binary:  fmt.Sprintf("%08b", word.Value),
		})
	}
	return
}

// Format returns the plain text table.
func Format(img asm.Image) string {
	var sb strings.Builder
	write(&sb, img, plainStyles())
	return sb.String()
}

// Write writes the table, in color if styled.
func Write(w io.Writer, img asm.Image, styled bool) (err error) {
	st := plainStyles()
	if styled {
		st = newStyles()
	}

	var sb strings.Builder
	write(&sb, img, st)
	_, err = io.WriteString(w, sb.String())
	return
}

func write(sb *strings.Builder, img asm.Image, st styles) {
	width := 0
	for _, word := range img {
		width = max(width, len(word.Text))
	}

	for n, row := range Rows(img) {
		text := st.text
		if img[n].Padding() {
			text = st.padding
		}
		fmt.Fprintf(sb, "%v : %v \t %v \t %v\n",
			st.address.Render(row.Address),
			text.Render(row.Text+strings.Repeat(" ", width-len(row.Text))),
			st.hex.Render(row.Hex),
			st.binary.Render(row.Binary))
	}
}
